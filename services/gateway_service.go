package services

import "sermepa/entity"

// Gateway is one protocol generation of the redirect payment flow. The
// implementation is selected by the merchant's signature algorithm. Gateways
// hold no mutable state and are safe for concurrent use as long as every call
// owns its request and parameter map.
type Gateway interface {
	// Build runs the finalization check and turns the request into the signed
	// redirect form. A failed check aborts the build with the same error.
	Build(request *entity.Request) (*entity.SignedForm, error)

	// Verify recomputes the signature over the received parameters and
	// compares it with the received one. The amount is the expected payment
	// amount known out-of-band; only the legacy protocol uses it, because its
	// feedback does not echo a trustworthy amount. A mismatch is reported
	// through the verdict, not as an error.
	Verify(params map[string]string, amount string) (*entity.Verdict, error)

	// TranslateResponseCode maps a gateway outcome code to a message. It is
	// total: codes up to 99 are authorized and unknown codes map to a generic
	// refusal.
	TranslateResponseCode(code int) string
}
