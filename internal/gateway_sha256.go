package internal

import (
	"crypto/hmac"
	"fmt"

	"sermepa/entity"
)

// HmacGateway implements the modern redirect protocol. The parameters travel
// as a single Base64 JSON envelope and the signature is HMAC-SHA256 keyed per
// order.
type HmacGateway struct {
	merchant *entity.Merchant
}

func (g *HmacGateway) Build(request *entity.Request) (*entity.SignedForm, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	encoded, err := encodeParameters(merchantParameters(g.merchant, request))
	if err != nil {
		return nil, fmt.Errorf("parameters encode base64: %v", err)
	}

	order, _ := request.Order()
	encryptor := NewEncryptor(g.merchant.Secret, encoded, order)
	signature, err := encryptor.CreateSignature()
	if err != nil {
		return nil, fmt.Errorf("create signature: %v", err)
	}

	payment := entity.PaymentRequest{
		Parameters:       encoded,
		Signature:        signature,
		SignatureVersion: entity.SignatureVersion,
	}
	return &entity.SignedForm{URL: g.merchant.URL, Fields: payment.Fields()}, nil
}

// Verify recomputes the signature from the received envelope, never from
// locally held request state. The expected signature uses the URL-safe
// encoding the gateway applies on the notification leg. The amount argument
// is ignored; the envelope is covered by the signature as a whole.
func (g *HmacGateway) Verify(params map[string]string, _ string) (*entity.Verdict, error) {
	received := entity.Feedback(params)

	encoded, ok := received.Get("Ds_MerchantParameters")
	if !ok || encoded == "" {
		return nil, &entity.FieldError{Code: entity.MissingParam, Field: "Ds_MerchantParameters"}
	}
	signature, ok := received.Get("Ds_Signature")
	if !ok || signature == "" {
		return nil, &entity.FieldError{Code: entity.MissingParam, Field: "Ds_Signature"}
	}

	decoded, err := decodeParameters(encoded)
	if err != nil {
		return nil, err
	}
	order, ok := decoded.Order()
	if !ok {
		return nil, &entity.FieldError{Code: entity.MissingParam, Field: "Ds_Order"}
	}

	encryptor := NewEncryptor(g.merchant.Secret, encoded, order)
	expected, err := encryptor.CreateFeedbackSignature()
	if err != nil {
		return nil, err
	}

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return &entity.Verdict{Verified: false}, nil
	}
	return &entity.Verdict{Verified: true, Decoded: decoded}, nil
}

func (g *HmacGateway) TranslateResponseCode(code int) string {
	return translateResponse(code, responseMessages)
}
