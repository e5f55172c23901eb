package internal

import (
	"crypto/hmac"
	"strconv"
	"strings"

	"gitee.com/golang-module/dongle"

	"sermepa/entity"
)

// Sha1Gateway implements the legacy redirect protocol. Fields travel as
// individual form inputs and the signature is an uppercase hex SHA-1 digest
// over concatenated field values keyed by the shared secret. Two sub-variants
// exist: the plain one signs amount, order, merchant code and currency; the
// enhanced one additionally covers the transaction type and merchant URL.
type Sha1Gateway struct {
	merchant *entity.Merchant
}

func (g *Sha1Gateway) Build(request *entity.Request) (*entity.SignedForm, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	fields := legacyFields(g.merchant, request)
	fields = append(fields, entity.FormField{
		Name:  "Ds_Merchant_MerchantSignature",
		Value: g.requestSignature(request),
	})

	return &entity.SignedForm{URL: g.merchant.URL, Fields: fields}, nil
}

// requestSignature digests the outbound field values. The sum total enters
// the message only when the amount is numerically greater, a quirk of the
// wire protocol that must be reproduced exactly.
func (g *Sha1Gateway) requestSignature(request *entity.Request) string {
	amount, _ := request.Amount()
	order, _ := request.Order()
	currency, _ := request.Currency()
	sumTotal, _ := request.SumTotal()

	message := amount + order + g.merchant.Code + currency
	if amountExceeds(amount, sumTotal) {
		message += sumTotal
	}
	if g.merchant.Algorithm == entity.AlgorithmSha1Enhanced {
		transactionType, _ := request.TransactionType()
		merchantURL, _ := request.MerchantURL()
		message += transactionType + merchantURL
	}
	message += g.merchant.Secret

	return sha1Hex(message)
}

// Verify recomputes the legacy feedback signature. The protocol does not echo
// a trustworthy amount, so the expected amount must be supplied by the caller
// from its own records; verification is only as strong as that out-of-band
// knowledge.
func (g *Sha1Gateway) Verify(params map[string]string, amount string) (*entity.Verdict, error) {
	received := entity.Feedback(params)

	signature, ok := received.Get("Ds_Signature")
	if !ok || signature == "" {
		return nil, &entity.FieldError{Code: entity.MissingParam, Field: "Ds_Signature"}
	}
	order, ok := received.Get("Ds_Order")
	if !ok {
		return nil, &entity.FieldError{Code: entity.MissingParam, Field: "Ds_Order"}
	}
	currency, ok := received.Get("Ds_Currency")
	if !ok {
		return nil, &entity.FieldError{Code: entity.MissingParam, Field: "Ds_Currency"}
	}
	response, ok := received.Get("Ds_Response")
	if !ok {
		return nil, &entity.FieldError{Code: entity.MissingParam, Field: "Ds_Response"}
	}
	if amount == "" {
		return nil, &entity.FieldError{Code: entity.MissingParam, Field: "amount"}
	}

	message := amount + order + g.merchant.Code + currency + response + g.merchant.Secret
	expected := sha1Hex(message)

	if !hmac.Equal([]byte(expected), []byte(strings.ToUpper(signature))) {
		return &entity.Verdict{Verified: false}, nil
	}

	decoded := make(entity.Feedback, len(params))
	for key, value := range params {
		decoded[key] = value
	}
	return &entity.Verdict{Verified: true, Decoded: decoded}, nil
}

func (g *Sha1Gateway) TranslateResponseCode(code int) string {
	return translateResponse(code, legacyResponseMessages)
}

// legacyFields lists the non-empty form inputs in the fixed wire order. The
// legacy key set has no Ds_Merchant_PayMethod.
func legacyFields(merchant *entity.Merchant, request *entity.Request) []entity.FormField {
	fields := make([]entity.FormField, 0, 20)
	add := func(name, value string) {
		if value != "" {
			fields = append(fields, entity.FormField{Name: name, Value: value})
		}
	}

	value, _ := request.Amount()
	add("Ds_Merchant_Amount", value)
	value, _ = request.AuthorisationCode()
	add("Ds_Merchant_AuthorisationCode", value)
	value, _ = request.ChargeExpiryDate()
	add("Ds_Merchant_ChargeExpiryDate", value)
	value, _ = request.ConsumerLanguage()
	add("Ds_Merchant_ConsumerLanguage", value)
	value, _ = request.Currency()
	add("Ds_Merchant_Currency", value)
	value, _ = request.DateFrecuency()
	add("Ds_Merchant_DateFrecuency", value)
	add("Ds_Merchant_MerchantCode", merchant.Code)
	value, _ = request.MerchantData()
	add("Ds_Merchant_MerchantData", value)
	add("Ds_Merchant_MerchantName", merchant.Name)
	value, _ = request.MerchantURL()
	add("Ds_Merchant_MerchantURL", value)
	value, _ = request.Order()
	add("Ds_Merchant_Order", value)
	value, _ = request.ProductDescription()
	add("Ds_Merchant_ProductDescription", value)
	value, _ = request.SumTotal()
	add("Ds_Merchant_SumTotal", value)
	add("Ds_Merchant_Terminal", merchant.Terminal)
	value, _ = request.Titular()
	add("Ds_Merchant_Titular", value)
	value, _ = request.TransactionDate()
	add("Ds_Merchant_TransactionDate", value)
	value, _ = request.TransactionType()
	add("Ds_Merchant_TransactionType", value)
	value, _ = request.UrlKO()
	add("Ds_Merchant_UrlKO", value)
	value, _ = request.UrlOK()
	add("Ds_Merchant_UrlOK", value)

	return fields
}

// amountExceeds reports whether amount is numerically greater than sumTotal.
func amountExceeds(amount, sumTotal string) bool {
	a, err := strconv.ParseInt(amount, 10, 64)
	if err != nil {
		return false
	}
	s, err := strconv.ParseInt(sumTotal, 10, 64)
	if err != nil {
		return false
	}
	return a > s
}

// sha1Hex returns the uppercase hex SHA-1 digest of the message.
func sha1Hex(message string) string {
	return strings.ToUpper(dongle.Encrypt.FromString(message).BySha1().ToHexString())
}
