package internal

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"sermepa/entity"
	"sermepa/services"
)

// NewGateway returns the protocol engine matching the merchant's configured
// signature algorithm.
func NewGateway(merchant *entity.Merchant) services.Gateway {
	switch merchant.Algorithm {
	case entity.AlgorithmSha1, entity.AlgorithmSha1Enhanced:
		return &Sha1Gateway{merchant: merchant}
	default:
		return &HmacGateway{merchant: merchant}
	}
}

// merchantParameters assembles the wire parameter struct from the profile
// identity and the non-empty request fields.
func merchantParameters(merchant *entity.Merchant, request *entity.Request) *entity.MerchantParameters {
	parameters := &entity.MerchantParameters{
		MerchantCode: merchant.Code,
		MerchantName: merchant.Name,
		Terminal:     merchant.Terminal,
	}
	parameters.Amount, _ = request.Amount()
	parameters.AuthorisationCode, _ = request.AuthorisationCode()
	parameters.ChargeExpiryDate, _ = request.ChargeExpiryDate()
	parameters.ConsumerLanguage, _ = request.ConsumerLanguage()
	parameters.Currency, _ = request.Currency()
	parameters.DateFrecuency, _ = request.DateFrecuency()
	parameters.MerchantData, _ = request.MerchantData()
	parameters.MerchantURL, _ = request.MerchantURL()
	parameters.Order, _ = request.Order()
	parameters.PayMethod, _ = request.PaymentMethod()
	parameters.ProductDescription, _ = request.ProductDescription()
	parameters.SumTotal, _ = request.SumTotal()
	parameters.Titular, _ = request.Titular()
	parameters.TransactionDate, _ = request.TransactionDate()
	parameters.TransactionType, _ = request.TransactionType()
	parameters.UrlKO, _ = request.UrlKO()
	parameters.UrlOK, _ = request.UrlOK()
	return parameters
}

// encodeParameters serializes the parameters to JSON and encodes them to
// Base64, producing the opaque envelope value.
func encodeParameters(parameters *entity.MerchantParameters) (string, error) {
	parametersJson, err := json.Marshal(parameters)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(parametersJson), nil
}

// decodeParameters reverses the envelope encoding. Inbound envelopes may use
// URL-safe Base64 characters; they are translated back before decoding and
// all values are normalized to strings.
func decodeParameters(encoded string) (entity.Feedback, error) {
	if encoded == "" {
		return nil, fmt.Errorf("empty parameters")
	}
	restored := strings.NewReplacer("-", "+", "_", "/").Replace(encoded)
	if m := len(restored) % 4; m != 0 {
		restored += strings.Repeat("=", 4-m)
	}
	parametersBytes, err := base64.StdEncoding.DecodeString(restored)
	if err != nil {
		return nil, fmt.Errorf("decode parameters: %v", err)
	}
	var raw map[string]any
	if err = json.Unmarshal(parametersBytes, &raw); err != nil {
		return nil, fmt.Errorf("parse parameters: %v", err)
	}
	feedback := make(entity.Feedback, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			feedback[key] = v
		case float64:
			feedback[key] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			feedback[key] = fmt.Sprint(v)
		}
	}
	return feedback, nil
}
