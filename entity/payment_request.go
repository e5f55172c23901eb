package entity

// PaymentRequest is the modern signed envelope: the Base64 JSON parameters,
// their signature and the constant signature version tag. The same three keys
// come back on inbound notifications.
type PaymentRequest struct {
	Parameters       string `json:"Ds_MerchantParameters"`
	Signature        string `json:"Ds_Signature"`
	SignatureVersion string `json:"Ds_SignatureVersion"`
}

// Fields returns the three hidden inputs of the redirect form in wire order.
func (p *PaymentRequest) Fields() []FormField {
	return []FormField{
		{Name: "Ds_SignatureVersion", Value: p.SignatureVersion},
		{Name: "Ds_MerchantParameters", Value: p.Parameters},
		{Name: "Ds_Signature", Value: p.Signature},
	}
}
