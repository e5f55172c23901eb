package entity

// MerchantParameters carries the redirect request fields under their fixed
// wire names. The struct order is the wire order of the JSON envelope; empty
// fields are dropped by omitempty, so a present-but-empty key is never sent.
type MerchantParameters struct {
	Amount             string `json:"Ds_Merchant_Amount,omitempty"`
	AuthorisationCode  string `json:"Ds_Merchant_AuthorisationCode,omitempty"`
	ChargeExpiryDate   string `json:"Ds_Merchant_ChargeExpiryDate,omitempty"`
	ConsumerLanguage   string `json:"Ds_Merchant_ConsumerLanguage,omitempty"`
	Currency           string `json:"Ds_Merchant_Currency,omitempty"`
	DateFrecuency      string `json:"Ds_Merchant_DateFrecuency,omitempty"`
	MerchantCode       string `json:"Ds_Merchant_MerchantCode,omitempty"`
	MerchantData       string `json:"Ds_Merchant_MerchantData,omitempty"`
	MerchantName       string `json:"Ds_Merchant_MerchantName,omitempty"`
	MerchantURL        string `json:"Ds_Merchant_MerchantURL,omitempty"`
	Order              string `json:"Ds_Merchant_Order,omitempty"`
	PayMethod          string `json:"Ds_Merchant_PayMethod,omitempty"`
	ProductDescription string `json:"Ds_Merchant_ProductDescription,omitempty"`
	SumTotal           string `json:"Ds_Merchant_SumTotal,omitempty"`
	Terminal           string `json:"Ds_Merchant_Terminal,omitempty"`
	Titular            string `json:"Ds_Merchant_Titular,omitempty"`
	TransactionDate    string `json:"Ds_Merchant_TransactionDate,omitempty"`
	TransactionType    string `json:"Ds_Merchant_TransactionType,omitempty"`
	UrlKO              string `json:"Ds_Merchant_UrlKO,omitempty"`
	UrlOK              string `json:"Ds_Merchant_UrlOK,omitempty"`
}
