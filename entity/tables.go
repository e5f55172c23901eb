package entity

// Signature algorithm selectors. The legacy variants sign a concatenation of
// form values with SHA-1, the modern one signs the Base64 JSON envelope with
// HMAC-SHA256 keyed per order.
const (
	AlgorithmSha1         = "sha1"
	AlgorithmSha1Enhanced = "sha1-enhanced"
	AlgorithmHmacSha256   = "sha256"
)

// SignatureVersion is the constant tag sent as Ds_SignatureVersion with every
// modern redirect request.
const SignatureVersion = "HMAC_SHA256_V1"

// Gateway endpoints resolved from the configured environment.
const (
	URLLive = "https://sis.redsys.es/sis/realizarPago"
	URLTest = "https://sis-t.redsys.es:25443/sis/realizarPago"
)

// Fixed field sizes of the wire protocol.
const (
	MerchantCodeLength          = 9
	MerchantNameMaxLength       = 25
	TerminalLength              = 3
	OrderMaxLength              = 12
	AmountMaxLength             = 12
	ProductDescriptionMaxLength = 125
	TitularMaxLength            = 60
	MerchantDataMaxLength       = 1024
	DateFrecuencyMaxLength      = 5
)

// Transaction types referenced by the finalization rules.
const (
	TransactionTypeAuthorization = "0"
	TransactionTypeReturn        = "3"
	TransactionTypeRecurring     = "5"
)

// AvailableCurrencies returns the supported currency codes with display labels.
func AvailableCurrencies() map[string]string {
	return map[string]string{
		"978": "Euro",
		"840": "U.S. Dollar",
		"826": "Pound",
		"392": "Yen",
		"032": "Southern Argentina",
		"124": "Canadian Dollar",
		"152": "Chilean Peso",
		"170": "Colombian Peso",
		"356": "India Rupee",
		"484": "New Mexican Peso",
		"604": "Soles",
		"756": "Swiss Franc",
		"986": "Brazilian Real",
		"937": "Bolivar",
		"949": "Turkish lira",
	}
}

// AvailableConsumerLanguages returns the supported consumer language codes.
func AvailableConsumerLanguages() map[string]string {
	return map[string]string{
		"000": "Unknown",
		"001": "Spanish",
		"002": "English",
		"003": "Catalan",
		"004": "French",
		"005": "German",
		"006": "Dutch",
		"007": "Italian",
		"008": "Swedish",
		"009": "Portuguese",
		"010": "Valencian",
		"011": "Polish",
		"012": "Galician",
		"013": "Euskera",
		"208": "Danish",
	}
}

// AvailableTransactionTypes returns the transaction type codes accepted by the
// gateway.
func AvailableTransactionTypes() map[string]string {
	return map[string]string{
		"0": "Authorization",
		"1": "Pre-authorization",
		"2": "Confirmation of preauthorization",
		"3": "Automatic return",
		"5": "Recurring transaction",
		"6": "Successive transaction",
		"7": "Pre-authentication",
		"8": "Confirmation of pre-authentication",
		"9": "Annulment of preauthorization",
		"O": "Authorization delayed",
		"P": "Confirmation of authorization in deferred",
		"Q": "Delayed authorization Rescission",
		"R": "Initial recurring deferred released",
		"S": "Successively recurring deferred released",
	}
}

// AvailablePaymentMethods returns the payment method restriction letters.
func AvailablePaymentMethods() map[string]string {
	return map[string]string{
		"C": "Credit card",
		"D": "Domiciliation",
		"R": "Bank transfer",
		"T": "Iupay card",
		"O": "Iupay",
		"V": "v.me",
	}
}

// AvailableEnvironments returns the named environments. Any absolute URL is
// also accepted as an explicit override.
func AvailableEnvironments() map[string]string {
	return map[string]string{
		"live": "Live environment",
		"test": "Test environment",
	}
}

// AvailableSignatureAlgorithms returns the supported signing schemes.
func AvailableSignatureAlgorithms() map[string]string {
	return map[string]string{
		AlgorithmSha1:         "Legacy SHA-1",
		AlgorithmSha1Enhanced: "Legacy enhanced SHA-1",
		AlgorithmHmacSha256:   "HMAC-SHA256 with 3DES derived key",
	}
}
