package entity

import "net/url"

// Merchant is the immutable identity of one gateway account. It is created
// once at configuration time and shared read-only by every request builder and
// feedback verification.
type Merchant struct {
	// Name of the commerce shown on the payment receipt.
	Name string
	// Code is the FUC code assigned to the commerce, exactly 9 characters.
	Code string
	// Terminal assigned by the bank, exactly 3 digits.
	Terminal string
	// Secret is the shared signing key. For the modern algorithm it is the
	// Base64 encoding of the raw key; the legacy algorithms use it verbatim.
	Secret string
	// Algorithm selects the signing scheme, one of AvailableSignatureAlgorithms.
	Algorithm string
	// URL is the resolved gateway endpoint the redirect form posts to.
	URL string
}

// NewMerchant validates the account data and resolves the environment to the
// gateway endpoint. The environment is "live", "test" or an absolute URL.
func NewMerchant(name, code, terminal, secret, algorithm, environment string) (*Merchant, error) {
	if len(name) > MerchantNameMaxLength {
		return nil, tooLongParam("Ds_Merchant_MerchantName", name)
	}
	if len(code) != MerchantCodeLength {
		return nil, badParam("Ds_Merchant_MerchantCode", code)
	}
	if !reTerminal.MatchString(terminal) {
		return nil, badParam("Ds_Merchant_Terminal", terminal)
	}
	if secret == "" {
		return nil, missingParam("merchant secret")
	}
	if _, ok := AvailableSignatureAlgorithms()[algorithm]; !ok {
		return nil, &FieldError{Code: UndefinedParam, Field: "signature algorithm", Value: algorithm}
	}
	resolved, err := resolveEnvironment(environment)
	if err != nil {
		return nil, err
	}
	return &Merchant{
		Name:      name,
		Code:      code,
		Terminal:  terminal,
		Secret:    secret,
		Algorithm: algorithm,
		URL:       resolved,
	}, nil
}

func resolveEnvironment(environment string) (string, error) {
	switch environment {
	case "live":
		return URLLive, nil
	case "test":
		return URLTest, nil
	}
	if !isAbsoluteURL(environment) {
		return "", badParam("environment", environment)
	}
	return environment, nil
}

func isAbsoluteURL(value string) bool {
	u, err := url.Parse(value)
	return err == nil && u.IsAbs() && u.Host != ""
}
