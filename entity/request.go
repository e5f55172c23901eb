package entity

import (
	"regexp"
	"time"
)

var (
	reDigits   = regexp.MustCompile(`^[0-9]+$`)
	reOrder    = regexp.MustCompile(`^[0-9]{4}[0-9A-Za-z]{0,8}$`)
	reTerminal = regexp.MustCompile(`^[0-9]{3}$`)
	reAuthCode = regexp.MustCompile(`^[0-9]{6}$`)
	reLanguage = regexp.MustCompile(`^[0-9]{3}$`)
	reDate     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// field keeps a value together with an explicit presence flag, so an empty
// string set on purpose is not confused with a value that was never set.
type field struct {
	value string
	set   bool
}

func (f field) get() (string, bool) {
	return f.value, f.set
}

// Request collects the merchant fields of one outbound payment. A request is
// built fresh per payment attempt, populated through validating setters and
// consumed once by a gateway Build call. Setters reject invalid values and
// leave the previous state untouched; they never coerce.
type Request struct {
	amount             field
	authorisationCode  field
	chargeExpiryDate   field
	consumerLanguage   field
	currency           field
	dateFrecuency      field
	merchantData       field
	merchantURL        field
	order              field
	paymentMethod      field
	productDescription field
	sumTotal           field
	titular            field
	transactionDate    field
	transactionType    field
	urlKO              field
	urlOK              field

	now func() time.Time
}

// NewRequest returns an empty request using the wall clock for date checks.
func NewRequest() *Request {
	return &Request{now: time.Now}
}

// NewRequestWithClock returns an empty request with an injected clock. Date
// setters validate "not in the past" against the given clock.
func NewRequestWithClock(now func() time.Time) *Request {
	return &Request{now: now}
}

// SetAmount sets the payment amount in currency minor units, digits only,
// up to 12 characters.
func (r *Request) SetAmount(amount string) error {
	if !reDigits.MatchString(amount) {
		return badParam("Ds_Merchant_Amount", amount)
	}
	if len(amount) > AmountMaxLength {
		return tooLongParam("Ds_Merchant_Amount", amount)
	}
	r.amount = field{amount, true}
	return nil
}

func (r *Request) Amount() (string, bool) { return r.amount.get() }

// SetAuthorisationCode sets the code identifying the original authorization of
// a recurring operation, exactly 6 digits.
func (r *Request) SetAuthorisationCode(code string) error {
	if !reAuthCode.MatchString(code) {
		return badParam("Ds_Merchant_AuthorisationCode", code)
	}
	r.authorisationCode = field{code, true}
	return nil
}

func (r *Request) AuthorisationCode() (string, bool) { return r.authorisationCode.get() }

// SetChargeExpiryDate sets the recurring charge expiry date, yyyy-MM-dd, not
// in the past.
func (r *Request) SetChargeExpiryDate(date string) error {
	if !r.validFutureDate(date) {
		return badParam("Ds_Merchant_ChargeExpiryDate", date)
	}
	r.chargeExpiryDate = field{date, true}
	return nil
}

func (r *Request) ChargeExpiryDate() (string, bool) { return r.chargeExpiryDate.get() }

// SetConsumerLanguage sets the 3-digit consumer language code. Any well-formed
// 3-digit code is accepted; known codes are listed by AvailableConsumerLanguages.
func (r *Request) SetConsumerLanguage(language string) error {
	if !reLanguage.MatchString(language) {
		if _, ok := AvailableConsumerLanguages()[language]; !ok {
			return badParam("Ds_Merchant_ConsumerLanguage", language)
		}
	}
	r.consumerLanguage = field{language, true}
	return nil
}

func (r *Request) ConsumerLanguage() (string, bool) { return r.consumerLanguage.get() }

// SetCurrency sets the numeric currency code, validated against the supported
// currency table.
func (r *Request) SetCurrency(currency string) error {
	if _, ok := AvailableCurrencies()[currency]; !ok {
		return badParam("Ds_Merchant_Currency", currency)
	}
	r.currency = field{currency, true}
	return nil
}

func (r *Request) Currency() (string, bool) { return r.currency.get() }

// SetDateFrecuency sets the frequency in days between recurring charges,
// digits only, up to 5 characters.
func (r *Request) SetDateFrecuency(frequency string) error {
	if !reDigits.MatchString(frequency) {
		return badParam("Ds_Merchant_DateFrecuency", frequency)
	}
	if len(frequency) > DateFrecuencyMaxLength {
		return tooLongParam("Ds_Merchant_DateFrecuency", frequency)
	}
	r.dateFrecuency = field{frequency, true}
	return nil
}

func (r *Request) DateFrecuency() (string, bool) { return r.dateFrecuency.get() }

// SetMerchantData sets opaque data echoed back untouched in the feedback.
func (r *Request) SetMerchantData(data string) error {
	if len(data) > MerchantDataMaxLength {
		return tooLongParam("Ds_Merchant_MerchantData", data)
	}
	r.merchantData = field{data, true}
	return nil
}

func (r *Request) MerchantData() (string, bool) { return r.merchantData.get() }

// SetMerchantURL sets the absolute URL receiving the asynchronous notification.
func (r *Request) SetMerchantURL(merchantURL string) error {
	if !isAbsoluteURL(merchantURL) {
		return badParam("Ds_Merchant_MerchantURL", merchantURL)
	}
	r.merchantURL = field{merchantURL, true}
	return nil
}

func (r *Request) MerchantURL() (string, bool) { return r.merchantURL.get() }

// SetOrder sets the order identifier: first 4 characters numeric, remainder
// alphanumeric, 12 characters at most.
func (r *Request) SetOrder(order string) error {
	if !reOrder.MatchString(order) {
		return badParam("Ds_Merchant_Order", order)
	}
	r.order = field{order, true}
	return nil
}

func (r *Request) Order() (string, bool) { return r.order.get() }

// SetPaymentMethod restricts the payment method selection. Every letter must
// be a key of the payment method table.
func (r *Request) SetPaymentMethod(methods string) error {
	available := AvailablePaymentMethods()
	for _, method := range methods {
		if _, ok := available[string(method)]; !ok {
			return badParam("Ds_Merchant_PayMethod", string(method))
		}
	}
	r.paymentMethod = field{methods, true}
	return nil
}

func (r *Request) PaymentMethod() (string, bool) { return r.paymentMethod.get() }

// SetProductDescription sets the text shown on the purchase confirmation.
func (r *Request) SetProductDescription(description string) error {
	if len(description) > ProductDescriptionMaxLength {
		return tooLongParam("Ds_Merchant_ProductDescription", description)
	}
	r.productDescription = field{description, true}
	return nil
}

func (r *Request) ProductDescription() (string, bool) { return r.productDescription.get() }

// SetSumTotal sets the sum of the amounts of recurring installments. When not
// set it is auto-filled from the amount at validation time.
func (r *Request) SetSumTotal(sumTotal string) error {
	if !reDigits.MatchString(sumTotal) {
		return badParam("Ds_Merchant_SumTotal", sumTotal)
	}
	if len(sumTotal) > AmountMaxLength {
		return tooLongParam("Ds_Merchant_SumTotal", sumTotal)
	}
	r.sumTotal = field{sumTotal, true}
	return nil
}

func (r *Request) SumTotal() (string, bool) { return r.sumTotal.get() }

// SetTitular sets the card holder name shown on the confirmation screen.
func (r *Request) SetTitular(titular string) error {
	if len(titular) > TitularMaxLength {
		return tooLongParam("Ds_Merchant_Titular", titular)
	}
	r.titular = field{titular, true}
	return nil
}

func (r *Request) Titular() (string, bool) { return r.titular.get() }

// SetTransactionDate sets the date of a successive recurring operation,
// yyyy-MM-dd, not in the past.
func (r *Request) SetTransactionDate(date string) error {
	if !r.validFutureDate(date) {
		return badParam("Ds_Merchant_TransactionDate", date)
	}
	r.transactionDate = field{date, true}
	return nil
}

func (r *Request) TransactionDate() (string, bool) { return r.transactionDate.get() }

// SetTransactionType sets the operation type, validated against the
// transaction type table.
func (r *Request) SetTransactionType(transactionType string) error {
	if _, ok := AvailableTransactionTypes()[transactionType]; !ok {
		return badParam("Ds_Merchant_TransactionType", transactionType)
	}
	r.transactionType = field{transactionType, true}
	return nil
}

func (r *Request) TransactionType() (string, bool) { return r.transactionType.get() }

// SetUrlKO sets the absolute URL the holder returns to on a failed payment.
func (r *Request) SetUrlKO(urlKO string) error {
	if !isAbsoluteURL(urlKO) {
		return badParam("Ds_Merchant_UrlKO", urlKO)
	}
	r.urlKO = field{urlKO, true}
	return nil
}

func (r *Request) UrlKO() (string, bool) { return r.urlKO.get() }

// SetUrlOK sets the absolute URL the holder returns to on a successful payment.
func (r *Request) SetUrlOK(urlOK string) error {
	if !isAbsoluteURL(urlOK) {
		return badParam("Ds_Merchant_UrlOK", urlOK)
	}
	r.urlOK = field{urlOK, true}
	return nil
}

func (r *Request) UrlOK() (string, bool) { return r.urlOK.get() }

// Validate is the finalization check run immediately before building. Amount,
// currency, order and transaction type are mandatory. The sum total is
// auto-filled from the amount when unset, and a recurring transaction type
// requires the date frequency.
func (r *Request) Validate() error {
	if !r.transactionType.set {
		return missingParam("Ds_Merchant_TransactionType")
	}
	if !r.amount.set {
		return missingParam("Ds_Merchant_Amount")
	}
	if !r.currency.set {
		return missingParam("Ds_Merchant_Currency")
	}
	if !r.order.set {
		return missingParam("Ds_Merchant_Order")
	}
	if !r.sumTotal.set {
		r.sumTotal = r.amount
	}
	if r.transactionType.value == TransactionTypeRecurring && !r.dateFrecuency.set {
		return missingParam("Ds_Merchant_DateFrecuency")
	}
	return nil
}

func (r *Request) validFutureDate(value string) bool {
	if !reDate.MatchString(value) {
		return false
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return false
	}
	now := r.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !date.Before(today)
}
