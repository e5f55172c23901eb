package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrorCode(t *testing.T, err error) ErrorCode {
	t.Helper()
	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr), "expected a field error, got %v", err)
	return fieldErr.Code
}

func TestSetAmount(t *testing.T) {
	r := NewRequest()

	require.NoError(t, r.SetAmount("15050"))
	value, ok := r.Amount()
	assert.True(t, ok)
	assert.Equal(t, "15050", value)

	err := r.SetAmount("150.50")
	assert.Equal(t, BadParam, fieldErrorCode(t, err))

	err = r.SetAmount("1234567890123")
	assert.Equal(t, TooLongParam, fieldErrorCode(t, err))

	// rejected values must not overwrite the previous state
	value, ok = r.Amount()
	assert.True(t, ok)
	assert.Equal(t, "15050", value)
}

func TestSetOrder(t *testing.T) {
	r := NewRequest()

	require.NoError(t, r.SetOrder("1234"))
	require.NoError(t, r.SetOrder("0001abcDEF12"))

	err := r.SetOrder("0001abcDEF123")
	assert.Equal(t, BadParam, fieldErrorCode(t, err))

	// first four characters must be numeric
	err = r.SetOrder("12a4abcd")
	assert.Equal(t, BadParam, fieldErrorCode(t, err))

	err = r.SetOrder("123")
	assert.Equal(t, BadParam, fieldErrorCode(t, err))

	err = r.SetOrder("1234abc-")
	assert.Equal(t, BadParam, fieldErrorCode(t, err))
}

func TestSetCurrency(t *testing.T) {
	r := NewRequest()

	require.NoError(t, r.SetCurrency("978"))
	value, _ := r.Currency()
	assert.Equal(t, "978", value)

	err := r.SetCurrency("999")
	assert.Equal(t, BadParam, fieldErrorCode(t, err))
}

func TestSetTransactionType(t *testing.T) {
	r := NewRequest()

	require.NoError(t, r.SetTransactionType("0"))
	require.NoError(t, r.SetTransactionType("R"))

	err := r.SetTransactionType("4")
	assert.Equal(t, BadParam, fieldErrorCode(t, err))
}

func TestSetPaymentMethod(t *testing.T) {
	r := NewRequest()

	require.NoError(t, r.SetPaymentMethod("C"))
	require.NoError(t, r.SetPaymentMethod("CDR"))

	err := r.SetPaymentMethod("CX")
	assert.Equal(t, BadParam, fieldErrorCode(t, err))
}

func TestSetConsumerLanguage(t *testing.T) {
	r := NewRequest()

	require.NoError(t, r.SetConsumerLanguage("001"))
	require.NoError(t, r.SetConsumerLanguage("999"))

	err := r.SetConsumerLanguage("es")
	assert.Equal(t, BadParam, fieldErrorCode(t, err))
}

func TestSetAuthorisationCode(t *testing.T) {
	r := NewRequest()

	require.NoError(t, r.SetAuthorisationCode("123456"))

	err := r.SetAuthorisationCode("12345")
	assert.Equal(t, BadParam, fieldErrorCode(t, err))
}

func TestSetURLFields(t *testing.T) {
	r := NewRequest()

	require.NoError(t, r.SetMerchantURL("https://shop.example/notify"))
	require.NoError(t, r.SetUrlOK("https://shop.example/ok"))
	require.NoError(t, r.SetUrlKO("https://shop.example/ko"))

	err := r.SetMerchantURL("/notify")
	assert.Equal(t, BadParam, fieldErrorCode(t, err))

	err = r.SetUrlOK("not a url")
	assert.Equal(t, BadParam, fieldErrorCode(t, err))
}

func TestDateFieldsAgainstClock(t *testing.T) {
	clock := func() time.Time {
		return time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	}
	r := NewRequestWithClock(clock)

	require.NoError(t, r.SetChargeExpiryDate("2025-06-15"), "today is accepted")
	require.NoError(t, r.SetChargeExpiryDate("2026-01-01"))
	require.NoError(t, r.SetTransactionDate("2025-07-01"))

	err := r.SetChargeExpiryDate("2025-06-14")
	assert.Equal(t, BadParam, fieldErrorCode(t, err))

	err = r.SetTransactionDate("2024-12-31")
	assert.Equal(t, BadParam, fieldErrorCode(t, err))

	err = r.SetChargeExpiryDate("15/06/2025")
	assert.Equal(t, BadParam, fieldErrorCode(t, err))
}

func TestAbsentFields(t *testing.T) {
	r := NewRequest()

	_, ok := r.Amount()
	assert.False(t, ok)
	_, ok = r.SumTotal()
	assert.False(t, ok)
	_, ok = r.MerchantData()
	assert.False(t, ok)

	// an empty value set on purpose is present
	require.NoError(t, r.SetMerchantData(""))
	value, ok := r.MerchantData()
	assert.True(t, ok)
	assert.Equal(t, "", value)
}

func TestValidate(t *testing.T) {
	r := NewRequest()

	err := r.Validate()
	assert.Equal(t, MissingParam, fieldErrorCode(t, err))

	require.NoError(t, r.SetTransactionType("0"))
	require.NoError(t, r.SetAmount("15050"))
	require.NoError(t, r.SetCurrency("978"))

	err = r.Validate()
	assert.Equal(t, MissingParam, fieldErrorCode(t, err))

	require.NoError(t, r.SetOrder("250101120000"))
	require.NoError(t, r.Validate())

	// the sum total is filled from the amount at finalization
	sumTotal, ok := r.SumTotal()
	assert.True(t, ok)
	assert.Equal(t, "15050", sumTotal)
}

func TestValidateRecurring(t *testing.T) {
	r := NewRequest()
	require.NoError(t, r.SetTransactionType(TransactionTypeRecurring))
	require.NoError(t, r.SetAmount("15050"))
	require.NoError(t, r.SetCurrency("978"))
	require.NoError(t, r.SetOrder("250101120000"))

	err := r.Validate()
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, MissingParam, fieldErr.Code)
	assert.Equal(t, "Ds_Merchant_DateFrecuency", fieldErr.Field)

	require.NoError(t, r.SetDateFrecuency("30"))
	require.NoError(t, r.Validate())
}
