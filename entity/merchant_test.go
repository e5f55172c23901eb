package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMerchant(t *testing.T) {
	merchant, err := NewMerchant("Shop", "123456789", "001", "secret", AlgorithmHmacSha256, "test")
	require.NoError(t, err)
	assert.Equal(t, URLTest, merchant.URL)

	merchant, err = NewMerchant("Shop", "123456789", "001", "secret", AlgorithmSha1, "live")
	require.NoError(t, err)
	assert.Equal(t, URLLive, merchant.URL)
}

func TestNewMerchantCodeLength(t *testing.T) {
	_, err := NewMerchant("Shop", "12345678", "001", "secret", AlgorithmHmacSha256, "test")
	assert.Error(t, err, "8-character code is rejected")

	_, err = NewMerchant("Shop", "1234567890", "001", "secret", AlgorithmHmacSha256, "test")
	assert.Error(t, err, "10-character code is rejected")
}

func TestNewMerchantValidation(t *testing.T) {
	_, err := NewMerchant("this commerce name is way too long", "123456789", "001", "secret", AlgorithmHmacSha256, "test")
	assert.Error(t, err)

	_, err = NewMerchant("Shop", "123456789", "1", "secret", AlgorithmHmacSha256, "test")
	assert.Error(t, err)

	_, err = NewMerchant("Shop", "123456789", "001", "", AlgorithmHmacSha256, "test")
	assert.Error(t, err)

	_, err = NewMerchant("Shop", "123456789", "001", "secret", "md5", "test")
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, UndefinedParam, fieldErr.Code)
}

func TestNewMerchantEnvironmentOverride(t *testing.T) {
	merchant, err := NewMerchant("Shop", "123456789", "001", "secret", AlgorithmHmacSha256, "https://sis-d.redsys.es/sis/realizarPago")
	require.NoError(t, err)
	assert.Equal(t, "https://sis-d.redsys.es/sis/realizarPago", merchant.URL)

	_, err = NewMerchant("Shop", "123456789", "001", "secret", AlgorithmHmacSha256, "staging")
	assert.Error(t, err)
}
