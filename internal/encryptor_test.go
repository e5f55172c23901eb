package internal

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sermepa/entity"
)

// testSecret is the Base64 encoding of a 24-byte 3DES key.
const testSecret = "MTIzNDU2Nzg5MDEyMzQ1Njc4OTAxMjM0"

func TestCreateSignature(t *testing.T) {
	encryptor := NewEncryptor(testSecret, "eyJEc19NZXJjaGFudF9BbW91bnQiOiIxNTA1MCJ9", "250101120000")

	signature, err := encryptor.CreateSignature()
	require.NoError(t, err)
	require.NotEmpty(t, signature)

	// the outbound signature is a plain Base64 HMAC-SHA256 digest
	digest, err := base64.StdEncoding.DecodeString(signature)
	require.NoError(t, err)
	assert.Len(t, digest, 32)

	// same inputs, same signature
	again, err := NewEncryptor(testSecret, "eyJEc19NZXJjaGFudF9BbW91bnQiOiIxNTA1MCJ9", "250101120000").CreateSignature()
	require.NoError(t, err)
	assert.Equal(t, signature, again)

	// a different order derives a different key
	other, err := NewEncryptor(testSecret, "eyJEc19NZXJjaGFudF9BbW91bnQiOiIxNTA1MCJ9", "250101120001").CreateSignature()
	require.NoError(t, err)
	assert.NotEqual(t, signature, other)
}

func TestCreateFeedbackSignature(t *testing.T) {
	encryptor := NewEncryptor(testSecret, "eyJEc19PcmRlciI6IjI1MDEwMTEyMDAwMCJ9", "250101120000")

	outbound, err := encryptor.CreateSignature()
	require.NoError(t, err)
	inbound, err := encryptor.CreateFeedbackSignature()
	require.NoError(t, err)

	// the inbound signature is the same digest with URL-safe characters
	translated := strings.NewReplacer("+", "-", "/", "_").Replace(outbound)
	assert.Equal(t, translated, inbound)
	assert.NotContains(t, inbound, "+")
	assert.NotContains(t, inbound, "/")
}

func TestCreateSignatureAlignedOrder(t *testing.T) {
	// an 8-character order fills the 3DES block exactly, no padding is added
	signature, err := NewEncryptor(testSecret, "payload", "25010112").CreateSignature()
	require.NoError(t, err)
	assert.NotEmpty(t, signature)
}

func TestCreateSignatureMissingSecret(t *testing.T) {
	_, err := NewEncryptor("", "payload", "250101120000").CreateSignature()
	var fieldErr *entity.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, entity.MissingParam, fieldErr.Code)
}

func TestCreateSignatureBadSecret(t *testing.T) {
	_, err := NewEncryptor("not!!!base64", "payload", "250101120000").CreateSignature()
	assert.Error(t, err)
}

func TestCreateSignatureEmptyOrder(t *testing.T) {
	_, err := NewEncryptor(testSecret, "payload", "").CreateSignature()
	assert.Error(t, err)
}
