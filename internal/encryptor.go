package internal

import (
	"bytes"
	"crypto/cipher"
	"crypto/des"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"sermepa/entity"
)

// Encryptor computes the modern HMAC-SHA256 signature over the encoded
// parameters envelope. The HMAC key is derived per order: the order number is
// encrypted with 3DES in CBC mode, zero IV, keyed by the Base64-decoded
// merchant secret.
type Encryptor struct {
	secret     string // merchant key encoded with Base64
	parameters string // Base64 JSON envelope to sign
	order      string // order number to be encrypted
}

func NewEncryptor(secret string, parameters string, order string) *Encryptor {
	return &Encryptor{
		secret:     secret,
		parameters: parameters,
		order:      order,
	}
}

// CreateSignature returns the outbound signature: the raw HMAC digest encoded
// with plain Base64.
func (e *Encryptor) CreateSignature() (string, error) {
	if e.secret == "" {
		return "", &entity.FieldError{Code: entity.MissingParam, Field: "merchant secret"}
	}

	key, err := base64.StdEncoding.DecodeString(e.secret)
	if err != nil {
		return "", fmt.Errorf("decode secret: %v", err)
	}

	// derive the per-order key with 3DES
	orderKey, err := e.encrypt3DES(e.order, key)
	if err != nil {
		return "", fmt.Errorf("encrypt3DES: %v", err)
	}

	hash := e.mac256(e.parameters, orderKey)

	return base64.StdEncoding.EncodeToString(hash), nil
}

// CreateFeedbackSignature returns the signature expected on inbound
// notifications: the same digest with '+' and '/' translated to '-' and '_'.
// The outbound and inbound encodings differ on the wire; both are kept.
func (e *Encryptor) CreateFeedbackSignature() (string, error) {
	signature, err := e.CreateSignature()
	if err != nil {
		return "", err
	}
	return strings.NewReplacer("+", "-", "/", "_").Replace(signature), nil
}

func (e *Encryptor) encrypt3DES(plainText string, key []byte) ([]byte, error) {
	if plainText == "" {
		return nil, errors.New("plainText cannot be empty")
	}

	toEncryptArray := []byte(plainText)

	block, err := des.NewTripleDESCipher(key)
	if err != nil {
		return nil, err
	}

	// SALT used in 3DES encryption process
	salt := []byte{0, 0, 0, 0, 0, 0, 0, 0}

	// Zero padding to the block boundary, nothing added when already aligned.
	if padding := len(toEncryptArray) % block.BlockSize(); padding != 0 {
		addText := bytes.Repeat([]byte{0}, block.BlockSize()-padding)
		toEncryptArray = append(toEncryptArray, addText...)
	}

	ciphertext := make([]byte, len(toEncryptArray))

	mode := cipher.NewCBCEncrypter(block, salt)
	mode.CryptBlocks(ciphertext, toEncryptArray)

	return ciphertext, nil
}

func (e *Encryptor) mac256(message string, key []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(message))
	return mac.Sum(nil)
}
