// Package entity defines data models for the payment gateway adapter.
package entity

import "time"

// PaymentOrder tracks one outbound payment attempt from form creation to the
// gateway feedback that closes it. The stored amount is the out-of-band
// reference the legacy protocol needs to verify its feedback.
type PaymentOrder struct {
	Order             string    `json:"order" bson:"order"`
	Amount            string    `json:"amount" bson:"amount"`
	Currency          string    `json:"currency" bson:"currency"`
	Description       string    `json:"description" bson:"description"`
	IsCompleted       bool      `json:"is_completed" bson:"is_completed"`
	Verified          bool      `json:"verified" bson:"verified"`
	Response          string    `json:"response" bson:"response"`
	Result            string    `json:"result" bson:"result"`
	AuthorisationCode string    `json:"authorisation_code,omitempty" bson:"authorisation_code,omitempty"`
	MerchantData      string    `json:"merchant_data,omitempty" bson:"merchant_data,omitempty"`
	TimeOpened        time.Time `json:"time_opened" bson:"time_opened"`
	TimeClosed        time.Time `json:"time_closed" bson:"time_closed"`
}
