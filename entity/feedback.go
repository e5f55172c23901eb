package entity

import (
	"strconv"
	"strings"
	"time"
)

// Feedback is a string parameter map received from the gateway. The raw
// inbound map is untrusted until a gateway Verify call succeeds; the decoded
// map of a verdict is never mutated after decoding.
type Feedback map[string]string

// Get looks up a parameter by name, case-insensitively. A missing optional
// key is reported through the second return value, not as an error.
func (f Feedback) Get(key string) (string, bool) {
	if value, ok := f[key]; ok {
		return value, true
	}
	for name, value := range f {
		if strings.EqualFold(name, key) {
			return value, true
		}
	}
	return "", false
}

// Response returns the numeric outcome code of the notification.
func (f Feedback) Response() (int, bool) {
	value, ok := f.Get("Ds_Response")
	if !ok {
		return 0, false
	}
	code, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return code, true
}

// Order returns the order identifier echoed by the gateway.
func (f Feedback) Order() (string, bool) {
	return f.Get("Ds_Order")
}

// Verdict is the outcome of verifying one feedback message. Decoded is only
// populated when the signature matched.
type Verdict struct {
	Verified bool
	Decoded  Feedback
}

// FeedbackRecord archives one gateway notification, verified or rejected.
type FeedbackRecord struct {
	Order        string    `json:"order" bson:"order"`
	Verified     bool      `json:"verified" bson:"verified"`
	Response     string    `json:"response" bson:"response"`
	Result       string    `json:"result" bson:"result"`
	Params       Feedback  `json:"params" bson:"params"`
	TimeReceived time.Time `json:"time_received" bson:"time_received"`
}
