package internal

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// requestKey is the context key carrying the identifier of one inbound HTTP
// request through the payment handlers.
type requestKey struct{}

// WithRequestID tags the context with a fresh request identifier. A context
// already carrying one is returned unchanged, so the identifier stays stable
// across the whole handler chain.
func WithRequestID(ctx context.Context) context.Context {
	if _, ok := ctx.Value(requestKey{}).(string); ok {
		return ctx
	}
	return context.WithValue(ctx, requestKey{}, newRequestID())
}

// GetRequestID returns the identifier set by WithRequestID, or an empty
// string for an untagged context.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestKey{}).(string)
	return id
}

func newRequestID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("t%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}
