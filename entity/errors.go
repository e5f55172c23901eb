package entity

import "fmt"

// ErrorCode classifies a failure raised by a field setter or by the
// finalization check. A signature mismatch during feedback verification is
// never reported through this type; it is a normal boolean outcome.
type ErrorCode int

const (
	// UndefinedParam reports a reference to an option that does not exist.
	UndefinedParam ErrorCode = iota
	// MissingParam reports a required value absent at signing time.
	MissingParam
	// BadParam reports a malformed value or one outside a reference table.
	BadParam
	// TooLongParam reports a value exceeding a fixed maximum length.
	TooLongParam
)

// FieldError carries the error kind, the wire name of the offending field and
// the rejected value.
type FieldError struct {
	Code  ErrorCode
	Field string
	Value string
}

func (e *FieldError) Error() string {
	switch e.Code {
	case UndefinedParam:
		return fmt.Sprintf("the option %s: %s is not defined", e.Field, e.Value)
	case MissingParam:
		return fmt.Sprintf("must enter a valid %s", e.Field)
	case TooLongParam:
		return fmt.Sprintf("the specified %s: %s is too long", e.Field, e.Value)
	default:
		return fmt.Sprintf("the specified %s: %s is not valid", e.Field, e.Value)
	}
}

func missingParam(field string) error {
	return &FieldError{Code: MissingParam, Field: field}
}

func badParam(field, value string) error {
	return &FieldError{Code: BadParam, Field: field, Value: value}
}

func tooLongParam(field, value string) error {
	return &FieldError{Code: TooLongParam, Field: field, Value: value}
}
