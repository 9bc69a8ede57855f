package fp

import (
	"fmt"
	"strings"
)

// Validator is a function that validates a value and returns an error if invalid.
type Validator[T any] func(T) error

// ValidationError represents a validation error with field information.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// HasErrors returns true if there are any validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// ByField returns the errors keyed by field name. When a field carries more
// than one error, the first one wins.
func (e ValidationErrors) ByField() map[string]string {
	out := make(map[string]string, len(e))
	for _, err := range e {
		if _, ok := out[err.Field]; !ok {
			out[err.Field] = err.Message
		}
	}
	return out
}

// Validate runs multiple validators and collects all errors.
func Validate[T any](value T, validators ...Validator[T]) Result[T] {
	var errs ValidationErrors
	for _, v := range validators {
		if err := v(value); err != nil {
			switch e := err.(type) {
			case ValidationError:
				errs = append(errs, e)
			case ValidationErrors:
				errs = append(errs, e...)
			default:
				errs = append(errs, ValidationError{Message: err.Error()})
			}
		}
	}
	if len(errs) > 0 {
		return Failure[T](errs)
	}
	return Success(value)
}

// Required validates that a string is not empty.
func Required(field, message string) Validator[string] {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return ValidationError{Field: field, Message: message}
		}
		return nil
	}
}

// Range validates that a number is within [min, max].
func Range[T int | int32 | int64 | float32 | float64](field string, min, max T, message string) Validator[T] {
	return func(n T) error {
		if n < min || n > max {
			return ValidationError{Field: field, Message: message}
		}
		return nil
	}
}

// Custom creates a validator from a predicate.
func Custom[T any](field string, predicate func(T) bool, message string) Validator[T] {
	return func(v T) error {
		if predicate == nil || !predicate(v) {
			return ValidationError{Field: field, Message: message}
		}
		return nil
	}
}
