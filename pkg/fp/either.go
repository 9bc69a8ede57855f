package fp

import (
	"github.com/IBM/fp-go/either"
)

// Result represents a computation that can succeed with a value of type T,
// or fail with an error. This is a type alias for Either[error, T].
type Result[T any] = either.Either[error, T]

// Success creates a successful Result containing the given value.
func Success[T any](value T) Result[T] {
	return either.Right[error](value)
}

// Failure creates a failed Result containing the given error.
func Failure[T any](err error) Result[T] {
	return either.Left[T](err)
}

// IsSuccess checks if the Result is a success.
func IsSuccess[T any](result Result[T]) bool {
	return either.IsRight(result)
}

// IsFailure checks if the Result is a failure.
func IsFailure[T any](result Result[T]) bool {
	return either.IsLeft(result)
}

// GetError extracts the error from a failure, or returns nil if success.
func GetError[T any](result Result[T]) error {
	return either.Fold(
		func(err error) error { return err },
		func(_ T) error { return nil },
	)(result)
}

// GetValue extracts the value from a success, or returns the zero value if failure.
func GetValue[T any](result Result[T]) T {
	var zero T
	return either.GetOrElse(func(_ error) T { return zero })(result)
}

// Map applies a function to the value inside a Result.
func Map[A, B any](f func(A) B) func(Result[A]) Result[B] {
	return either.Map[error, A, B](f)
}

// Fold applies onFailure or onSuccess depending on the Result.
func Fold[T, R any](onFailure func(error) R, onSuccess func(T) R) func(Result[T]) R {
	return either.Fold(onFailure, onSuccess)
}
