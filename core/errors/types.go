// ABOUTME: Custom error types for the ingestion pipeline
// ABOUTME: Separates fatal run errors from errors that are contained per field or candidate

package errors

import (
	"errors"
	"fmt"
)

// ErrCacheMiss is returned by cache backends when a key is absent
var ErrCacheMiss = errors.New("cache: key not found")

// AuthenticationError means a session could not be established. It is fatal to a run.
type AuthenticationError struct {
	Reason string
	Err    error
}

// Error implements the error interface
func (e *AuthenticationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("authentication failed: %s", e.Reason)
}

// Unwrap returns the underlying cause
func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// TimeoutError represents a bounded wait that expired
type TimeoutError struct {
	Operation string
	URL       string
}

// Error implements the error interface
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout during %s: %s", e.Operation, e.URL)
}

// FetchError represents a failed static page fetch. StatusCode is 0 when
// no response was received.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s failed: status %d", e.URL, e.StatusCode)
}

// Unwrap returns the underlying cause
func (e *FetchError) Unwrap() error {
	return e.Err
}

// StoreLoadError means an existing store could not be read
type StoreLoadError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *StoreLoadError) Error() string {
	return fmt.Sprintf("failed to load store %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause
func (e *StoreLoadError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsTimeout checks if an error is a TimeoutError
func IsTimeout(err error) bool {
	var timeoutErr *TimeoutError
	return errors.As(err, &timeoutErr)
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsStoreLoad checks if an error is a StoreLoadError
func IsStoreLoad(err error) bool {
	var loadErr *StoreLoadError
	return errors.As(err, &loadErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// StatusCode returns the HTTP status carried by a FetchError, or 0
func StatusCode(err error) int {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.StatusCode
	}
	return 0
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
