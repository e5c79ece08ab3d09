package sqlpager

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSource is returned when a query is built without a source.
	ErrInvalidSource = errors.New("source cannot be empty")
	// ErrInvalidUTF8 is returned when a decoded cursor token is not valid text.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 string")
)

// InvalidPageSizeError reports a page size outside of [1, MaxPageSize-1].
// Size holds the value after normalization.
type InvalidPageSizeError struct {
	Size uint64
}

func (e *InvalidPageSizeError) Error() string {
	return fmt.Sprintf("page size must be between 1-%d. got: %d", MaxPageSize-1, e.Size)
}

// Base64DecodeError reports a cursor token that is not valid URL-safe base64.
type Base64DecodeError struct {
	Token string
	Err   error
}

func (e *Base64DecodeError) Error() string {
	return fmt.Sprintf("invalid base64 string: %s", e.Token)
}

func (e *Base64DecodeError) Unwrap() error {
	return e.Err
}

// InvalidNumberError reports decoded cursor text that is not an unsigned
// 64-bit decimal integer.
type InvalidNumberError struct {
	Text string
	Err  error
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number: %s", e.Text)
}

func (e *InvalidNumberError) Unwrap() error {
	return e.Err
}
