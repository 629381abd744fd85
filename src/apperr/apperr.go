// Package apperr holds the error taxonomy of the write protocol. Validation
// and conflict errors are detected before any store write and carry a message
// safe to return to the client; store errors wrap the underlying failure,
// which is logged in full but never surfaced past the handler.
package apperr

import "fmt"

type Kind int

const (
	KindAuthentication Kind = iota
	KindValidation
	KindConflict
	KindStore
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Store(err error) *Error {
	return &Error{Kind: KindStore, Message: "store operation failed", Err: err}
}
