package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// StoreError is a failure reported by the data store itself, such as a
// constraint violation or a type mismatch. Message is the store's own text
// and is safe to forward to API callers unchanged.
type StoreError struct {
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	return "store: " + e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
