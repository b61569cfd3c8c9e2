package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrFetchFailed is the single generic failure of the query executor.
	ErrFetchFailed = errors.New("failed to fetch NFT")
	// ErrNotFound means the fetch succeeded but the token does not exist.
	ErrNotFound = errors.New("no NFT data found")
	// ErrInvalidRequest wraps validation failures of a PageRequest.
	ErrInvalidRequest = errors.New("invalid request")
)

// FetchError records which query broke the page build. Cause is for diagnostics only,
// users see ErrFetchFailed's message.
type FetchError struct {
	Operation string
	Cause     error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrFetchFailed, e.Operation, e.Cause)
}

// Unwrap lets errors.Is match both ErrFetchFailed and the underlying cause.
func (e *FetchError) Unwrap() []error {
	return []error{ErrFetchFailed, e.Cause}
}
