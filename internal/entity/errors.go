package entity

import "errors"

// ErrMalformedResponse is returned when a OneSource response misses a required field.
var ErrMalformedResponse = errors.New("malformed OneSource response")
