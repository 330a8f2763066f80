package lookup

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput means a blank city name was submitted; it is returned
	// before any network call is made.
	ErrEmptyInput = errors.New("city name cannot be empty")

	// ErrUnauthorized means the provider rejected the API credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound means the locator did not resolve to a place.
	ErrNotFound = errors.New("not found")

	// ErrUnknownProvider means the provider returned a status-code
	// combination the classifier has no rule for.
	ErrUnknownProvider = errors.New("unexpected provider response")
)

// MalformedPayloadError means a payload that classified as usable is missing
// fields the normalizer depends on. It signals a provider contract break and
// is surfaced distinctly instead of being swallowed.
type MalformedPayloadError struct {
	Field string
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed payload: missing %s", e.Field)
}
