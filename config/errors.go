package config

import (
	"errors"
	"fmt"
	"strings"
)

// Failures returned by the resolver. Every error produced by this package
// wraps exactly one of these sentinels, so callers can branch with
// [errors.Is] at the application boundary.
var (
	// ErrNotFound indicates a referenced file or environment variable
	// does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnsupportedFormat indicates the config file is not the expected
	// JSON document.
	ErrUnsupportedFormat = errors.New("unsupported config format")
	// ErrKeyNotFound indicates no top-level key of the document parsed
	// into the requested UUID.
	ErrKeyNotFound = errors.New("config id not found")
	// ErrMissingKeys indicates the matched record lacks one or more
	// required keys. Use [errors.As] with [*MissingKeysError] to get the
	// full list.
	ErrMissingKeys = errors.New("missing required keys")
	// ErrInvalidFormat indicates a string value failed to parse as the
	// expected type (for example a UUID from the environment).
	ErrInvalidFormat = errors.New("invalid value format")
)

// MissingKeysError reports every required key absent from a mapping.
type MissingKeysError struct {
	// MappingName is the optional display name used in the message.
	MappingName string
	// Keys lists the missing key names, sorted.
	Keys []string
}

func (e *MissingKeysError) Error() string {
	suffix := "."
	if e.MappingName != "" {
		suffix = fmt.Sprintf(" in %s.", e.MappingName)
	}

	return fmt.Sprintf("missing keys %s%s", strings.Join(e.Keys, ", "), suffix)
}

// Unwrap makes errors.Is(err, ErrMissingKeys) hold for every
// *MissingKeysError.
func (e *MissingKeysError) Unwrap() error {
	return ErrMissingKeys
}
