package ulid

import "errors"

// Sentinel errors for ULID generation and decoding. Callers discriminate with
// errors.Is; every failure wraps one of these (or a pkg/base32 codec error,
// which propagates unchanged) together with the offending input.
var (
	// ErrInvalidTimeType is returned when a textual timestamp is not an
	// integer (fractional or non-numeric input).
	ErrInvalidTimeType = errors.New("ulid: time must be an integer")

	// ErrNegativeTime is returned when generating with a timestamp below zero.
	ErrNegativeTime = errors.New("ulid: time must not be negative")

	// ErrTimeOverflow is returned when generating with a timestamp above
	// MaxTime.
	ErrTimeOverflow = errors.New("ulid: time exceeds 48 bits")

	// ErrMalformedLength is returned when decoding input that is not exactly
	// EncodedSize characters.
	ErrMalformedLength = errors.New("ulid: encoded ulid must be 26 characters")

	// ErrDecodedTimeOverflow is returned when decoding a structurally valid
	// ULID whose time field exceeds MaxTime and so could never have been
	// generated.
	ErrDecodedTimeOverflow = errors.New("ulid: decoded time exceeds 48 bits")
)
