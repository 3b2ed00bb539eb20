// Package ulid implements Universally Unique Lexicographically Sortable
// Identifiers: 128-bit values composed of a 48-bit big-endian millisecond
// timestamp and 80 bits of randomness, rendered as 26 Crockford Base32
// characters (10 for the time field, 16 for the randomness field) or as
// exactly 16 bytes.
//
// Because both fields are fixed-width and the alphabet is ordered
// consistently with numeric value, lexicographic ordering of the textual
// form tracks numeric ordering of the timestamp. No ordering guarantee
// exists between identifiers generated within the same millisecond.
package ulid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kdawgwilk/ex-ulid/pkg/base32"
)

const (
	// EncodedSize is the length of the textual form.
	EncodedSize = 26

	// BinarySize is the length of the binary form.
	BinarySize = 16

	// MaxTime is the largest representable timestamp, 2^48 - 1 milliseconds
	// since the Unix epoch.
	MaxTime int64 = 1<<48 - 1

	timeWidth = 10 // characters in the time field
	randWidth = 16 // characters in the randomness field
	timeSize  = 6  // bytes of the time field in the binary form
	randSize  = 10 // bytes of randomness
)

// Binary is the 16-byte binary form: bytes 0..5 hold the big-endian 48-bit
// timestamp, bytes 6..15 the randomness.
type Binary [BinarySize]byte

// Decoded is the result of decoding a textual ULID. The randomness field is
// returned still in its Base32 textual form, mirroring the time-decoded /
// randomness-encoded asymmetry of the original contract.
type Decoded struct {
	Time       int64
	Randomness string
}

// Encode renders a 16-byte binary ULID as its 26-character textual form.
// The time quantity is derived from exactly 6 bytes, so it can never exceed
// the 48-bit bound.
func Encode(b Binary) (string, error) {
	ms := uint64(b[0])<<40 | uint64(b[1])<<32 | uint64(b[2])<<24 |
		uint64(b[3])<<16 | uint64(b[4])<<8 | uint64(b[5])
	return encodeFields(ms, b[timeSize:]), nil
}

// Decode splits a 26-character ULID into its decoded timestamp and its
// still-encoded 16-character randomness field. It rejects input that is not
// exactly 26 characters (ErrMalformedLength), contains characters outside
// the alphabet (codec error), or carries a time field above MaxTime
// (ErrDecodedTimeOverflow).
func Decode(s string) (Decoded, error) {
	if len(s) != EncodedSize {
		return Decoded{}, fmt.Errorf("%w: %q is %d characters", ErrMalformedLength, s, len(s))
	}
	timeText, randText := s[:timeWidth], s[timeWidth:]
	if _, err := base32.Decode(randText); err != nil {
		return Decoded{}, err
	}
	ms, err := base32.DecodeUint64(timeText)
	if err != nil {
		return Decoded{}, err
	}
	if ms > uint64(MaxTime) {
		return Decoded{}, fmt.Errorf("%w: %q decodes to %d", ErrDecodedTimeOverflow, timeText, ms)
	}
	return Decoded{Time: int64(ms), Randomness: randText}, nil
}

// ToBinary decodes a 26-character ULID to its 16-byte binary form without the
// field split or the 48-bit time check of Decode. The 26 characters carry 130
// bits; the two highest fall outside the value and are discarded, and small
// values are zero-padded on the left, so ToBinary inverts Encode exactly.
func ToBinary(s string) (Binary, error) {
	var b Binary
	if len(s) != EncodedSize {
		return b, fmt.Errorf("%w: %q is %d characters", ErrMalformedLength, s, len(s))
	}
	raw, err := base32.Decode(s)
	if err != nil {
		return b, err
	}
	if len(raw) > BinarySize {
		raw = raw[len(raw)-BinarySize:]
	}
	copy(b[BinarySize-len(raw):], raw)
	return b, nil
}

// ParseTimestamp parses a textual epoch-millisecond timestamp as received at
// an API or CLI boundary. Non-integer input fails with ErrInvalidTimeType;
// range checks are left to GenerateTime so that negative and oversized values
// report their own error kinds.
func ParseTimestamp(s string) (int64, error) {
	ms, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeType, s)
	}
	return ms, nil
}

// encodeFields renders the two fields at their fixed widths, time field first.
func encodeFields(ms uint64, rnd []byte) string {
	return fixWidth(base32.EncodeUint64(ms), timeWidth) + fixWidth(base32.Encode(rnd), randWidth)
}

// fixWidth normalizes a codec output to exactly width characters. Longer
// output is truncated from the LEFT: the significant digits of a numeric
// field are right-aligned, so only insignificant high-order positions are
// dropped. Shorter output is left-padded with the zero digit.
func fixWidth(s string, width int) string {
	switch {
	case len(s) > width:
		return s[len(s)-width:]
	case len(s) < width:
		return strings.Repeat("0", width-len(s)) + s
	default:
		return s
	}
}
