// Package base32 implements the Crockford Base32 alphabet codec used for the
// textual ULID representation. Values are treated numerically: encoding emits
// the minimal digit string for the big-endian unsigned value of the input,
// and decoding returns the minimal big-endian bytes of the decoded value.
// Fixed-width concerns belong to the caller.
package base32

import (
	"errors"
	"fmt"
	"math"
)

// Alphabet is the 32-symbol Crockford alphabet. I, L, O and U are excluded
// to avoid visual ambiguity.
const Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

var (
	// ErrInvalidCharacter is returned when decoding input containing a
	// character outside the alphabet.
	ErrInvalidCharacter = errors.New("base32: invalid character")

	// ErrValueOverflow is returned by DecodeUint64 when the decoded value
	// does not fit in 64 bits.
	ErrValueOverflow = errors.New("base32: value does not fit in 64 bits")
)

// dec maps a byte to its alphabet index, with 0xFF marking invalid input.
// Decoding is case-insensitive; canonical output is uppercase.
var dec [256]byte

func init() {
	for i := range dec {
		dec[i] = 0xFF
	}
	for i := 0; i < len(Alphabet); i++ {
		c := Alphabet[i]
		dec[c] = byte(i)
		if c >= 'A' && c <= 'Z' {
			dec[c+'a'-'A'] = byte(i)
		}
	}
}

// EncodeUint64 returns the minimal base-32 digit string for v ("0" for zero).
func EncodeUint64(v uint64) string {
	if v == 0 {
		return "0"
	}
	// 64 bits never need more than 13 digits.
	var buf [13]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = Alphabet[v&31]
		v >>= 5
	}
	return string(buf[i:])
}

// Encode returns the minimal base-32 digit string for the big-endian unsigned
// value of b. Leading zero bytes contribute no digits; Encode(nil) is "0".
func Encode(b []byte) string {
	n := (len(b)*8 + 4) / 5
	if n == 0 {
		return "0"
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = Alphabet[group(b, i)]
	}
	j := 0
	for j < len(out)-1 && out[j] == '0' {
		j++
	}
	return string(out[j:])
}

// group extracts the i-th 5-bit group of the big-endian value in b, counting
// from the least significant end.
func group(b []byte, i int) byte {
	var g byte
	for k := 0; k < 5; k++ {
		bit := i*5 + k
		idx := len(b) - 1 - bit/8
		if idx < 0 {
			break
		}
		if b[idx]>>(uint(bit)%8)&1 == 1 {
			g |= 1 << uint(k)
		}
	}
	return g
}

// DecodeUint64 decodes s to its numeric value. It fails on characters outside
// the alphabet and on values exceeding 64 bits.
func DecodeUint64(s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidCharacter)
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		d := dec[s[i]]
		if d == 0xFF {
			return 0, fmt.Errorf("%w: %q at position %d in %q", ErrInvalidCharacter, s[i], i, s)
		}
		if v > math.MaxUint64>>5 {
			return 0, fmt.Errorf("%w: %q", ErrValueOverflow, s)
		}
		v = v<<5 | uint64(d)
	}
	return v, nil
}

// Decode decodes s to the minimal big-endian bytes of its numeric value.
// It fails on any character outside the alphabet.
func Decode(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidCharacter)
	}
	out := make([]byte, (len(s)*5+7)/8)
	for i := 0; i < len(s); i++ {
		d := dec[s[i]]
		if d == 0xFF {
			return nil, fmt.Errorf("%w: %q at position %d in %q", ErrInvalidCharacter, s[i], i, s)
		}
		g := len(s) - 1 - i
		for k := 0; k < 5; k++ {
			if d>>uint(k)&1 == 1 {
				bit := g*5 + k
				out[len(out)-1-bit/8] |= 1 << (uint(bit) % 8)
			}
		}
	}
	j := 0
	for j < len(out)-1 && out[j] == 0 {
		j++
	}
	return out[j:], nil
}
