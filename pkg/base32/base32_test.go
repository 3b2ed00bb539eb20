package base32

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeUint64(t *testing.T) {
	assert.Equal(t, "0", EncodeUint64(0))
	assert.Equal(t, "1", EncodeUint64(1))
	assert.Equal(t, "Z", EncodeUint64(31))
	assert.Equal(t, "10", EncodeUint64(32))
	assert.Equal(t, "1ARYZ6S41", EncodeUint64(1469918176385))
}

func TestEncodeBytesIsNumeric(t *testing.T) {
	// Leading zero bytes are insignificant: the digit string is minimal.
	assert.Equal(t, "1", Encode([]byte{0x01}))
	assert.Equal(t, "1", Encode([]byte{0x00, 0x00, 0x01}))
	assert.Equal(t, "0", Encode([]byte{0x00}))
	assert.Equal(t, "0", Encode(nil))

	// 10 bytes of 0xFF is the full 80-bit randomness field: 16 'Z' digits.
	all := make([]byte, 10)
	for i := range all {
		all[i] = 0xFF
	}
	assert.Equal(t, "ZZZZZZZZZZZZZZZZ", Encode(all))
}

func TestDecodeUint64(t *testing.T) {
	v, err := DecodeUint64("01ARYZ6S41")
	require.NoError(t, err)
	assert.Equal(t, uint64(1469918176385), v)

	v, err = DecodeUint64("0")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v)
}

func TestDecodeUint64CaseInsensitive(t *testing.T) {
	upper, err := DecodeUint64("1ARYZ6S41")
	require.NoError(t, err)
	lower, err := DecodeUint64("1aryz6s41")
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
}

func TestDecodeUint64InvalidCharacter(t *testing.T) {
	for _, s := range []string{"1I", "1L", "1O", "1U", "1i", "1!", "", "1 2"} {
		_, err := DecodeUint64(s)
		assert.ErrorIs(t, err, ErrInvalidCharacter, "input %q", s)
	}
}

func TestDecodeUint64Overflow(t *testing.T) {
	// 14 digits carry 70 bits.
	_, err := DecodeUint64("ZZZZZZZZZZZZZZ")
	assert.ErrorIs(t, err, ErrValueOverflow)
}

func TestDecodeBytes(t *testing.T) {
	b, err := Decode("1ARYZ6S41")
	require.NoError(t, err)
	// 1469918176385 = 0x01_56_3D_F3_64_81 big-endian, minimal bytes.
	assert.Equal(t, []byte{0x01, 0x56, 0x3D, 0xF3, 0x64, 0x81}, b)

	b, err = Decode("0")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, b)

	_, err = Decode("ULID")
	assert.ErrorIs(t, err, ErrInvalidCharacter)
}

func TestRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 31, 32, 1024, 1469918176385, 1<<48 - 1, 1<<63 - 1} {
		got, err := DecodeUint64(EncodeUint64(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestErrorsCarryInput(t *testing.T) {
	_, err := DecodeUint64("AB#CD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AB#CD")
	assert.True(t, errors.Is(err, ErrInvalidCharacter))
}
