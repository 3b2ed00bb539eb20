package ulid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock always reports the same millisecond.
type fixedClock int64

func (c fixedClock) Now() int64 { return int64(c) }

// constEntropy fills every read with the same byte.
type constEntropy byte

func (e constEntropy) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(e)
	}
	return len(p), nil
}

// failingEntropy simulates an unavailable random source.
type failingEntropy struct{}

func (failingEntropy) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestGeneratorUsesClock(t *testing.T) {
	g := NewGenerator(fixedClock(knownTime), constEntropy(0xAB))
	s, err := g.Generate()
	require.NoError(t, err)

	dec, err := Decode(s)
	require.NoError(t, err)
	assert.Equal(t, knownTime, dec.Time)
	assert.Equal(t, "01ARYZ6S41", s[:10])
}

func TestGeneratorIdempotentFormatting(t *testing.T) {
	// Same clock, same entropy: the textual form is fully deterministic.
	g := NewGenerator(fixedClock(12345), constEntropy(0x5A))
	a, err := g.Generate()
	require.NoError(t, err)
	b, err := g.Generate()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGeneratorEntropyFailurePropagates(t *testing.T) {
	g := NewGenerator(fixedClock(0), failingEntropy{})
	_, err := g.Generate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entropy")
}

func TestGeneratorDefaults(t *testing.T) {
	s, err := Generate()
	require.NoError(t, err)
	require.Len(t, s, EncodedSize)

	// A freshly generated ULID must decode to a plausible current timestamp.
	dec, err := Decode(s)
	require.NoError(t, err)
	assert.Greater(t, dec.Time, int64(0))
	assert.LessOrEqual(t, dec.Time, MaxTime)

	b, err := ToBinary(s)
	require.NoError(t, err)
	round, err := Encode(b)
	require.NoError(t, err)
	assert.Equal(t, s, round)
}

func TestGenerateTimeReadsExactlyTenBytes(t *testing.T) {
	g := NewGenerator(fixedClock(0), constEntropy(0xFF))
	s, err := g.GenerateTime(0)
	require.NoError(t, err)
	// 10 bytes of 0xFF encode to 16 'Z' characters.
	assert.Equal(t, "0000000000ZZZZZZZZZZZZZZZZ", s)
}
