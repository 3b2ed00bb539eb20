package ulid

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"
)

// Clock supplies the current time in milliseconds since the Unix epoch.
// Tests inject a deterministic implementation.
type Clock interface {
	Now() int64
}

type systemClock struct{}

func (systemClock) Now() int64 { return time.Now().UnixMilli() }

// Generator produces textual ULIDs from a clock and an entropy source. Each
// call performs at most one clock read and exactly one 10-byte entropy read;
// no state is shared between calls, so safety for concurrent use depends
// only on the entropy source (crypto/rand.Reader is safe).
type Generator struct {
	clock   Clock
	entropy io.Reader
}

// NewGenerator returns a Generator using the given collaborators. A nil clock
// falls back to the system clock, a nil entropy source to crypto/rand.Reader.
func NewGenerator(clock Clock, entropy io.Reader) *Generator {
	if clock == nil {
		clock = systemClock{}
	}
	if entropy == nil {
		entropy = rand.Reader
	}
	return &Generator{clock: clock, entropy: entropy}
}

// Generate returns a ULID for the current time.
func (g *Generator) Generate() (string, error) {
	return g.GenerateTime(g.clock.Now())
}

// GenerateTime returns a ULID for the given epoch-millisecond timestamp.
// The timestamp must lie in [0, MaxTime].
func (g *Generator) GenerateTime(ms int64) (string, error) {
	if ms < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeTime, ms)
	}
	if ms > MaxTime {
		return "", fmt.Errorf("%w: %d", ErrTimeOverflow, ms)
	}
	var rnd [randSize]byte
	if _, err := io.ReadFull(g.entropy, rnd[:]); err != nil {
		return "", fmt.Errorf("ulid: read entropy: %w", err)
	}
	return encodeFields(uint64(ms), rnd[:]), nil
}

// defaultGenerator backs the package-level conveniences. It carries no
// mutable state.
var defaultGenerator = NewGenerator(nil, nil)

// Generate returns a ULID for the current time using the system clock and
// crypto/rand.
func Generate() (string, error) { return defaultGenerator.Generate() }

// GenerateTime returns a ULID for the given epoch-millisecond timestamp
// using crypto/rand for the randomness field.
func GenerateTime(ms int64) (string, error) { return defaultGenerator.GenerateTime(ms) }
