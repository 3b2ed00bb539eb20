package identifier

import (
	"context"
	"encoding/hex"
	"time"

	"github.com/kdawgwilk/ex-ulid/internal/domain"
	"github.com/kdawgwilk/ex-ulid/pkg/ulid"
)

type Service interface {
	Generate(ctx context.Context) (*domain.Identifier, error)
	GenerateAt(ctx context.Context, ms int64) (*domain.Identifier, error)
	GenerateBatch(ctx context.Context, count int) ([]domain.Identifier, error)
	Inspect(ctx context.Context, text string) (*domain.Identifier, error)
}

// generator is the slice of pkg/ulid the service depends on.
type generator interface {
	Generate() (string, error)
	GenerateTime(ms int64) (string, error)
}

type service struct {
	gen generator
}

func NewService(gen generator) Service {
	return &service{gen: gen}
}

func (s *service) Generate(_ context.Context) (*domain.Identifier, error) {
	text, err := s.gen.Generate()
	if err != nil {
		return nil, err
	}
	return describe(text)
}

func (s *service) GenerateAt(_ context.Context, ms int64) (*domain.Identifier, error) {
	text, err := s.gen.GenerateTime(ms)
	if err != nil {
		return nil, err
	}
	return describe(text)
}

func (s *service) GenerateBatch(_ context.Context, count int) ([]domain.Identifier, error) {
	ids := make([]domain.Identifier, 0, count)
	for i := 0; i < count; i++ {
		text, err := s.gen.Generate()
		if err != nil {
			return nil, err
		}
		id, err := describe(text)
		if err != nil {
			return nil, err
		}
		ids = append(ids, *id)
	}
	return ids, nil
}

func (s *service) Inspect(_ context.Context, text string) (*domain.Identifier, error) {
	return describe(text)
}

// describe decodes a textual ULID into the full API-facing record.
func describe(text string) (*domain.Identifier, error) {
	dec, err := ulid.Decode(text)
	if err != nil {
		return nil, err
	}
	bin, err := ulid.ToBinary(text)
	if err != nil {
		return nil, err
	}
	return &domain.Identifier{
		ID:         text,
		Time:       dec.Time,
		Timestamp:  time.UnixMilli(dec.Time).UTC(),
		Randomness: dec.Randomness,
		Binary:     hex.EncodeToString(bin[:]),
	}, nil
}
