package domain

import "time"

// Identifier is the API-facing view of a single ULID: the textual form plus
// everything recoverable from it. Randomness stays in its Base32 textual
// form; the full 16-byte value is carried as hex.
type Identifier struct {
	ID         string    `json:"id"`
	Time       int64     `json:"time"`
	Timestamp  time.Time `json:"timestamp"`
	Randomness string    `json:"randomness"`
	Binary     string    `json:"binary"`
}

// GenerateInput is the optional body of a generate request. Time is carried
// as a string so non-integer input can be rejected with the proper error
// kind instead of dying inside JSON number decoding.
type GenerateInput struct {
	Time  string `json:"time,omitempty" validate:"omitempty,max=20"`
	Count int    `json:"count,omitempty" validate:"omitempty,min=1,max=1000"`
}
