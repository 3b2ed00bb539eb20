package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kdawgwilk/ex-ulid/internal/domain"
	"github.com/kdawgwilk/ex-ulid/pkg/base32"
	"github.com/kdawgwilk/ex-ulid/pkg/ulid"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// IdentifiersEnvelope wraps batch generation responses.
type IdentifiersEnvelope struct {
	Data []domain.Identifier `json:"data"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}

// httpError maps ULID error kinds to HTTP status codes: malformed input is a
// 400, well-formed input outside the representable range a 422.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ulid.ErrMalformedLength),
		errors.Is(err, ulid.ErrInvalidTimeType),
		errors.Is(err, base32.ErrInvalidCharacter):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ulid.ErrNegativeTime),
		errors.Is(err, ulid.ErrTimeOverflow),
		errors.Is(err, ulid.ErrDecodedTimeOverflow):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
