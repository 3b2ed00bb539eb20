package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kdawgwilk/ex-ulid/internal/application/identifier"
	"github.com/kdawgwilk/ex-ulid/internal/domain"
	"github.com/kdawgwilk/ex-ulid/internal/pkg/validate"
	"github.com/kdawgwilk/ex-ulid/pkg/ulid"
)

// ULIDHandler handles generation and inspection endpoints.
type ULIDHandler struct {
	svc identifier.Service
}

func NewULIDHandler(svc identifier.Service) *ULIDHandler { return &ULIDHandler{svc: svc} }

// Create generates one or more ULIDs. The body is optional: an empty body
// generates a single ULID for the current time; `time` pins the timestamp,
// `count` generates a batch at the current time. The two cannot be combined,
// since batch entries each read the clock.
func (h *ULIDHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.GenerateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil && err != io.EOF {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if input.Time != "" && input.Count > 1 {
		writeError(w, http.StatusBadRequest, "time and count cannot be combined")
		return
	}

	switch {
	case input.Time != "":
		ms, err := ulid.ParseTimestamp(input.Time)
		if err != nil {
			httpError(w, err)
			return
		}
		id, err := h.svc.GenerateAt(r.Context(), ms)
		if err != nil {
			httpError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, id)
	case input.Count > 1:
		ids, err := h.svc.GenerateBatch(r.Context(), input.Count)
		if err != nil {
			httpError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, IdentifiersEnvelope{Data: ids})
	default:
		id, err := h.svc.Generate(r.Context())
		if err != nil {
			httpError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, id)
	}
}

// Get decodes a textual ULID into its time, randomness and binary view.
func (h *ULIDHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := h.svc.Inspect(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, id)
}
