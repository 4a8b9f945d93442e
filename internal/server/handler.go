// Package server provides the HTTP handlers of the vocabulary API.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/at-ishikawa/jin/internal/vocabulary"
)

//go:generate mockgen -source=handler.go -destination=../mocks/server/mock_loader.go -package=mock_server SetLoader

// SetLoader provides vocabulary sets to the handlers.
type SetLoader interface {
	LoadSet(ctx context.Context, setType string) ([]vocabulary.Card, bool)
	LoadAllSets(ctx context.Context) (map[vocabulary.SetType][]vocabulary.Card, error)
	Metadata(ctx context.Context) ([]vocabulary.SetDescriptor, error)
}

// HealthResponse is the body of the liveness endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Handler serves the vocabulary endpoints. It holds no request state.
type Handler struct {
	loader SetLoader
}

// NewHandler creates a new Handler.
func NewHandler(loader SetLoader) *Handler {
	return &Handler{
		loader: loader,
	}
}

// Register mounts the vocabulary routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.Health)
	r.Route("/vocabulary", func(r chi.Router) {
		r.Get("/sets", h.GetSets)
		r.Get("/sets/all", h.GetAllSets)
		r.Get("/set/{setType}", h.GetSet)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Detail: "Not Found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Detail: "Method Not Allowed"})
	})
}

// Health reports that the service is running.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Message: "JinApp API is running",
	})
}

// GetSets returns the metadata of every loadable set.
func (h *Handler) GetSets(w http.ResponseWriter, r *http.Request) {
	descriptors, err := h.loader.Metadata(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, fmt.Errorf("load set metadata: %w", err))
		return
	}
	if descriptors == nil {
		descriptors = []vocabulary.SetDescriptor{}
	}
	writeJSON(w, http.StatusOK, descriptors)
}

// GetSet returns the cards of one set.
func (h *Handler) GetSet(w http.ResponseWriter, r *http.Request) {
	setType := chi.URLParam(r, "setType")
	cards, ok := h.loader.LoadSet(r.Context(), setType)
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Detail: fmt.Sprintf("Vocabulary set '%s' not found", setType),
		})
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

// GetAllSets returns the cards of every loadable set keyed by set type,
// with keys in set order.
func (h *Handler) GetAllSets(w http.ResponseWriter, r *http.Request) {
	sets, err := h.loader.LoadAllSets(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, fmt.Errorf("load all sets: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, orderedSets(sets))
}

// orderedSets encodes as a JSON object whose keys follow vocabulary.SetTypes().
type orderedSets map[vocabulary.SetType][]vocabulary.Card

func (s orderedSets) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	buf.WriteByte('{')
	for _, setType := range vocabulary.SetTypes() {
		cards, ok := s[setType]
		if !ok {
			continue
		}
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		if err := encoder.Encode(string(setType)); err != nil {
			return nil, fmt.Errorf("encode key %s: %w", setType, err)
		}
		buf.WriteByte(':')
		if err := encoder.Encode(cards); err != nil {
			return nil, fmt.Errorf("encode cards of %s: %w", setType, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	slog.Default().ErrorContext(r.Context(), "request failed",
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.Any("error", err),
	)
	writeJSON(w, status, ErrorResponse{Detail: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(body); err != nil {
		slog.Default().Warn("failed to write response body", slog.Any("error", err))
	}
}
