// Package server exposes the resolution pipeline and the feed listing as
// JSON-over-HTTP handlers.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/lingofeed/lingofeed/internal/feed"
	"github.com/lingofeed/lingofeed/internal/provider"
	"github.com/lingofeed/lingofeed/internal/resolver"
)

// Handler serves the feed and resolution endpoints.
type Handler struct {
	resolver *resolver.Resolver
	subjects feed.SubjectRepository
}

// NewHandler creates a new Handler.
func NewHandler(res *resolver.Resolver, subjects feed.SubjectRepository) *Handler {
	return &Handler{
		resolver: res,
		subjects: subjects,
	}
}

// Register mounts all routes on the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/facts", h.handleListFacts)
	mux.HandleFunc("POST /api/fact-content", h.handleFactContent)
	mux.HandleFunc("POST /api/extended-fact", h.handleExtendedFact)
	mux.HandleFunc("POST /api/word-translation", h.handleWordTranslation)
	mux.HandleFunc("POST /api/word-analysis", h.handleWordAnalysis)
}

func (h *Handler) handleListFacts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, err := parseQueryInt(query.Get("page"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid page parameter")
		return
	}
	limit, err := parseQueryInt(query.Get("limit"), 5)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid limit parameter")
		return
	}

	var categories []string
	if raw := query.Get("categories"); raw != "" {
		categories = strings.Split(raw, ",")
	}

	subjects, err := h.subjects.List(r.Context(), feed.ListParams{
		Page:       page,
		Limit:      limit,
		Categories: categories,
		Language:   query.Get("language"),
	})
	if err != nil {
		h.writeResolutionError(w, "list facts", err)
		return
	}
	if subjects == nil {
		subjects = []feed.Subject{}
	}
	writeJSON(w, http.StatusOK, subjects)
}

func (h *Handler) handleFactContent(w http.ResponseWriter, r *http.Request) {
	var req resolver.FactContentRequest
	if !decodeJSONRequest(w, r, &req) {
		return
	}

	payload, err := h.resolver.ResolveFactContent(r.Context(), req)
	if err != nil {
		h.writeResolutionError(w, "resolve fact content", err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func (h *Handler) handleExtendedFact(w http.ResponseWriter, r *http.Request) {
	var req resolver.ExtendedFactRequest
	if !decodeJSONRequest(w, r, &req) {
		return
	}

	payload, err := h.resolver.ResolveExtendedFactContent(r.Context(), req)
	if err != nil {
		h.writeResolutionError(w, "resolve extended fact", err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func (h *Handler) handleWordTranslation(w http.ResponseWriter, r *http.Request) {
	var req resolver.WordTranslationRequest
	if !decodeJSONRequest(w, r, &req) {
		return
	}

	payload, err := h.resolver.ResolveWordTranslation(r.Context(), req)
	if err != nil {
		h.writeResolutionError(w, "resolve word translation", err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func (h *Handler) handleWordAnalysis(w http.ResponseWriter, r *http.Request) {
	var req resolver.WordAnalysisRequest
	if !decodeJSONRequest(w, r, &req) {
		return
	}

	payload, err := h.resolver.ResolveWordAnalysis(r.Context(), req)
	if err != nil {
		h.writeResolutionError(w, "resolve word analysis", err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// writeResolutionError maps pipeline errors onto status codes. Client-side
// failures carry their message; provider-side failures are logged in full
// and surfaced as a generic message.
func (h *Handler) writeResolutionError(w http.ResponseWriter, operation string, err error) {
	switch {
	case errors.Is(err, resolver.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, resolver.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, provider.ErrMissingCredentials):
		slog.Default().Error("provider credentials missing", "operation", operation)
		writeError(w, http.StatusInternalServerError, "the service is not configured")
	default:
		slog.Default().Error("resolution failed",
			"operation", operation,
			"error", err)
		writeError(w, http.StatusInternalServerError, "could not load content")
	}
}

func decodeJSONRequest(w http.ResponseWriter, r *http.Request, out interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON request body")
		return false
	}
	return true
}

func parseQueryInt(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("invalid integer %q", raw)
	}
	return value, nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Default().Error("failed to encode response body", "error", err)
	}
}
