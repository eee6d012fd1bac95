package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/loupelabs/apilens/internal/engine"
	"github.com/loupelabs/apilens/internal/models"
	"github.com/loupelabs/apilens/internal/services"
)

// Handlers implements the analyze API endpoints.
type Handlers struct {
	logger  *slog.Logger
	service *services.AnalyticsService
}

// NewHandlers constructs the HTTP handler set.
func NewHandlers(logger *slog.Logger, service *services.AnalyticsService) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{logger: logger, service: service}
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// Analyze handles POST /api/v1/analyze. An absent or null logs collection is
// an invalid argument; an empty one yields the canonical empty report.
func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	defer func() { _ = r.Body.Close() }()

	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "invalid_body",
			Detail: "request body must be a JSON analyze request: " + err.Error(),
		})
		return
	}

	report, analysisID, err := h.service.Analyze(r.Context(), req)
	if err != nil {
		if errors.Is(err, engine.ErrMissingRecords) {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:  "invalid_argument",
				Detail: err.Error(),
			})
			return
		}
		h.logger.Error("analysis failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal"})
		return
	}

	w.Header().Set("X-Analysis-Id", analysisID)
	h.writeJSON(w, http.StatusOK, report)
}

// Health handles GET /healthz.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("failed to write response", slog.Any("error", err))
	}
}
