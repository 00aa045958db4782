package http

import (
	"encoding/json"
	"net/http"

	"github.com/SiloGit/bcnotif/internal/models"
	"github.com/SiloGit/bcnotif/internal/shared/svcerrors"
)

const codeStatusNotReady = "STA_1000"

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// StatusSource yields the latest completed polling cycle.
type StatusSource interface {
	Last() *models.CycleResult
}

type statusHandler struct {
	source StatusSource
}

func NewStatusHandler(source StatusSource) AppHttpHandler {
	return &statusHandler{source: source}
}

// Handle serves GET /status: the last cycle result as JSON, or 503 until the
// first cycle completes.
func (h *statusHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result := h.source.Last()
	if result == nil {
		return errStatusNotReady()
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(result)
}

// errStatusNotReady returns an error for status requests before any cycle has run.
func errStatusNotReady() *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeStatusNotReady, "no polling cycle has completed yet", nil)
}
