package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SiloGit/bcnotif/internal/models"
	pollersmocks "github.com/SiloGit/bcnotif/internal/pollers/mocks"
	"github.com/SiloGit/bcnotif/internal/shared/loggers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStatusHandler_Handle_ReturnsLastCycle(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	last := &models.CycleResult{
		CycleID:      "01JD0000000000000000000000",
		StartedAt:    time.Date(2026, 3, 14, 14, 10, 0, 0, time.UTC),
		Hour:         14,
		FetchedFeeds: 42,
		TrackedFeeds: 40,
		Feeds: []models.Feed{{
			ID:        1234,
			Name:      "Dallas City Fire",
			Listeners: 1523,
			URL:       "http://host/listen/feed/1234",
		}},
	}

	mockPoller := pollersmocks.NewMockPoller(ctrl)
	mockPoller.EXPECT().Last().Return(last)

	handler := NewStatusHandler(mockPoller)

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got models.CycleResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, *last, got)
}

func TestStatusHandler_Handle_NotReadyBeforeFirstCycle(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPoller := pollersmocks.NewMockPoller(ctrl)
	mockPoller.EXPECT().Last().Return(nil)

	handler := NewStatusHandler(mockPoller)

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)
	require.Error(t, err)
	assert.Zero(t, rr.Body.Len(), "nothing written when the handler errors")
}

func TestRouter_StatusRoute(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPoller := pollersmocks.NewMockPoller(ctrl)
	mockPoller.EXPECT().Last().Return(nil)

	logger, _ := loggers.New("info")
	router := NewRouter(mockPoller, logger)

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	// No completed cycle yet: the adapter turns the coded error into 503.
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, codeStatusNotReady, errorResponse.ErrorCode)
	assert.Equal(t, "unavailable", errorResponse.ErrorCategory)
}

func TestRouter_Healthz(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPoller := pollersmocks.NewMockPoller(ctrl)

	logger, _ := loggers.New("info")
	router := NewRouter(mockPoller, logger)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}
