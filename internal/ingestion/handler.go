package ingestion

import (
	"log/slog"
	"net/http"
	"time"

	v1 "github.com/brewlog/brewlog/internal/api/v1"
	httperr "github.com/brewlog/brewlog/internal/core/errors"
	"github.com/gin-gonic/gin"
)

const (
	msgRegisterFailed = "Failed to register brew"
	msgRecordFailed   = "Failed to record event"
)

// RegisterResponse is returned by POST /brew/:brew_id.
type RegisterResponse struct {
	BrewID       string    `json:"brew_id"`
	Created      bool      `json:"created"`
	RegisteredAt time.Time `json:"registered_at"`
	RequestID    string    `json:"request_id,omitempty"`
}

// RecordResponse is returned by POST /brew/:brew_id/data.
type RecordResponse struct {
	BrewID    string    `json:"brew_id"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// RegisterHandler handles POST /brew/:brew_id.
func (s *Service) RegisterHandler(c *gin.Context) {
	brewID, ok := brewIDParam(c)
	if !ok {
		return
	}

	wm, created, err := s.Register(c.Request.Context(), brewID)
	if err != nil {
		slog.Error("[Ingest] Registration failed", "brew_id", brewID, "error", err)
		writeError(c, http.StatusInternalServerError, httperr.HttpInternalError, msgRegisterFailed, nil)
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		BrewID:       brewID,
		Created:      created,
		RegisteredAt: wm.RegisteredAt,
		RequestID:    c.GetString(v1.RequestIDKey),
	})
}

// RecordHandler handles POST /brew/:brew_id/data.
func (s *Service) RecordHandler(c *gin.Context) {
	brewID, ok := brewIDParam(c)
	if !ok {
		return
	}

	evt, err := s.Record(c.Request.Context(), brewID)
	if err != nil {
		slog.Error("[Ingest] Failed to record event", "brew_id", brewID, "error", err)
		writeError(c, http.StatusInternalServerError, httperr.HttpInternalError, msgRecordFailed, nil)
		return
	}

	slog.Debug("[Ingest] Event recorded", "brew_id", brewID, "timestamp", evt.Timestamp)
	c.JSON(http.StatusCreated, RecordResponse{
		BrewID:    evt.BrewID,
		Timestamp: evt.Timestamp,
		RequestID: c.GetString(v1.RequestIDKey),
	})
}

func brewIDParam(c *gin.Context) (string, bool) {
	brewID := c.Param("brew_id")
	if err := v1.ValidateBrewID(brewID); err != nil {
		slog.Warn("[Ingest] Invalid brew id", "brew_id", brewID, "error", err)
		writeError(c, http.StatusBadRequest, httperr.HttpInvalidBrewIDError, err.Error(), nil)
		return "", false
	}
	return brewID, true
}

func writeError(c *gin.Context, status int, errorType, message string, details interface{}) {
	c.JSON(status, httperr.ErrorResponse{
		ErrorType: errorType,
		Message:   message,
		Details:   details,
	})
}
