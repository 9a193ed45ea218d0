package projection

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	v1 "github.com/brewlog/brewlog/internal/api/v1"
	httperr "github.com/brewlog/brewlog/internal/core/errors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all projection API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/brew/:brew_id", s.HandleHistory)
	r.GET("/brew/:brew_id/data", s.HandleRawHistory)
	r.GET("/brew/:brew_id/status", s.HandleStatus)
}

// HandleHistory handles GET /brew/:brew_id
// Query parameters: granularity
func (s *Service) HandleHistory(c *gin.Context) {
	brewID, ok := brewIDParam(c)
	if !ok {
		return
	}

	resp, err := s.History(c.Request.Context(), HistoryRequest{
		BrewID:      brewID,
		Granularity: c.Query("granularity"),
	})
	if err != nil {
		writeQueryError(c, brewID, err, "Failed to query buckets")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleRawHistory handles GET /brew/:brew_id/data
// Query parameters: startAt, endAt (RFC 3339), limit
func (s *Service) HandleRawHistory(c *gin.Context) {
	brewID, ok := brewIDParam(c)
	if !ok {
		return
	}

	var query struct {
		StartAt time.Time `form:"startAt" time_format:"2006-01-02T15:04:05Z07:00"`
		EndAt   time.Time `form:"endAt" time_format:"2006-01-02T15:04:05Z07:00"`
		Limit   int       `form:"limit"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}

	resp, err := s.RawHistory(c.Request.Context(), RawHistoryRequest{
		BrewID:  brewID,
		StartAt: query.StartAt,
		EndAt:   query.EndAt,
		Limit:   query.Limit,
	})
	if err != nil {
		writeQueryError(c, brewID, err, "Failed to query events")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleStatus handles GET /brew/:brew_id/status
func (s *Service) HandleStatus(c *gin.Context) {
	brewID, ok := brewIDParam(c)
	if !ok {
		return
	}

	resp, err := s.Status(c.Request.Context(), brewID)
	if err != nil {
		writeQueryError(c, brewID, err, "Failed to read brew status")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func brewIDParam(c *gin.Context) (string, bool) {
	brewID := c.Param("brew_id")
	if err := v1.ValidateBrewID(brewID); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidBrewIDError,
			Message:   err.Error(),
		})
		return "", false
	}
	return brewID, true
}

func writeQueryError(c *gin.Context, brewID string, err error, msg string) {
	switch {
	case errors.Is(err, ErrInvalidQuery):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid history query",
			Details:   err.Error(),
		})
	case errors.Is(err, ErrBrewNotFound):
		c.JSON(http.StatusNotFound, httperr.ErrorResponse{
			ErrorType: httperr.HttpBrewNotFoundError,
			Message:   "Brew is not registered",
			Details:   map[string]string{"brew_id": brewID},
		})
	default:
		slog.Error("[Projection] Query failed", "brew_id", brewID, "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   msg,
		})
	}
}
