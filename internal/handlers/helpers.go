package handlers

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// respondError writes business errors with their registered status and
// anything else as a logged 500.
func respondError(c *gin.Context, code string, err error) {
	if be, ok := httperr.AsBusiness(err); ok {
		httperr.Business(c, be)
		return
	}

	slog.ErrorContext(c.Request.Context(), "request failed",
		slog.String("request_id", c.GetString(middleware.ContextRequestID)),
		slog.String("error_code", code),
		slog.Any("error", err),
	)
	httperr.Internal(c, code, "Error interno. Inténtalo de nuevo.")
}

func currentUserID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserID).(uint)
}

// parseID reads a positive integer id; ok is false when it is malformed.
func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// pathID reads :id and writes a 400 when it is not a valid id.
func pathID(c *gin.Context) (uint, bool) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
	}
	return id, ok
}

func parseDate(raw string) (time.Time, bool) {
	d, err := time.Parse(models.DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
