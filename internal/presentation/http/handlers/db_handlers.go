package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prelandr/prelandr-go/internal/infrastructure/observability/logging"
	"github.com/prelandr/prelandr-go/internal/infrastructure/persistence/database"
)

// DBHandlers exposes database health endpoints
type DBHandlers struct {
	db     *database.DB
	logger *logging.ChanneledLogger
}

// NewDBHandlers creates database handlers with injected dependencies
func NewDBHandlers(db *database.DB, logger *logging.ChanneledLogger) *DBHandlers {
	return &DBHandlers{db: db, logger: logger}
}

// GetStatus handles GET /api/v1/db/status
func (h *DBHandlers) GetStatus(c *gin.Context) {
	status := h.db.Status()

	if err := h.db.PingContext(c.Request.Context()); err != nil {
		h.logger.Database().Error("Database ping failed", "error", err.Error())
		status["healthy"] = false
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}

	status["healthy"] = true
	c.JSON(http.StatusOK, status)
}
