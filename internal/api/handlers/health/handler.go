package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/TravelAgency-BackOffice/internal/api/handlers"
)

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	databaseUp     = "up"
	databaseDown   = "down"

	msgDatabaseUnavailable = "база данных недоступна"
)

const defaultPingTimeout = 2 * time.Second

type Handler struct {
	db          DatabasePinger
	logger      Logger
	pingTimeout time.Duration
}

func NewHandler(db DatabasePinger, logger Logger) *Handler {
	return &Handler{
		db:          db,
		logger:      logger,
		pingTimeout: defaultPingTimeout,
	}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("GET /health - Database ping failed: %v", err)
		handlers.RespondJSON(w, http.StatusServiceUnavailable, struct {
			Response
			Error string `json:"error"`
		}{
			Response: Response{Status: statusDegraded, Database: databaseDown},
			Error:    msgDatabaseUnavailable,
		})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{Status: statusOK, Database: databaseUp})
}
