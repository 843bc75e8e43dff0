package http

import (
	"net/http"

	"github.com/everhold/everhold/internal/app"
	"github.com/everhold/everhold/internal/logger"
	"github.com/everhold/everhold/internal/utils"
	"github.com/everhold/everhold/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.db.PingContext(r.Context()); err != nil {
		log.Err(err).Msg("database ping failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgDatabaseUnreachable}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]string{"status": app.MsgHealthy}, http.StatusOK)
}
