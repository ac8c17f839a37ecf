package http

import (
	"net/http"

	"github.com/MKhiriev/autokirk-mcp-server/internal/logger"
	"github.com/MKhiriev/autokirk-mcp-server/internal/utils"
)

func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	health := h.services.HealthService.Health(r.Context())

	if _, err := utils.WriteJSON(w, health, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing health response")
	}
}
