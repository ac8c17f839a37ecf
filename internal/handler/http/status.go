package http

import (
	"net/http"

	"github.com/MKhiriev/autokirk-mcp-server/internal/logger"
	"github.com/MKhiriev/autokirk-mcp-server/internal/utils"
)

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	status := h.services.AppInfoService.Status(r.Context())

	if _, err := utils.WriteJSON(w, status, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing status response")
	}
}

func (h *Handler) getInfo(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.Info(r.Context())

	if _, err := utils.WriteJSON(w, info, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing info response")
	}
}
