package http

import (
	"net/http"

	"github.com/MKhiriev/autokirk-mcp-server/internal/logger"
	"github.com/MKhiriev/autokirk-mcp-server/internal/utils"
)

// ping is the MCP placeholder: the body parsed by withJSONBody is echoed
// back, nothing is dispatched.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, _ := utils.GetJSONBodyFromContext(ctx)
	reply := h.services.PingService.Ping(ctx, body)

	if _, err := utils.WriteJSON(w, reply, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing ping response")
	}
}
