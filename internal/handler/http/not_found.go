package http

import "net/http"

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, newRequestError(KindNotFound, ErrRouteNotFound))
}
