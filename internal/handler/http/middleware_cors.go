package http

import (
	"net/http"

	"github.com/MKhiriev/autokirk-mcp-server/internal/logger"
	"github.com/go-chi/cors"
)

// corsAllowedMethods matches the default method list of common CORS
// middleware presets.
var corsAllowedMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPut,
	http.MethodPatch,
	http.MethodPost,
	http.MethodDelete,
}

// withCORS builds the CORS stage.
//
// Without an allow-list every origin is accepted and answered with
// Access-Control-Allow-Origin: *. With an allow-list, requests without an
// Origin header pass without CORS headers, listed origins get their origin
// reflected, and any other origin is answered here with 403 before reaching a
// route. Every admitted OPTIONS request ends here with 204.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedMethods:     corsAllowedMethods,
		AllowedHeaders:     []string{"*"},
		ExposedHeaders:     []string{traceIDHeader},
		OptionsPassthrough: true,
	}

	if !h.cors.Restricted() {
		opts.AllowedOrigins = []string{"*"}
		headers := cors.Handler(opts)

		return func(next http.Handler) http.Handler {
			return headers(answerPreflight(next))
		}
	}

	origins := h.cors.Origins()
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}

	opts.AllowedOrigins = origins
	headers := cors.Handler(opts)

	return func(next http.Handler) http.Handler {
		preflight := answerPreflight(next)
		withHeaders := headers(preflight)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				preflight.ServeHTTP(w, r)
				return
			}

			if _, ok := allowed[origin]; ok {
				withHeaders.ServeHTTP(w, r)
				return
			}

			logger.FromRequest(r).Warn().Str("origin", origin).Msg("origin rejected by CORS")
			h.writeError(w, r, newRequestError(KindCORS, ErrNotAllowedByCORS))
		})
	}
}

// answerPreflight ends every OPTIONS request with 204, with or without
// Access-Control-Request-Method; every other request continues to next.
func answerPreflight(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
