package http

import (
	"fmt"
	"net/http"
)

// withRecovery turns a panicking handler into a [KindInternal] answer.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			h.writeError(w, r, newRequestError(KindInternal, fmt.Errorf("%w: %v", ErrHandlerPanic, rec)))
		}()

		next.ServeHTTP(w, r)
	})
}
