package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/autokirk-mcp-server/internal/logger"
	"github.com/MKhiriev/autokirk-mcp-server/internal/utils"
	"github.com/MKhiriev/autokirk-mcp-server/models"
)

var kindStatusMap = map[ErrorKind]int{
	KindInternal: http.StatusInternalServerError,
	KindNotFound: http.StatusNotFound,
	KindParse:    http.StatusInternalServerError,
	KindCORS:     http.StatusForbidden,
}

func statusFromKind(kind ErrorKind) int {
	if status, ok := kindStatusMap[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// kindOf extracts the kind carried by err. Errors that are not a
// [RequestError] are internal.
func kindOf(err error) ErrorKind {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Kind
	}
	return KindInternal
}

// writeError is the single place where failures become responses. Only the
// error message is exposed; 500-class failures are logged.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := kindOf(err)
	status := statusFromKind(kind)

	var resp models.ErrorResponse
	switch kind {
	case KindNotFound:
		resp = models.ErrorResponse{Error: http.StatusText(status), Path: r.URL.EscapedPath()}
	case KindCORS:
		resp = models.ErrorResponse{Error: http.StatusText(status), Message: err.Error()}
	case KindParse, KindInternal:
		logger.FromRequest(r).Error().
			Err(err).
			Str("kind", kind.String()).
			Msg("error handler caught")
		resp = models.ErrorResponse{Error: http.StatusText(status), Message: err.Error()}
	default:
		logger.FromRequest(r).Error().Err(err).Msg("error of unknown kind")
		status = http.StatusInternalServerError
		resp = models.ErrorResponse{Error: http.StatusText(status), Message: err.Error()}
	}

	if _, wErr := utils.WriteJSON(w, resp, status); wErr != nil {
		logger.FromRequest(r).Err(wErr).Msg("error writing error response")
	}
}
