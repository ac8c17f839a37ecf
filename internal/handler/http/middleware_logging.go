package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/autokirk-mcp-server/internal/config"
	"github.com/MKhiriev/autokirk-mcp-server/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access-log entry per request once the downstream
// handler returns. The field set follows the configured format label.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		h.accessEvent(log, lw.Status()).
			Func(accessFields(h.logFormat, r, lw, time.Since(start))).
			Send()
	})
}

// accessEvent picks the level of the entry. The dev format flags client and
// server errors; the other formats log everything at info.
func (h *Handler) accessEvent(log *logger.Logger, status int) *zerolog.Event {
	if h.logFormat != config.LogFormatDev {
		return log.Info()
	}

	switch {
	case status >= http.StatusInternalServerError:
		return log.Error()
	case status >= http.StatusBadRequest:
		return log.Warn()
	default:
		return log.Info()
	}
}

func accessFields(format string, r *http.Request, lw *responseWriter, duration time.Duration) func(e *zerolog.Event) {
	return func(e *zerolog.Event) {
		switch format {
		case config.LogFormatDev, config.LogFormatTiny:
			e.Str("method", r.Method).
				Str("uri", r.RequestURI).
				Int("status", lw.Status()).
				Dur("duration", duration).
				Int("size", lw.size)
		case config.LogFormatShort:
			e.Str("remote_addr", r.RemoteAddr).
				Str("method", r.Method).
				Str("uri", r.RequestURI).
				Str("proto", r.Proto).
				Int("status", lw.Status()).
				Int("size", lw.size).
				Dur("duration", duration)
		case config.LogFormatCommon:
			commonFields(e, r, lw)
		default:
			commonFields(e, r, lw)
			e.Str("referer", r.Referer()).
				Str("user_agent", r.UserAgent())
		}
	}
}

func commonFields(e *zerolog.Event, r *http.Request, lw *responseWriter) {
	e.Str("remote_addr", r.RemoteAddr).
		Str("method", r.Method).
		Str("uri", r.RequestURI).
		Str("proto", r.Proto).
		Int("status", lw.Status()).
		Int("size", lw.size)
}
