package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/autokirk-mcp-server/internal/config"
	"github.com/stretchr/testify/assert"
)

func runCORS(h *Handler, method, origin string, extra map[string]string) (*httptest.ResponseRecorder, bool) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(method, "/api/info", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	for k, v := range extra {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	h.withCORS()(next).ServeHTTP(rr, req)
	return rr, called
}

func TestWithCORS_Open(t *testing.T) {
	h := newBareHandler()

	t.Run("any origin gets wildcard", func(t *testing.T) {
		rr, called := runCORS(h, http.MethodGet, "https://b.com", nil)

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, strings.ToLower(rr.Header().Get("Access-Control-Expose-Headers")), strings.ToLower(traceIDHeader))
	})

	t.Run("no origin passes", func(t *testing.T) {
		rr, called := runCORS(h, http.MethodGet, "", nil)

		assert.True(t, called)
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight is answered without next", func(t *testing.T) {
		rr, called := runCORS(h, http.MethodOptions, "https://b.com", map[string]string{
			"Access-Control-Request-Method":  http.MethodPost,
			"Access-Control-Request-Headers": "Content-Type",
		})

		assert.False(t, called)
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestWithCORS_Restricted(t *testing.T) {
	tests := []struct {
		name            string
		allowed         string
		origin          string
		wantCalled      bool
		wantStatus      int
		wantAllowOrigin string
	}{
		{
			name:            "exact match is reflected",
			allowed:         "https://a.com",
			origin:          "https://a.com",
			wantCalled:      true,
			wantStatus:      http.StatusOK,
			wantAllowOrigin: "https://a.com",
		},
		{
			name:       "other origin is rejected",
			allowed:    "https://a.com",
			origin:     "https://b.com",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "scheme is part of the origin",
			allowed:    "https://a.com",
			origin:     "http://a.com",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "no origin passes untouched",
			allowed:    "https://a.com",
			wantCalled: true,
			wantStatus: http.StatusOK,
		},
		{
			name:            "entries are trimmed",
			allowed:         " https://a.com ,https://c.com ",
			origin:          "https://c.com",
			wantCalled:      true,
			wantStatus:      http.StatusOK,
			wantAllowOrigin: "https://c.com",
		},
		{
			name:       "comma only allows nothing",
			allowed:    ",",
			origin:     "https://a.com",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newBareHandler()
			h.cors = config.CORS{AllowedOrigins: tt.allowed}

			rr, called := runCORS(h, http.MethodGet, tt.origin, nil)

			assert.Equal(t, tt.wantCalled, called)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantAllowOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantStatus == http.StatusForbidden {
				assert.JSONEq(t, `{"error":"Forbidden","message":"Not allowed by CORS"}`, rr.Body.String())
			}
		})
	}
}

func TestWithCORS_RestrictedPreflight(t *testing.T) {
	h := newBareHandler()
	h.cors = config.CORS{AllowedOrigins: "https://a.com"}

	t.Run("listed origin", func(t *testing.T) {
		rr, called := runCORS(h, http.MethodOptions, "https://a.com", map[string]string{
			"Access-Control-Request-Method": http.MethodPost,
		})

		assert.False(t, called)
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "https://a.com", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unlisted origin", func(t *testing.T) {
		rr, called := runCORS(h, http.MethodOptions, "https://b.com", map[string]string{
			"Access-Control-Request-Method": http.MethodPost,
		})

		assert.False(t, called)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestWithCORS_OptionsWithoutRequestMethod(t *testing.T) {
	tests := []struct {
		name       string
		allowed    string
		origin     string
		wantStatus int
	}{
		{name: "open with origin", origin: "https://b.com", wantStatus: http.StatusNoContent},
		{name: "open without origin", wantStatus: http.StatusNoContent},
		{name: "restricted listed origin", allowed: "https://a.com", origin: "https://a.com", wantStatus: http.StatusNoContent},
		{name: "restricted without origin", allowed: "https://a.com", wantStatus: http.StatusNoContent},
		{name: "restricted unlisted origin", allowed: "https://a.com", origin: "https://b.com", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newBareHandler()
			h.cors = config.CORS{AllowedOrigins: tt.allowed}

			rr, called := runCORS(h, http.MethodOptions, tt.origin, nil)

			assert.False(t, called, "OPTIONS must not reach the route")
			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Empty(t, rr.Body.String())
			}
		})
	}
}
