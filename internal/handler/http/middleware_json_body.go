package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/MKhiriev/autokirk-mcp-server/internal/utils"
)

const mediaTypeJSON = "application/json"

// withJSONBody parses JSON request bodies into the request context.
//
// Only requests that carry a body and declare application/json are
// inspected. A blank body counts as no body. The raw bytes are put back on
// r.Body so handlers may still read them. Any failure ends the request in
// the error stage with [KindParse].
func (h *Handler) withJSONBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !hasBody(r) || !isJSONContentType(r.Header.Get("Content-Type")) {
			next.ServeHTTP(w, r)
			return
		}

		raw, err := io.ReadAll(io.LimitReader(r.Body, h.maxBodyBytes+1))
		if err != nil {
			h.writeError(w, r, newRequestError(KindParse, fmt.Errorf("%w: %v", ErrReadingBody, err)))
			return
		}
		if int64(len(raw)) > h.maxBodyBytes {
			h.writeError(w, r, newRequestError(KindParse, ErrBodyTooLarge))
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(raw))

		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		body, err := parseStrictJSON(trimmed)
		if err != nil {
			h.writeError(w, r, newRequestError(KindParse, err))
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithJSONBody(r.Context(), body)))
	})
}

func hasBody(r *http.Request) bool {
	return r.Body != nil && r.Body != http.NoBody && r.ContentLength != 0
}

func isJSONContentType(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == mediaTypeJSON
}

// parseStrictJSON accepts only a single object or array. raw must already be
// trimmed of surrounding whitespace.
//
// The value is returned re-encoded: a duplicated key keeps its last value,
// invalid UTF-8 in strings becomes U+FFFD, object keys are sorted and numbers
// keep their literal text even outside the float64 range.
func parseStrictJSON(raw []byte) (json.RawMessage, error) {
	if raw[0] != '{' && raw[0] != '[' {
		return nil, ErrJSONTopLevel
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after top-level value", ErrMalformedJSON)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	return json.RawMessage(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
