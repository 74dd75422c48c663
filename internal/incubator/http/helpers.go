package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/service"
	"github.com/PadsterH2012/Idea-Incubator/pkg/httpx"
	"github.com/PadsterH2012/Idea-Incubator/pkg/slogx"
)

// decodeJSON decodes a JSON request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// isJSONRequest reports whether the request body is JSON rather than form data.
func isJSONRequest(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

// writeServiceError maps service sentinels to HTTP responses. Handlers map
// ErrNotFound themselves so the message can name the resource.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		httpx.WriteMessage(w, http.StatusBadRequest, userMessage(err))
	case errors.Is(err, service.ErrConflict):
		httpx.WriteMessage(w, http.StatusConflict, userMessage(err))
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteMessage(w, http.StatusUnauthorized, "Invalid credentials!")
	case errors.Is(err, service.ErrUnauthorized):
		httpx.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

// writeSessionError covers handlers that talk to the session directly and can
// see it expire between the guard and the operation.
func writeSessionError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrInvalidSession) {
		httpx.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	writeServiceError(w, r, err)
}

// userMessage strips the sentinel prefix ("validation_error: ...") so the
// client sees only the human-readable part.
func userMessage(err error) string {
	msg := err.Error()
	if _, detail, ok := strings.Cut(msg, ": "); ok {
		return detail
	}
	return msg
}
