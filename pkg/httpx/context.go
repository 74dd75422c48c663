package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/PadsterH2012/Idea-Incubator/pkg/idx"
)

type ctxKey string

const (
	// CtxKeyUserID holds the authenticated user's idx.ID.
	CtxKeyUserID ctxKey = "user_id"
	// CtxKeySessionToken holds the opaque session token of the request.
	CtxKeySessionToken ctxKey = "session_token"
)

// UserIDFromContext returns the authenticated user id set by the session guard.
func UserIDFromContext(ctx context.Context) (idx.ID, bool) {
	id, ok := ctx.Value(CtxKeyUserID).(idx.ID)
	return id, ok
}

// SessionTokenFromContext returns the opaque session token of the request.
func SessionTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(CtxKeySessionToken).(string)
	return token, ok
}

// WantsJSON reports whether the client asked for a machine-readable error
// (Accept: application/json) rather than a browser redirect.
func WantsJSON(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		if mediaType == "application/json" {
			return true
		}
	}
	return false
}
