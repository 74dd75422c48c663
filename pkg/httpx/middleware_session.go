package httpx

import (
	"context"
	"net/http"
	"net/url"

	"github.com/PadsterH2012/Idea-Incubator/pkg/cookiex"
	"github.com/PadsterH2012/Idea-Incubator/pkg/idx"
	"github.com/PadsterH2012/Idea-Incubator/pkg/slogx"
)

// SessionAuthorizer resolves an opaque session token to a user id, failing
// for unknown, expired or destroyed sessions.
type SessionAuthorizer interface {
	Authorize(ctx context.Context, token string) (idx.ID, error)
}

// SessionMiddleware guards protected routes. It unwraps the signed session
// cookie, authorizes the token, and injects the user id and token into the
// request context.
//
// Rejections are content-negotiated: clients sending Accept: application/json
// get a 401 JSON body; browsers get a redirect to loginPath with the original
// URL in ?next=.
func SessionMiddleware(codec *cookiex.Codec, auth SessionAuthorizer, loginPath string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			signed, ok := cookiex.Read(r)
			if !ok {
				rejectUnauthorized(w, r, loginPath)
				return
			}

			token, err := codec.Verify(signed)
			if err != nil {
				log.Warn("session cookie verification failed", "err", err)
				rejectUnauthorized(w, r, loginPath)
				return
			}

			userID, err := auth.Authorize(ctx, token)
			if err != nil {
				rejectUnauthorized(w, r, loginPath)
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, userID)
			ctx = context.WithValue(ctx, CtxKeySessionToken, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func rejectUnauthorized(w http.ResponseWriter, r *http.Request, loginPath string) {
	if WantsJSON(r) {
		WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	target := loginPath + "?next=" + url.QueryEscape(r.URL.RequestURI())
	http.Redirect(w, r, target, http.StatusFound)
}
