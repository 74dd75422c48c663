package http

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/service"
	"github.com/PadsterH2012/Idea-Incubator/pkg/cookiex"
	"github.com/PadsterH2012/Idea-Incubator/pkg/httpx"
)

type LoginHandler struct {
	AuthService    *service.AuthService
	SessionService *service.SessionService
	Cookies        *cookiex.Codec
}

// ServeHTTP handles credential login.
//
//	@Summary		Log in
//	@Description	Verifies credentials and issues a fresh session cookie.
//	@Description	Any session referenced by an incoming cookie is destroyed first.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	LoginResponse
//	@Failure		400		{object}	httpx.Message	"Missing username or password"
//	@Failure		401		{object}	httpx.Message	"Invalid credentials"
//	@Router			/v1/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if isJSONRequest(r) {
		if err := decodeJSON(r, &req); err != nil {
			httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		req.Username = r.PostFormValue("username")
		req.Password = r.PostFormValue("password")
	}

	// Session fixation guard: whatever session the browser presented is gone
	// after a login attempt reaches credential verification.
	if signed, ok := cookiex.Read(r); ok {
		if old, err := h.Cookies.Verify(signed); err == nil {
			_ = h.SessionService.Destroy(r.Context(), old)
		}
	}

	token, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	signed, err := h.Cookies.Sign(token, time.Now().UTC())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	h.Cookies.Set(w, signed)

	httpx.WriteJSON(w, http.StatusOK, LoginResponse{
		Message:  "Login successful!",
		Redirect: safeNext(r.URL.Query().Get("next")),
	})
}

// safeNext keeps post-login redirects on-site. Anything carrying a scheme or
// host falls back to the root.
func safeNext(next string) string {
	if next == "" {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	return next
}
