package http

import (
	"net/http"

	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/service"
	"github.com/PadsterH2012/Idea-Incubator/pkg/cookiex"
	"github.com/PadsterH2012/Idea-Incubator/pkg/httpx"
)

type LogoutHandler struct {
	SessionService *service.SessionService
	Cookies        *cookiex.Codec
}

// ServeHTTP destroys the current session and clears the cookie. Always
// succeeds: a missing, invalid or already-destroyed session still gets a 200
// and a cleared cookie.
//
//	@Summary		Log out
//	@Description	Destroys the session referenced by the cookie, if any.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	httpx.Message
//	@Router			/v1/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if signed, ok := cookiex.Read(r); ok {
		if token, err := h.Cookies.Verify(signed); err == nil {
			if err := h.SessionService.Destroy(r.Context(), token); err != nil {
				writeServiceError(w, r, err)
				return
			}
		}
	}

	h.Cookies.Clear(w)
	httpx.WriteMessage(w, http.StatusOK, "Logged out successfully!")
}
