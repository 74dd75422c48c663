package http

import (
	"net/http"

	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/service"
	"github.com/PadsterH2012/Idea-Incubator/pkg/httpx"
)

// DefaultTheme is returned until the session stores a preference.
const DefaultTheme = "light"

// AppSettingsHandler serves session-scoped app settings. They live in the
// session's extension data, so they reset when the session ends.
type AppSettingsHandler struct {
	SessionService *service.SessionService
}

// HandleGet returns the current session's app settings.
//
//	@Summary	Get app settings
//	@Tags		Settings
//	@Produce	json
//	@Success	200	{object}	AppSettingsResponse
//	@Failure	401	{object}	httpx.Message
//	@Router		/v1/settings/app [get].
func (h *AppSettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	token, ok := httpx.SessionTokenFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, service.ErrUnauthorized)
		return
	}

	theme, ok, err := h.SessionService.GetExtension(r.Context(), token, "theme")
	if err != nil {
		writeSessionError(w, r, err)
		return
	}
	if !ok {
		theme = DefaultTheme
	}

	httpx.WriteJSON(w, http.StatusOK, AppSettingsResponse{Theme: theme})
}

// HandleUpdate stores the session's theme preference.
//
//	@Summary	Update app settings
//	@Tags		Settings
//	@Accept		json
//	@Produce	json
//	@Param		body	body		UpdateAppSettingsRequest	true	"New settings"
//	@Success	200		{object}	AppSettingsResponse
//	@Failure	400		{object}	httpx.Message
//	@Failure	401		{object}	httpx.Message
//	@Router		/v1/settings/app [put].
func (h *AppSettingsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	token, ok := httpx.SessionTokenFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, service.ErrUnauthorized)
		return
	}

	var req UpdateAppSettingsRequest
	if err := decodeJSON(r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Theme != "light" && req.Theme != "dark" {
		httpx.WriteMessage(w, http.StatusBadRequest, "Theme must be light or dark")
		return
	}

	if err := h.SessionService.SetExtension(r.Context(), token, "theme", req.Theme); err != nil {
		writeSessionError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, AppSettingsResponse{Theme: req.Theme})
}
