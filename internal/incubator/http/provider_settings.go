package http

import (
	"errors"
	"net/http"

	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/service"
	"github.com/PadsterH2012/Idea-Incubator/pkg/httpx"
)

type ProviderSettingsHandler struct {
	SettingsService *service.SettingsService
}

// HandleGet returns the user's AI provider configuration.
//
//	@Summary	Get provider settings
//	@Tags		Settings
//	@Produce	json
//	@Success	200	{object}	ProviderSettingsResponse
//	@Failure	401	{object}	httpx.Message
//	@Failure	404	{object}	httpx.Message	"No settings saved yet"
//	@Router		/v1/settings/provider [get].
func (h *ProviderSettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, service.ErrUnauthorized)
		return
	}

	ps, err := h.SettingsService.GetProviderSettings(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			httpx.WriteMessage(w, http.StatusNotFound, "Provider settings not found")
			return
		}
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newProviderSettingsResponse(ps))
}

// HandleUpdate creates or replaces the user's provider configuration.
//
//	@Summary	Save provider settings
//	@Tags		Settings
//	@Accept		json
//	@Produce	json
//	@Param		body	body		ProviderSettingsRequest	true	"Provider configuration"
//	@Success	200		{object}	ProviderSettingsResponse
//	@Failure	400		{object}	httpx.Message
//	@Failure	401		{object}	httpx.Message
//	@Router		/v1/settings/provider [put].
func (h *ProviderSettingsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, service.ErrUnauthorized)
		return
	}

	var req ProviderSettingsRequest
	if err := decodeJSON(r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ps, err := h.SettingsService.SaveProviderSettings(r.Context(), userID, req.ProviderName, req.OllamaURL, req.Models)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newProviderSettingsResponse(ps))
}
