package http

import (
	"net/http"

	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/service"
	"github.com/PadsterH2012/Idea-Incubator/pkg/httpx"
)

type RoleSettingsHandler struct {
	SettingsService *service.SettingsService
}

// HandleList returns every agent role with the user's overrides applied.
//
//	@Summary	List agent role prompts
//	@Tags		Settings
//	@Produce	json
//	@Success	200	{object}	RolePromptsResponse
//	@Failure	401	{object}	httpx.Message
//	@Router		/v1/settings/roles [get].
func (h *RoleSettingsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, service.ErrUnauthorized)
		return
	}

	prompts, err := h.SettingsService.ListRolePrompts(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newRolePromptsResponse(prompts))
}

// HandleUpdate stores the user's customization of one role.
//
//	@Summary	Customize an agent role prompt
//	@Tags		Settings
//	@Accept		json
//	@Produce	json
//	@Param		role	path		string					true	"Role name"
//	@Param		body	body		UpdateRolePromptRequest	true	"Prompt and temperature"
//	@Success	200		{object}	httpx.Message
//	@Failure	400		{object}	httpx.Message	"Unknown role, empty prompt or temperature out of range"
//	@Failure	401		{object}	httpx.Message
//	@Router		/v1/settings/roles/{role} [put].
func (h *RoleSettingsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, service.ErrUnauthorized)
		return
	}

	var req UpdateRolePromptRequest
	if err := decodeJSON(r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	role := r.PathValue("role")
	if err := h.SettingsService.SaveRolePrompt(r.Context(), userID, role, req.Prompt, req.Temperature); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Role prompt updated successfully!")
}
