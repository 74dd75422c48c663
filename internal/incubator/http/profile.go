package http

import (
	"net/http"

	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/service"
	"github.com/PadsterH2012/Idea-Incubator/pkg/httpx"
)

type ProfileHandler struct {
	AuthService *service.AuthService
}

// HandleGet returns the authenticated user's profile.
//
//	@Summary	Get profile
//	@Tags		Profile
//	@Produce	json
//	@Success	200	{object}	ProfileResponse
//	@Failure	401	{object}	httpx.Message
//	@Router		/v1/profile [get].
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, service.ErrUnauthorized)
		return
	}

	user, err := h.AuthService.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, ProfileResponse{
		Username: user.Username,
		Email:    user.Email,
	})
}

// HandleUpdate changes username and email. The current password must be
// supplied even though the session is already authenticated.
//
//	@Summary	Update profile
//	@Tags		Profile
//	@Accept		json
//	@Produce	json
//	@Param		body	body		UpdateProfileRequest	true	"New profile values and current password"
//	@Success	200		{object}	httpx.Message
//	@Failure	400		{object}	httpx.Message
//	@Failure	401		{object}	httpx.Message	"Wrong current password"
//	@Failure	409		{object}	httpx.Message	"Username or email already taken"
//	@Router		/v1/profile [put].
func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, service.ErrUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.AuthService.UpdateProfile(r.Context(), userID, req.Username, req.Email, req.CurrentPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Profile updated successfully!")
}
