package http

import (
	"net/http"

	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/service"
	"github.com/PadsterH2012/Idea-Incubator/pkg/httpx"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles user registration.
//
//	@Summary		Register a new user
//	@Description	Creates a user account. Username and email must be unique.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		RegisterRequest	true	"Registration details"
//	@Success		201		{object}	RegisterResponse
//	@Failure		400		{object}	httpx.Message	"Missing username, email, or password"
//	@Failure		409		{object}	httpx.Message	"Username or email already taken"
//	@Router			/v1/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
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
		req.Email = r.PostFormValue("email")
		req.Password = r.PostFormValue("password")
	}

	userID, err := h.AuthService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, RegisterResponse{
		Message: "User registered successfully!",
		UserID:  userID.String(),
	})
}
