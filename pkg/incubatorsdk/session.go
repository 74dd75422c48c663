package incubatorsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Session is an authenticated client scoped to one logged-in user. It carries
// the signed session cookie issued at login; the server may invalidate it at
// any time (logout elsewhere, expiry), after which operations return an
// *APIError with status 401.
type Session struct {
	client *SDKClient
	cookie string
}

// Cookie returns the raw session cookie pair, for callers that need to hand
// the session to another client.
func (s *Session) Cookie() string {
	return s.cookie
}

// Logout destroys the session server-side. The Session must not be used
// afterwards.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.client.doJSON(ctx, http.MethodPost, "/v1/logout", nil, s.cookie)
	if err != nil {
		return err
	}

	var out MessageResponse
	return decodeJSON(resp, &out, http.StatusOK)
}

// Profile returns the user's profile.
func (s *Session) Profile(ctx context.Context) (*Profile, error) {
	resp, err := s.client.doJSON(ctx, http.MethodGet, "/v1/profile", nil, s.cookie)
	if err != nil {
		return nil, err
	}

	var out Profile
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile changes username and email. The current password must be supplied.
func (s *Session) UpdateProfile(ctx context.Context, req UpdateProfileRequest) error {
	resp, err := s.client.doJSON(ctx, http.MethodPut, "/v1/profile", req, s.cookie)
	if err != nil {
		return err
	}

	var out MessageResponse
	return decodeJSON(resp, &out, http.StatusOK)
}

// AppSettings returns the session-scoped app settings.
func (s *Session) AppSettings(ctx context.Context) (*AppSettings, error) {
	resp, err := s.client.doJSON(ctx, http.MethodGet, "/v1/settings/app", nil, s.cookie)
	if err != nil {
		return nil, err
	}

	var out AppSettings
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAppSettings stores the session's theme preference.
func (s *Session) UpdateAppSettings(ctx context.Context, settings AppSettings) (*AppSettings, error) {
	resp, err := s.client.doJSON(ctx, http.MethodPut, "/v1/settings/app", settings, s.cookie)
	if err != nil {
		return nil, err
	}

	var out AppSettings
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProviderSettings returns the user's AI provider configuration.
func (s *Session) ProviderSettings(ctx context.Context) (*ProviderSettings, error) {
	resp, err := s.client.doJSON(ctx, http.MethodGet, "/v1/settings/provider", nil, s.cookie)
	if err != nil {
		return nil, err
	}

	var out ProviderSettings
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveProviderSettings creates or replaces the provider configuration.
func (s *Session) SaveProviderSettings(ctx context.Context, req ProviderSettingsRequest) (*ProviderSettings, error) {
	resp, err := s.client.doJSON(ctx, http.MethodPut, "/v1/settings/provider", req, s.cookie)
	if err != nil {
		return nil, err
	}

	var out ProviderSettings
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// RolePrompts lists the agent roles with the user's overrides applied.
func (s *Session) RolePrompts(ctx context.Context) (*RolePromptsResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodGet, "/v1/settings/roles", nil, s.cookie)
	if err != nil {
		return nil, err
	}

	var out RolePromptsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveRolePrompt stores a customization of one agent role. Role names may
// contain spaces, so the path segment is escaped.
func (s *Session) SaveRolePrompt(ctx context.Context, role string, req UpdateRolePromptRequest) error {
	resp, err := s.client.doJSON(ctx, http.MethodPut, "/v1/settings/roles/"+url.PathEscape(role), req, s.cookie)
	if err != nil {
		return err
	}

	var out MessageResponse
	return decodeJSON(resp, &out, http.StatusOK)
}

// ListProjects returns all of the user's projects.
func (s *Session) ListProjects(ctx context.Context) (*ProjectListResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodGet, "/v1/projects", nil, s.cookie)
	if err != nil {
		return nil, err
	}

	var out ProjectListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProject creates a project.
func (s *Session) CreateProject(ctx context.Context, req ProjectRequest) (*Project, error) {
	resp, err := s.client.doJSON(ctx, http.MethodPost, "/v1/projects", req, s.cookie)
	if err != nil {
		return nil, err
	}

	var out Project
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProject returns one project by id.
func (s *Session) GetProject(ctx context.Context, id string) (*Project, error) {
	resp, err := s.client.doJSON(ctx, http.MethodGet, "/v1/projects/"+id, nil, s.cookie)
	if err != nil {
		return nil, err
	}

	var out Project
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProject updates a project's name and description.
func (s *Session) UpdateProject(ctx context.Context, id string, req ProjectRequest) (*Project, error) {
	resp, err := s.client.doJSON(ctx, http.MethodPut, "/v1/projects/"+id, req, s.cookie)
	if err != nil {
		return nil, err
	}

	var out Project
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProject removes a project.
func (s *Session) DeleteProject(ctx context.Context, id string) error {
	resp, err := s.client.doJSON(ctx, http.MethodDelete, "/v1/projects/"+id, nil, s.cookie)
	if err != nil {
		return err
	}

	var out MessageResponse
	return decodeJSON(resp, &out, http.StatusOK)
}
