package http

import (
	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/domain"
)

// Serialization of domain values is kept here, away from the domain structs
// themselves.

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

type ProfileResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type UpdateProfileRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	CurrentPassword string `json:"current_password"`
}

type AppSettingsResponse struct {
	Theme string `json:"theme"`
}

type UpdateAppSettingsRequest struct {
	Theme string `json:"theme"`
}

type ProviderSettingsRequest struct {
	ProviderName string   `json:"provider_name"`
	OllamaURL    string   `json:"ollama_url"`
	Models       []string `json:"models"`
}

type ProviderSettingsResponse struct {
	ID           string   `json:"id"`
	ProviderName string   `json:"provider_name"`
	OllamaURL    string   `json:"ollama_url"`
	Models       []string `json:"models"`
	Providers    []string `json:"providers"` // providers the form may offer
}

type RolePromptResponse struct {
	Role        string  `json:"role"`
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature"`
	Custom      bool    `json:"custom"`
}

type RolePromptsResponse struct {
	Roles []RolePromptResponse `json:"roles"`
}

type UpdateRolePromptRequest struct {
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature"`
}

type ProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ProjectResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// HealthResponse is returned by the livez and readyz probes.
type HealthResponse struct {
	Status   string `json:"status"`
	Uptime   string `json:"uptime"`
	Version  string `json:"version"`
	Database string `json:"database,omitempty"`
}

func newProjectResponse(p domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
	}
}

func newProjectListResponse(projects []domain.Project) ProjectListResponse {
	out := ProjectListResponse{Projects: make([]ProjectResponse, 0, len(projects))}
	for _, p := range projects {
		out.Projects = append(out.Projects, newProjectResponse(p))
	}
	return out
}

func newProviderSettingsResponse(ps domain.ProviderSettings) ProviderSettingsResponse {
	models := ps.Models
	if models == nil {
		models = []string{}
	}
	return ProviderSettingsResponse{
		ID:           ps.ID.String(),
		ProviderName: ps.ProviderName,
		OllamaURL:    ps.OllamaURL,
		Models:       models,
		Providers:    domain.SupportedProviders,
	}
}

func newRolePromptsResponse(prompts []domain.RolePrompt) RolePromptsResponse {
	out := RolePromptsResponse{Roles: make([]RolePromptResponse, 0, len(prompts))}
	for _, rp := range prompts {
		out.Roles = append(out.Roles, RolePromptResponse{
			Role:        rp.Role,
			Prompt:      rp.Prompt,
			Temperature: rp.Temperature,
			Custom:      rp.Custom,
		})
	}
	return out
}
