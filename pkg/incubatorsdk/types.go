package incubatorsdk

// MessageResponse is the generic {"message": ...} envelope used by
// mutations that return no resource body.
type MessageResponse struct {
	Message string `json:"message"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type LoginResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type UpdateProfileRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	CurrentPassword string `json:"current_password"`
}

type AppSettings struct {
	Theme string `json:"theme"`
}

type ProviderSettings struct {
	ID           string   `json:"id"`
	ProviderName string   `json:"provider_name"`
	OllamaURL    string   `json:"ollama_url"`
	Models       []string `json:"models"`
	Providers    []string `json:"providers"`
}

type ProviderSettingsRequest struct {
	ProviderName string   `json:"provider_name"`
	OllamaURL    string   `json:"ollama_url"`
	Models       []string `json:"models"`
}

type RolePrompt struct {
	Role        string  `json:"role"`
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature"`
	Custom      bool    `json:"custom"`
}

type RolePromptsResponse struct {
	Roles []RolePrompt `json:"roles"`
}

type UpdateRolePromptRequest struct {
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature"`
}

type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ProjectListResponse struct {
	Projects []Project `json:"projects"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Uptime   string `json:"uptime"`
	Version  string `json:"version"`
	Database string `json:"database,omitempty"`
}
