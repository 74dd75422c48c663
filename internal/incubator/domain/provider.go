package domain

import (
	"time"

	"github.com/PadsterH2012/Idea-Incubator/pkg/idx"
)

// ProviderSettings holds a user's AI provider configuration. One row per
// user; saving again replaces the previous values.
type ProviderSettings struct {
	ID           idx.ID
	UserID       idx.ID
	ProviderName string   // e.g. "Ollama"
	OllamaURL    string   // base URL of the provider endpoint
	Models       []string // model names offered to the agent feature
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SupportedProviders lists the providers the settings form offers.
var SupportedProviders = []string{"Ollama"}
