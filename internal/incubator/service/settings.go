package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/domain"
	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/store"
	"github.com/PadsterH2012/Idea-Incubator/pkg/idx"
)

// SettingsService manages per-user AI provider settings and agent role
// prompt overrides. Session-scoped app settings (theme) live in the session
// extension data instead, so they vanish with the session.
type SettingsService struct {
	Store store.Store
}

// GetProviderSettings returns the user's provider configuration, or
// ErrNotFound when the user never saved any.
func (s *SettingsService) GetProviderSettings(ctx context.Context, userID idx.ID) (domain.ProviderSettings, error) {
	ps, err := s.Store.ProviderSettings().GetProviderSettingsByUser(ctx, userID)
	if err != nil {
		return domain.ProviderSettings{}, mapStoreNotFound(err)
	}
	return ps, nil
}

// SaveProviderSettings creates or replaces the user's single settings row.
func (s *SettingsService) SaveProviderSettings(ctx context.Context, userID idx.ID, providerName, ollamaURL string, models []string) (domain.ProviderSettings, error) {
	providerName = strings.TrimSpace(providerName)
	if providerName == "" {
		return domain.ProviderSettings{}, fmt.Errorf("%w: missing provider name", ErrValidation)
	}

	now := time.Now().UTC()
	ps := domain.ProviderSettings{
		ID:           idx.New(),
		UserID:       userID,
		ProviderName: providerName,
		OllamaURL:    strings.TrimSpace(ollamaURL),
		Models:       models,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.ProviderSettings().UpsertProviderSettings(ctx, ps); err != nil {
		return domain.ProviderSettings{}, err
	}
	return s.GetProviderSettings(ctx, userID)
}

// ListRolePrompts returns the built-in agent roles with the user's overrides
// applied in place.
func (s *SettingsService) ListRolePrompts(ctx context.Context, userID idx.ID) ([]domain.RolePrompt, error) {
	overrides, err := s.Store.RolePrompts().ListRolePromptsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	byRole := make(map[string]domain.RolePromptOverride, len(overrides))
	for _, o := range overrides {
		byRole[o.Role] = o
	}

	prompts := domain.DefaultRolePrompts()
	for i, rp := range prompts {
		if o, ok := byRole[rp.Role]; ok {
			prompts[i].Prompt = o.Prompt
			prompts[i].Temperature = o.Temperature
			prompts[i].Custom = true
		}
	}
	return prompts, nil
}

// SaveRolePrompt stores the user's customization of one built-in role.
func (s *SettingsService) SaveRolePrompt(ctx context.Context, userID idx.ID, role, prompt string, temperature float64) error {
	if !domain.IsKnownRole(role) {
		return fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}
	if strings.TrimSpace(prompt) == "" {
		return fmt.Errorf("%w: missing prompt", ErrValidation)
	}
	if temperature < 0 || temperature > 2 {
		return fmt.Errorf("%w: temperature out of range", ErrValidation)
	}

	now := time.Now().UTC()
	return s.Store.RolePrompts().UpsertRolePrompt(ctx, domain.RolePromptOverride{
		ID:          idx.New(),
		UserID:      userID,
		Role:        role,
		Prompt:      prompt,
		Temperature: temperature,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}
