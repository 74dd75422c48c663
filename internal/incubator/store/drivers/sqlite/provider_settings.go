package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/domain"
	"github.com/PadsterH2012/Idea-Incubator/pkg/idx"
)

type providerSettingsRepo struct {
	q dbtx
}

func (r *providerSettingsRepo) UpsertProviderSettings(ctx context.Context, ps domain.ProviderSettings) error {
	models, err := marshalModels(ps.Models)
	if err != nil {
		return err
	}
	// One settings row per user; saving again replaces it.
	_, err = r.q.ExecContext(ctx, `
		INSERT INTO provider_settings (id, user_id, provider_name, ollama_url, models, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			provider_name = excluded.provider_name,
			ollama_url = excluded.ollama_url,
			models = excluded.models,
			updated_at = excluded.updated_at`,
		ps.ID.String(), ps.UserID.String(), ps.ProviderName, ps.OllamaURL, models,
		ps.CreatedAt, ps.UpdatedAt,
	)
	return err
}

func (r *providerSettingsRepo) GetProviderSettingsByUser(ctx context.Context, userID idx.ID) (domain.ProviderSettings, error) {
	var (
		ps        domain.ProviderSettings
		id, uid   string
		rawModels string
	)
	err := r.q.QueryRowContext(ctx, `
		SELECT id, user_id, provider_name, ollama_url, models, created_at, updated_at
		FROM provider_settings WHERE user_id = ?`,
		userID.String(),
	).Scan(&id, &uid, &ps.ProviderName, &ps.OllamaURL, &rawModels, &ps.CreatedAt, &ps.UpdatedAt)
	if err != nil {
		return domain.ProviderSettings{}, mapNotFound(err)
	}

	ps.ID = idx.ID(id)
	ps.UserID = idx.ID(uid)
	if err := json.Unmarshal([]byte(rawModels), &ps.Models); err != nil {
		return domain.ProviderSettings{}, fmt.Errorf("decode models: %w", err)
	}
	return ps, nil
}

func marshalModels(models []string) (string, error) {
	if models == nil {
		return "[]", nil
	}
	raw, err := json.Marshal(models)
	if err != nil {
		return "", fmt.Errorf("encode models: %w", err)
	}
	return string(raw), nil
}
