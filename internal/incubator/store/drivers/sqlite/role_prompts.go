package sqlite

import (
	"context"

	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/domain"
	"github.com/PadsterH2012/Idea-Incubator/pkg/idx"
)

type rolePromptsRepo struct {
	q dbtx
}

func (r *rolePromptsRepo) UpsertRolePrompt(ctx context.Context, rp domain.RolePromptOverride) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO role_prompts (id, user_id, role_name, prompt, temperature, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, role_name) DO UPDATE SET
			prompt = excluded.prompt,
			temperature = excluded.temperature,
			updated_at = excluded.updated_at`,
		rp.ID.String(), rp.UserID.String(), rp.Role, rp.Prompt, rp.Temperature,
		rp.CreatedAt, rp.UpdatedAt,
	)
	return err
}

func (r *rolePromptsRepo) ListRolePromptsByUser(ctx context.Context, userID idx.ID) ([]domain.RolePromptOverride, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, user_id, role_name, prompt, temperature, created_at, updated_at
		FROM role_prompts WHERE user_id = ? ORDER BY role_name`,
		userID.String(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overrides []domain.RolePromptOverride
	for rows.Next() {
		var (
			rp      domain.RolePromptOverride
			id, uid string
		)
		if err := rows.Scan(&id, &uid, &rp.Role, &rp.Prompt, &rp.Temperature, &rp.CreatedAt, &rp.UpdatedAt); err != nil {
			return nil, err
		}
		rp.ID = idx.ID(id)
		rp.UserID = idx.ID(uid)
		overrides = append(overrides, rp)
	}
	return overrides, rows.Err()
}
