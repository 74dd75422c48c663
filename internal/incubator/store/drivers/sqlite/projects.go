package sqlite

import (
	"context"

	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/domain"
	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/store"
	"github.com/PadsterH2012/Idea-Incubator/pkg/idx"
)

type projectsRepo struct {
	q dbtx
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO projects (id, user_id, name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID.String(), p.UserID.String(), p.Name, p.Description, p.CreatedAt, p.UpdatedAt,
	)
	return mapConflict(err)
}

// GetProjectForUser scopes the lookup to the owner: a foreign project and a
// missing project are the same ErrNotFound.
func (r *projectsRepo) GetProjectForUser(ctx context.Context, id, userID idx.ID) (domain.Project, error) {
	var (
		p        domain.Project
		pid, uid string
	)
	err := r.q.QueryRowContext(ctx, `
		SELECT id, user_id, name, description, created_at, updated_at
		FROM projects WHERE id = ? AND user_id = ?`,
		id.String(), userID.String(),
	).Scan(&pid, &uid, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}
	p.ID = idx.ID(pid)
	p.UserID = idx.ID(uid)
	return p, nil
}

func (r *projectsRepo) ListProjectsByUser(ctx context.Context, userID idx.ID) ([]domain.Project, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, user_id, name, description, created_at, updated_at
		FROM projects WHERE user_id = ? ORDER BY id`,
		userID.String(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var (
			p        domain.Project
			pid, uid string
		)
		if err := rows.Scan(&pid, &uid, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.ID = idx.ID(pid)
		p.UserID = idx.ID(uid)
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectsRepo) UpdateProjectForUser(ctx context.Context, p domain.Project) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE projects SET name = ?, description = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		p.Name, p.Description, p.UpdatedAt, p.ID.String(), p.UserID.String(),
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *projectsRepo) DeleteProjectForUser(ctx context.Context, id, userID idx.ID) error {
	res, err := r.q.ExecContext(ctx, `
		DELETE FROM projects WHERE id = ? AND user_id = ?`,
		id.String(), userID.String(),
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func requireAffected(res interface{ RowsAffected() (int64, error) }) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
