package sqlite

import (
	"context"
	"time"

	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/domain"
	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/store"
	"github.com/PadsterH2012/Idea-Incubator/pkg/idx"
)

type usersRepo struct {
	q dbtx
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID.String(), u.Username, u.Email, u.PasswordHash, u.CreatedAt, u.UpdatedAt,
	)
	return mapConflict(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id idx.ID) (domain.User, error) {
	return r.scanUser(ctx, `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM users WHERE id = ?`, id.String())
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.scanUser(ctx, `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM users WHERE username = ?`, username)
}

func (r *usersRepo) UpdateProfile(ctx context.Context, id idx.ID, username, email string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users SET username = ?, email = ?, updated_at = ?
		WHERE id = ?`,
		username, email, time.Now().UTC(), id.String(),
	)
	if err != nil {
		return mapConflict(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) scanUser(ctx context.Context, query string, arg any) (domain.User, error) {
	var (
		u  domain.User
		id string
	)
	err := r.q.QueryRowContext(ctx, query, arg).Scan(
		&id, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.ID = idx.ID(id)
	return u, nil
}
