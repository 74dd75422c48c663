package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/domain"
	"github.com/PadsterH2012/Idea-Incubator/pkg/idx"
)

type sessionsRepo struct {
	q dbtx
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	data, err := marshalSessionData(s.Data)
	if err != nil {
		return err
	}
	_, err = r.q.ExecContext(ctx, `
		INSERT INTO sessions (id, user_id, token_hash, data, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID.String(), s.UserID.String(), s.TokenHash, data, s.CreatedAt, s.ExpiresAt,
	)
	return mapConflict(err)
}

func (r *sessionsRepo) GetSessionByTokenHash(ctx context.Context, tokenHash string) (domain.Session, error) {
	var (
		s        domain.Session
		id, uid  string
		rawData  string
	)
	err := r.q.QueryRowContext(ctx, `
		SELECT id, user_id, token_hash, data, created_at, expires_at
		FROM sessions WHERE token_hash = ?`, tokenHash,
	).Scan(&id, &uid, &s.TokenHash, &rawData, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}

	s.ID = idx.ID(id)
	s.UserID = idx.ID(uid)
	if err := json.Unmarshal([]byte(rawData), &s.Data); err != nil {
		return domain.Session{}, fmt.Errorf("decode session data: %w", err)
	}
	return s, nil
}

func (r *sessionsRepo) UpdateSessionData(ctx context.Context, id idx.ID, data map[string]string) error {
	raw, err := marshalSessionData(data)
	if err != nil {
		return err
	}
	_, err = r.q.ExecContext(ctx, `
		UPDATE sessions SET data = ? WHERE id = ?`, raw, id.String())
	return err
}

func (r *sessionsRepo) DeleteSessionByTokenHash(ctx context.Context, tokenHash string) error {
	// Idempotent: deleting an absent session is not an error.
	_, err := r.q.ExecContext(ctx, `DELETE FROM sessions WHERE token_hash = ?`, tokenHash)
	return err
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, now)
	return err
}

func marshalSessionData(data map[string]string) (string, error) {
	if data == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode session data: %w", err)
	}
	return string(raw), nil
}
