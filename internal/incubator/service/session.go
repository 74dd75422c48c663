package service

import (
	"context"
	"errors"
	"time"

	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/domain"
	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/store"
	"github.com/PadsterH2012/Idea-Incubator/pkg/cryptox"
	"github.com/PadsterH2012/Idea-Incubator/pkg/idx"
)

// DefaultSessionLifetime is the fixed session window: set once at creation,
// never extended by activity.
const DefaultSessionLifetime = time.Hour

// ErrInvalidSession reports an unknown, expired or destroyed session token.
var ErrInvalidSession = errors.New("invalid_session")

// SessionService owns the server-side session lifecycle. Tokens are opaque
// random strings; only their fingerprints are persisted. A session moves from
// active to expired (checked lazily on access) or destroyed (logout), never
// back.
type SessionService struct {
	Store    store.Store
	Lifetime time.Duration
}

func (s *SessionService) lifetime() time.Duration {
	if s.Lifetime <= 0 {
		return DefaultSessionLifetime
	}
	return s.Lifetime
}

// Create establishes a new session for userID and returns the opaque token.
// Concurrent sessions for the same user are independent; creating one never
// touches the others.
func (s *SessionService) Create(ctx context.Context, userID idx.ID) (string, error) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	session := domain.Session{
		ID:        idx.New(),
		UserID:    userID,
		TokenHash: cryptox.FingerprintToken(token),
		Data:      map[string]string{},
		CreatedAt: now,
		ExpiresAt: now.Add(s.lifetime()),
	}

	if err := s.Store.Sessions().CreateSession(ctx, session); err != nil {
		return "", err
	}
	return token, nil
}

// Validate resolves a token to its user id. Unknown tokens and tokens at or
// past their expiry are both ErrInvalidSession; expired rows are deleted on
// the spot. Expiry is never extended here.
func (s *SessionService) Validate(ctx context.Context, token string) (idx.ID, error) {
	session, err := s.lookup(ctx, token)
	if err != nil {
		return idx.Zero, err
	}
	return session.UserID, nil
}

// Destroy removes a session. Destroying an unknown or already-destroyed
// token is a no-op.
func (s *SessionService) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.Store.Sessions().DeleteSessionByTokenHash(ctx, cryptox.FingerprintToken(token))
}

// SetExtension stores a small per-session key/value (e.g. UI theme). The
// value lives and dies with the session.
func (s *SessionService) SetExtension(ctx context.Context, token, key, value string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		session, err := lookupIn(ctx, tx, token)
		if err != nil {
			return err
		}
		if session.Data == nil {
			session.Data = map[string]string{}
		}
		session.Data[key] = value
		return tx.Sessions().UpdateSessionData(ctx, session.ID, session.Data)
	})
}

// GetExtension reads a per-session value. ok is false when the key was never set.
func (s *SessionService) GetExtension(ctx context.Context, token, key string) (string, bool, error) {
	session, err := s.lookup(ctx, token)
	if err != nil {
		return "", false, err
	}
	value, ok := session.Data[key]
	return value, ok, nil
}

func (s *SessionService) lookup(ctx context.Context, token string) (domain.Session, error) {
	return lookupIn(ctx, s.Store, token)
}

func lookupIn(ctx context.Context, st store.Store, token string) (domain.Session, error) {
	if token == "" {
		return domain.Session{}, ErrInvalidSession
	}

	session, err := st.Sessions().GetSessionByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, ErrInvalidSession
		}
		return domain.Session{}, err
	}

	if session.Expired(time.Now().UTC()) {
		// Lazy transition to expired; the row is gone from here on.
		_ = st.Sessions().DeleteSessionByTokenHash(ctx, session.TokenHash)
		return domain.Session{}, ErrInvalidSession
	}

	return session, nil
}
