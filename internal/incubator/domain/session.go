package domain

import (
	"time"

	"github.com/PadsterH2012/Idea-Incubator/pkg/idx"
)

// Session is a server-side authenticated session. The opaque token handed to
// the client is never stored; only its SHA-256 fingerprint is.
//
// Expiry is a fixed window from creation and is never extended by activity.
type Session struct {
	ID        idx.ID
	UserID    idx.ID
	TokenHash string
	Data      map[string]string // small per-session k/v, e.g. UI theme
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its fixed expiry window.
// A session is invalid from the expiry instant onward (now >= ExpiresAt).
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
