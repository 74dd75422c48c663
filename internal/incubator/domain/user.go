package domain

import (
	"time"

	"github.com/PadsterH2012/Idea-Incubator/pkg/idx"
)

// Field length limits enforced at registration and profile update.
const (
	MaxUsernameLength = 50
	MaxEmailLength    = 120
)

type User struct {
	ID           idx.ID
	Username     string // unique, 1..50 chars
	Email        string // unique
	PasswordHash string // argon2id encoded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
