package store

import (
	"context"
	"errors"
	"time"

	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/domain"
	"github.com/PadsterH2012/Idea-Incubator/pkg/idx"
)

var (
	ErrNotFound = errors.New("store: not found")
	// ErrAlreadyExists reports a uniqueness violation (username, email, ...).
	// The constraint lives in the database so concurrent writers race safely.
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement this.
// It exposes sub-repositories to keep concerns tidy and testable.
type Store interface {
	Users() Users
	Sessions() Sessions
	Projects() Projects
	ProviderSettings() ProviderSettings
	RolePrompts() RolePrompts

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns nil
	// and rolling back otherwise. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is alive. The startup readiness
	// loop and the readyz probe both use it.
	Ping(ctx context.Context) error
}

// Tx is a transactional store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a user. Returns ErrAlreadyExists when the username
	// or email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id idx.ID) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// UpdateProfile changes username and email. Returns ErrAlreadyExists on a
	// uniqueness violation and ErrNotFound when the user id is absent.
	UpdateProfile(ctx context.Context, id idx.ID, username, email string) error
}

type Sessions interface {
	CreateSession(ctx context.Context, s domain.Session) error
	GetSessionByTokenHash(ctx context.Context, tokenHash string) (domain.Session, error)

	// UpdateSessionData replaces the session's extension k/v map.
	UpdateSessionData(ctx context.Context, id idx.ID, data map[string]string) error

	// DeleteSessionByTokenHash removes a session. Deleting an absent session
	// is a no-op, not an error; logout is idempotent.
	DeleteSessionByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteExpiredSessions purges sessions whose expiry is at or before now.
	DeleteExpiredSessions(ctx context.Context, now time.Time) error
}

type Projects interface {
	CreateProject(ctx context.Context, p domain.Project) error

	// GetProjectForUser returns ErrNotFound both when the project does not
	// exist and when it belongs to someone else.
	GetProjectForUser(ctx context.Context, id, userID idx.ID) (domain.Project, error)

	ListProjectsByUser(ctx context.Context, userID idx.ID) ([]domain.Project, error)

	// UpdateProjectForUser updates name/description of an owned project.
	// ErrNotFound for absent or foreign projects.
	UpdateProjectForUser(ctx context.Context, p domain.Project) error

	// DeleteProjectForUser removes an owned project. ErrNotFound for absent
	// or foreign projects.
	DeleteProjectForUser(ctx context.Context, id, userID idx.ID) error
}

type ProviderSettings interface {
	// UpsertProviderSettings inserts or replaces the user's single settings row.
	UpsertProviderSettings(ctx context.Context, ps domain.ProviderSettings) error

	GetProviderSettingsByUser(ctx context.Context, userID idx.ID) (domain.ProviderSettings, error)
}

type RolePrompts interface {
	// UpsertRolePrompt inserts or replaces the user's override for one role.
	UpsertRolePrompt(ctx context.Context, rp domain.RolePromptOverride) error

	ListRolePromptsByUser(ctx context.Context, userID idx.ID) ([]domain.RolePromptOverride, error)
}
