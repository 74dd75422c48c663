package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/store"
)

var errMigrateInTx = errors.New("sqlite: migrations cannot run inside a transaction")

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op; the caller commits or rolls back and the outer DB stays open.
func (t *txStore) Close() error { return nil }

// Ping is a no-op for transactions; the connection already exists.
func (t *txStore) Ping(ctx context.Context) error { return nil }

// ApplyMigrations is not supported inside a transaction.
func (t *txStore) ApplyMigrations() error { return errMigrateInTx }

// Nested transactions are not supported; hand back the same scope.
func (t *txStore) Tx(ctx context.Context) (store.Tx, error) { return t, nil }

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return fn(t)
}

func (t *txStore) Users() store.Users                       { return &usersRepo{q: t.tx} }
func (t *txStore) Sessions() store.Sessions                 { return &sessionsRepo{q: t.tx} }
func (t *txStore) Projects() store.Projects                 { return &projectsRepo{q: t.tx} }
func (t *txStore) ProviderSettings() store.ProviderSettings { return &providerSettingsRepo{q: t.tx} }
func (t *txStore) RolePrompts() store.RolePrompts           { return &rolePromptsRepo{q: t.tx} }
