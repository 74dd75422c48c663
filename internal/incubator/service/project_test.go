package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProjectCRUD(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ProjectService{Store: st}
	userID := createTestUser(t, st, "alice")

	project, err := svc.Create(ctx, userID, "Rocket", "Reusable launch vehicle")
	require.NoError(t, err)
	require.False(t, project.ID.IsZero())
	require.Equal(t, userID, project.UserID)

	t.Run("get", func(t *testing.T) {
		got, err := svc.Get(ctx, userID, project.ID)
		require.NoError(t, err)
		require.Equal(t, "Rocket", got.Name)
		require.Equal(t, "Reusable launch vehicle", got.Description)
	})

	t.Run("list", func(t *testing.T) {
		_, err := svc.Create(ctx, userID, "Submarine", "")
		require.NoError(t, err)

		projects, err := svc.List(ctx, userID)
		require.NoError(t, err)
		require.Len(t, projects, 2)
	})

	t.Run("update", func(t *testing.T) {
		updated, err := svc.Update(ctx, userID, project.ID, "Rocket v2", "Now with landing legs")
		require.NoError(t, err)
		require.Equal(t, "Rocket v2", updated.Name)
		require.Equal(t, "Now with landing legs", updated.Description)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, userID, project.ID))

		_, err := svc.Get(ctx, userID, project.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestProjectValidation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ProjectService{Store: st}
	userID := createTestUser(t, st, "bob")

	t.Run("missing name", func(t *testing.T) {
		_, err := svc.Create(ctx, userID, "   ", "description")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("oversized name", func(t *testing.T) {
		_, err := svc.Create(ctx, userID, strings.Repeat("x", 101), "")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("empty description allowed", func(t *testing.T) {
		_, err := svc.Create(ctx, userID, "Minimal", "")
		require.NoError(t, err)
	})
}

func TestProjectOwnershipScoping(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ProjectService{Store: st}

	ownerID := createTestUser(t, st, "owner")
	otherID := createTestUser(t, st, "other")

	project, err := svc.Create(ctx, ownerID, "Secret plans", "")
	require.NoError(t, err)

	// Another user's existing project and a nonexistent project produce the
	// exact same error.
	t.Run("get", func(t *testing.T) {
		_, err := svc.Get(ctx, otherID, project.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update", func(t *testing.T) {
		_, err := svc.Update(ctx, otherID, project.ID, "Hijacked", "")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		err := svc.Delete(ctx, otherID, project.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list excludes foreign projects", func(t *testing.T) {
		projects, err := svc.List(ctx, otherID)
		require.NoError(t, err)
		require.Empty(t, projects)
	})

	t.Run("owner unaffected", func(t *testing.T) {
		got, err := svc.Get(ctx, ownerID, project.ID)
		require.NoError(t, err)
		require.Equal(t, "Secret plans", got.Name)
	})
}
