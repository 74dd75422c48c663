package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/domain"
	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/store"
	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/store/drivers/sqlite"
	"github.com/PadsterH2012/Idea-Incubator/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// createTestUser inserts a user row directly, for tests that don't exercise
// registration itself.
func createTestUser(t *testing.T, st store.Store, username string) idx.ID {
	t.Helper()

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "unused",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), user))
	return user.ID
}

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()

	st := newTestStore(t)
	return &AuthService{
		Store:    st,
		Sessions: &SessionService{Store: st},
	}
}

func TestRegisterLoginLogoutFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t)

	userID, err := svc.Register(ctx, "alice", "alice@example.com", "s3cret-password")
	require.NoError(t, err)
	require.False(t, userID.IsZero())

	token, err := svc.Login(ctx, "alice", "s3cret-password")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	authorizedID, err := svc.Authorize(ctx, token)
	require.NoError(t, err)
	require.Equal(t, userID, authorizedID)

	require.NoError(t, svc.Logout(ctx, token))

	_, err = svc.Authorize(ctx, token)
	require.ErrorIs(t, err, ErrUnauthorized)

	// Logging out again is a no-op.
	require.NoError(t, svc.Logout(ctx, token))
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t)

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Register(ctx, "", "a@example.com", "pw")
		require.ErrorIs(t, err, ErrValidation)

		_, err = svc.Register(ctx, "bob", "", "pw")
		require.ErrorIs(t, err, ErrValidation)

		_, err = svc.Register(ctx, "bob", "b@example.com", "")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("email without at sign", func(t *testing.T) {
		_, err := svc.Register(ctx, "bob", "not-an-email", "pw")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("oversized username", func(t *testing.T) {
		long := make([]byte, 51)
		for i := range long {
			long[i] = 'x'
		}
		_, err := svc.Register(ctx, string(long), "b@example.com", "pw")
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestRegisterDuplicateConflicts(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t)

	_, err := svc.Register(ctx, "carol", "carol@example.com", "pw")
	require.NoError(t, err)

	t.Run("same username", func(t *testing.T) {
		_, err := svc.Register(ctx, "carol", "other@example.com", "pw")
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("same email", func(t *testing.T) {
		_, err := svc.Register(ctx, "other", "carol@example.com", "pw")
		require.ErrorIs(t, err, ErrConflict)
	})
}

// TestConcurrentRegisterRace races two registrations for the same username.
// The store's unique constraint decides the winner. A :memory: store gives
// every pool connection a private database, so this test uses a shared file.
func TestConcurrentRegisterRace(t *testing.T) {
	ctx := context.Background()

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
		filepath.Join(t.TempDir(), "incubator.db"))
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	svc := &AuthService{Store: st, Sessions: &SessionService{Store: st}}

	start := make(chan struct{})
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		email := fmt.Sprintf("henry%d@example.com", i)
		go func() {
			<-start
			_, err := svc.Register(ctx, "henry", email, "pw-henry")
			results <- err
		}()
	}
	close(start)

	var succeeded, conflicted int
	for i := 0; i < 2; i++ {
		switch err := <-results; {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrConflict):
			conflicted++
		default:
			t.Fatalf("unexpected register error: %v", err)
		}
	}
	require.Equal(t, 1, succeeded)
	require.Equal(t, 1, conflicted)

	// Exactly one row exists and the winner can log in.
	user, err := st.Users().GetUserByUsername(ctx, "henry")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "henry", "pw-henry")
	require.NoError(t, err)
	id, err := svc.Authorize(ctx, token)
	require.NoError(t, err)
	require.Equal(t, user.ID, id)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t)

	_, err := svc.Register(ctx, "dave", "dave@example.com", "correct-password")
	require.NoError(t, err)

	_, unknownErr := svc.Login(ctx, "nobody", "whatever")
	_, wrongErr := svc.Login(ctx, "dave", "wrong-password")

	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	require.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestConcurrentSessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t)

	userID, err := svc.Register(ctx, "erin", "erin@example.com", "pw-erin")
	require.NoError(t, err)

	first, err := svc.Login(ctx, "erin", "pw-erin")
	require.NoError(t, err)
	second, err := svc.Login(ctx, "erin", "pw-erin")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	require.NoError(t, svc.Logout(ctx, first))

	// The surviving session still resolves to the same user.
	id, err := svc.Authorize(ctx, second)
	require.NoError(t, err)
	require.Equal(t, userID, id)

	_, err = svc.Authorize(ctx, first)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t)

	userID, err := svc.Register(ctx, "frank", "frank@example.com", "pw-frank")
	require.NoError(t, err)

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.UpdateProfile(ctx, userID, "franklin", "frank@example.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("success", func(t *testing.T) {
		require.NoError(t, svc.UpdateProfile(ctx, userID, "franklin", "franklin@example.com", "pw-frank"))

		user, err := svc.GetUser(ctx, userID)
		require.NoError(t, err)
		require.Equal(t, "franklin", user.Username)
		require.Equal(t, "franklin@example.com", user.Email)
	})

	t.Run("conflict with another user", func(t *testing.T) {
		_, err := svc.Register(ctx, "grace", "grace@example.com", "pw-grace")
		require.NoError(t, err)

		err = svc.UpdateProfile(ctx, userID, "grace", "franklin@example.com", "pw-frank")
		require.ErrorIs(t, err, ErrConflict)
	})
}
