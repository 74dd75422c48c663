package incubator_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/PadsterH2012/Idea-Incubator/pkg/incubatorsdk"
	"github.com/stretchr/testify/require"
)

func TestAppSettingsTheme(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := incubatorsdk.NewSDKClient(baseURL)
	session := registerAndLogin(t, client, "alice", "Password123!")

	settings, err := session.AppSettings(ctx)
	require.NoError(t, err)
	require.Equal(t, "light", settings.Theme)

	updated, err := session.UpdateAppSettings(ctx, incubatorsdk.AppSettings{Theme: "dark"})
	require.NoError(t, err)
	require.Equal(t, "dark", updated.Theme)

	settings, err = session.AppSettings(ctx)
	require.NoError(t, err)
	require.Equal(t, "dark", settings.Theme)

	t.Run("invalid theme rejected", func(t *testing.T) {
		_, err := session.UpdateAppSettings(ctx, incubatorsdk.AppSettings{Theme: "neon"})
		assertAPIStatus(t, err, http.StatusBadRequest, "Unknown theme")
	})

	t.Run("theme is session scoped", func(t *testing.T) {
		other, err := client.Login(ctx, "alice", "Password123!")
		require.NoError(t, err)

		settings, err := other.AppSettings(ctx)
		require.NoError(t, err)
		require.Equal(t, "light", settings.Theme, "A fresh session starts from the default theme")
	})
}

func TestProviderSettings(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := incubatorsdk.NewSDKClient(baseURL)
	session := registerAndLogin(t, client, "bob", "Password123!")

	_, err := session.ProviderSettings(ctx)
	assertAPIStatus(t, err, http.StatusNotFound, "No settings before first save")

	saved, err := session.SaveProviderSettings(ctx, incubatorsdk.ProviderSettingsRequest{
		ProviderName: "Ollama",
		OllamaURL:    "http://ollama:11434",
		Models:       []string{"llama3"},
	})
	require.NoError(t, err)
	require.Equal(t, "Ollama", saved.ProviderName)
	require.Contains(t, saved.Providers, "Ollama")

	got, err := session.ProviderSettings(ctx)
	require.NoError(t, err)
	require.Equal(t, "http://ollama:11434", got.OllamaURL)
	require.Equal(t, []string{"llama3"}, got.Models)
}

func TestRolePrompts(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := incubatorsdk.NewSDKClient(baseURL)
	session := registerAndLogin(t, client, "carol", "Password123!")

	prompts, err := session.RolePrompts(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, prompts.Roles)
	for _, rp := range prompts.Roles {
		require.False(t, rp.Custom)
		require.NotEmpty(t, rp.Prompt)
	}

	role := prompts.Roles[0].Role
	err = session.SaveRolePrompt(ctx, role, incubatorsdk.UpdateRolePromptRequest{
		Prompt:      "You are a merciless critic.",
		Temperature: 1.1,
	})
	require.NoError(t, err)

	prompts, err = session.RolePrompts(ctx)
	require.NoError(t, err)
	for _, rp := range prompts.Roles {
		if rp.Role == role {
			require.True(t, rp.Custom)
			require.Equal(t, "You are a merciless critic.", rp.Prompt)
			require.InDelta(t, 1.1, rp.Temperature, 1e-9)
		} else {
			require.False(t, rp.Custom)
		}
	}

	t.Run("unknown role rejected", func(t *testing.T) {
		err := session.SaveRolePrompt(ctx, "astrologer", incubatorsdk.UpdateRolePromptRequest{
			Prompt:      "prompt",
			Temperature: 0.7,
		})
		assertAPIStatus(t, err, http.StatusBadRequest, "Unknown role")
	})
}

func TestProfileUpdate(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := incubatorsdk.NewSDKClient(baseURL)
	session := registerAndLogin(t, client, "dave", "Password123!")

	t.Run("wrong current password", func(t *testing.T) {
		err := session.UpdateProfile(ctx, incubatorsdk.UpdateProfileRequest{
			Username:        "david",
			Email:           "dave@example.com",
			CurrentPassword: "wrong",
		})
		assertAPIStatus(t, err, http.StatusUnauthorized, "Wrong current password")
	})

	t.Run("success", func(t *testing.T) {
		err := session.UpdateProfile(ctx, incubatorsdk.UpdateProfileRequest{
			Username:        "david",
			Email:           "david@example.com",
			CurrentPassword: "Password123!",
		})
		require.NoError(t, err)

		profile, err := session.Profile(ctx)
		require.NoError(t, err)
		require.Equal(t, "david", profile.Username)
		require.Equal(t, "david@example.com", profile.Email)
	})
}
