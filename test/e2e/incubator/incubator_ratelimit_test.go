package incubator_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/PadsterH2012/Idea-Incubator/pkg/incubatorsdk"
	"github.com/stretchr/testify/require"
)

// TestLoginRateLimiting verifies the strict limit on credential endpoints
// kicks in under repeated failures. Uses production rate limits.
func TestLoginRateLimiting(t *testing.T) {
	baseURL, cleanup := setupContainerWithDefaultRateLimits(t)
	defer cleanup()

	ctx := context.Background()
	client := incubatorsdk.NewSDKClient(baseURL)

	_, err := client.Register(ctx, "victim", "victim@example.com", "Password123!")
	require.NoError(t, err)

	// Hammer login with bad credentials until the limiter answers instead of
	// the credential check.
	var limited bool
	for i := 0; i < 20; i++ {
		_, err := client.Login(ctx, "victim", "wrong-password")
		require.Error(t, err)

		if apiErr, ok := err.(*incubatorsdk.APIError); ok && apiErr.StatusCode == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	require.True(t, limited, "Repeated login failures should eventually hit the rate limit")

	// The right credentials are limited too; the limiter keys on IP+username,
	// not on the outcome.
	_, err = client.Login(ctx, "victim", "Password123!")
	assertAPIStatus(t, err, http.StatusTooManyRequests, "Limit applies regardless of password correctness")
}
