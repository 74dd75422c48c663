package incubator_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/PadsterH2012/Idea-Incubator/pkg/incubatorsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for incubator service end-to-end
 * tests. This includes container setup, account helpers, and assertions.
 */

const (
	testImageName = "incubator-test:latest"

	testSecretKey = "e2e-test-secret-key-0123456789abcdef"
)

// TestMain builds the Docker image once before all tests and cleans it up
// after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Incubator Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Incubator Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/incubator/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run()
}

// setupContainer starts the incubator service with relaxed rate limits so
// rapid test requests don't trip the production thresholds.
func setupContainer(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, map[string]string{
		"INCUBATOR_DATABASE_FILE": "/incubator.db",
		"INCUBATOR_PEPPER_FILE":   "/pepper",
		"INCUBATOR_SECRET_KEY":    testSecretKey,
		"ENV":                     "test",
		"LOG_LEVEL":               "info",
		"LOG_FORMAT":              "json",

		"RATELIMIT_STRICT_REQUESTS":   "1000",
		"RATELIMIT_STRICT_WINDOW_SEC": "60",
		"RATELIMIT_STRICT_BURST":      "1000",
		"RATELIMIT_MODERATE_REQUESTS": "1000",
		"RATELIMIT_MODERATE_BURST":    "1000",
		"RATELIMIT_LENIENT_REQUESTS":  "5000",
		"RATELIMIT_LENIENT_BURST":     "5000",
	})
}

// setupContainerWithDefaultRateLimits starts the service with PRODUCTION rate
// limits, specifically for testing that rate limiting works.
func setupContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, map[string]string{
		"INCUBATOR_DATABASE_FILE": "/incubator.db",
		"INCUBATOR_PEPPER_FILE":   "/pepper",
		"INCUBATOR_SECRET_KEY":    testSecretKey,
		"ENV":                     "test",
		"LOG_LEVEL":               "info",
		"LOG_FORMAT":              "json",
	})
}

// setupContainerWithShortSessions starts the service with a very short session
// lifetime, for expiry testing.
func setupContainerWithShortSessions(t *testing.T, lifetime time.Duration) (string, func()) {
	t.Helper()
	return startContainer(t, map[string]string{
		"INCUBATOR_DATABASE_FILE":    "/incubator.db",
		"INCUBATOR_PEPPER_FILE":      "/pepper",
		"INCUBATOR_SECRET_KEY":       testSecretKey,
		"INCUBATOR_SESSION_LIFETIME": lifetime.String(),
		"ENV":                        "test",
		"LOG_LEVEL":                  "info",
		"LOG_FORMAT":                 "json",

		"RATELIMIT_STRICT_REQUESTS": "1000",
		"RATELIMIT_STRICT_BURST":    "1000",
	})
}

func startContainer(t *testing.T, env map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// registerAndLogin creates an account and returns an authenticated session.
func registerAndLogin(t *testing.T, client *incubatorsdk.SDKClient, username, password string) *incubatorsdk.Session {
	t.Helper()
	ctx := context.Background()

	_, err := client.Register(ctx, username, username+"@example.com", password)
	require.NoError(t, err, "Register should succeed")

	session, err := client.Login(ctx, username, password)
	require.NoError(t, err, "Login should succeed")
	require.NotNil(t, session)

	return session
}

// assertAPIStatus checks that an error is an *APIError with the given status.
func assertAPIStatus(t *testing.T, err error, status int, context string) {
	t.Helper()
	require.Error(t, err, context)

	apiErr, ok := err.(*incubatorsdk.APIError)
	require.True(t, ok, "%s - expected *APIError, got: %v", context, err)
	require.Equal(t, status, apiErr.StatusCode, context)
}
