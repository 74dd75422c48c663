package incubatorsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the Idea Incubator service. It provides access to
// unauthenticated operations and creates authenticated Sessions via Login.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates a new user account.
func (c *SDKClient) Register(ctx context.Context, username, email, password string) (*RegisterResponse, error) {
	body := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}

	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/register", body, "")
	if err != nil {
		return nil, err
	}

	var out RegisterResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login verifies credentials and returns an authenticated Session carrying the
// session cookie.
func (c *SDKClient) Login(ctx context.Context, username, password string) (*Session, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}

	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/login", body, "")
	if err != nil {
		return nil, err
	}

	var out LoginResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	cookie := sessionCookie(resp)
	if cookie == "" {
		return nil, fmt.Errorf("login response carried no session cookie")
	}

	return &Session{client: c, cookie: cookie}, nil
}

// Livez checks process liveness.
func (c *SDKClient) Livez(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// Readyz checks service readiness including database connectivity.
func (c *SDKClient) Readyz(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *SDKClient) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}

	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// doJSON performs a request with an optional JSON body and optional session
// cookie. The Accept header always asks for JSON so guarded endpoints answer
// 401 instead of redirecting.
func (c *SDKClient) doJSON(ctx context.Context, method, path string, body any, cookie string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// sessionCookie extracts the session cookie pair from a response.
func sessionCookie(resp *http.Response) string {
	for _, ck := range resp.Cookies() {
		if ck.Name == "session" && ck.Value != "" {
			return ck.Name + "=" + ck.Value
		}
	}
	return ""
}

// decodeJSON decodes a JSON response into target, returning a typed *APIError
// when the status does not match.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
