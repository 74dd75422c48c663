package incubatorsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError represents a non-2xx response from the service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// parseErrorResponse turns an error response into a typed *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var msg MessageResponse
	if err := json.Unmarshal(body, &msg); err == nil && msg.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: msg.Message}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
}
