package remote

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aura-ide/aura/internal/domain"
)

// RequestError is an HTTP-level failure (status >= 400)
type RequestError struct {
	Message    string
	StatusCode int
}

func (e *RequestError) Error() string {
	if e == nil {
		return ""
	}
	message := strings.TrimSpace(e.Message)
	if message != "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, message)
	}
	return fmt.Sprintf("http %d", e.StatusCode)
}

// RemoteError is an explicit error payload returned with a successful status
type RemoteError struct {
	Message   string
	Operation string
}

func (e *RemoteError) Error() string {
	if e.Operation == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return domain.ErrRemoteReported
}

// newRequestError extracts the service's "detail" field when present
func newRequestError(status int, payload []byte) *RequestError {
	var detail struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(payload, &detail); err == nil && detail.Detail != nil {
		switch d := detail.Detail.(type) {
		case string:
			return &RequestError{StatusCode: status, Message: d}
		default:
			if encoded, err := json.Marshal(d); err == nil {
				return &RequestError{StatusCode: status, Message: string(encoded)}
			}
		}
	}
	return &RequestError{StatusCode: status, Message: strings.TrimSpace(string(payload))}
}
