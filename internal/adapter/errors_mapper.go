package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// maxPlainMessage bounds how much of a non-JSON body is surfaced as a
// message.
const maxPlainMessage = 200

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &RemoteError{
		StatusCode: resp.StatusCode(),
		Message:    extractMessage(resp.Body()),
		Err:        sentinelForStatus(resp.StatusCode()),
	}
}

func sentinelForStatus(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusTooManyRequests:
		return ErrTooManyRequests
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	default:
		return ErrUnexpectedStatus
	}
}

// extractMessage reads "message", then "error" (string or {"message": ...})
// from a JSON body. Short plain-text bodies are returned as-is.
func extractMessage(body []byte) string {
	if gjson.ValidBytes(body) {
		for _, path := range []string{"message", "error.message", "error"} {
			if v := gjson.GetBytes(body, path); v.Type == gjson.String && v.Str != "" {
				return v.Str
			}
		}
		return ""
	}

	text := strings.TrimSpace(string(body))
	if len(text) > maxPlainMessage || strings.HasPrefix(text, "<") {
		return ""
	}
	return text
}
