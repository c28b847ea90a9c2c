package adapter

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "message field", body: `{"message": "boom"}`, want: "boom"},
		{name: "error string", body: `{"error": "nope"}`, want: "nope"},
		{name: "nested error", body: `{"error": {"message": "deep"}}`, want: "deep"},
		{name: "message wins", body: `{"error": "second", "message": "first"}`, want: "first"},
		{name: "json without message", body: `{"code": 12}`, want: ""},
		{name: "plain text", body: "rate limit exceeded\n", want: "rate limit exceeded"},
		{name: "html page", body: "<html><body>Bad Gateway</body></html>", want: ""},
		{name: "empty", body: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractMessage([]byte(tt.body)))
		})
	}
}

func TestSentinelForStatus(t *testing.T) {
	tests := map[int]error{
		http.StatusBadRequest:          ErrBadRequest,
		http.StatusUnauthorized:        ErrUnauthorized,
		http.StatusForbidden:           ErrForbidden,
		http.StatusNotFound:            ErrNotFound,
		http.StatusConflict:            ErrConflict,
		http.StatusTooManyRequests:     ErrTooManyRequests,
		http.StatusInternalServerError: ErrInternalServerError,
		http.StatusBadGateway:          ErrBadGateway,
		http.StatusServiceUnavailable:  ErrServiceUnavailable,
		http.StatusTeapot:              ErrUnexpectedStatus,
	}

	for status, want := range tests {
		assert.ErrorIs(t, sentinelForStatus(status), want, http.StatusText(status))
	}
}

func TestRemoteError_Error(t *testing.T) {
	withMessage := &RemoteError{StatusCode: http.StatusBadGateway, Message: "upstream down", Err: ErrBadGateway}
	assert.Equal(t, "upstream down", withMessage.Error())

	bare := &RemoteError{StatusCode: http.StatusBadGateway, Err: ErrBadGateway}
	assert.Equal(t, "http 502: Bad Gateway", bare.Error())
	assert.ErrorIs(t, bare, ErrBadGateway)
}
