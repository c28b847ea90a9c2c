// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/intern-match/internal/config"
	"github.com/MKhiriev/intern-match/internal/logger"
	"github.com/MKhiriev/intern-match/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an httpRemoteAdapter pointed at serverURL.
func newTestAdapter(t *testing.T, serverURL string) *httpRemoteAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}
	appCfg := config.ClientApp{Token: "test-token"}

	a, err := NewHTTPRemoteAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpRemoteAdapter)
}

func writeBody(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNewHTTPRemoteAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPRemoteAdapter(config.ClientAdapter{HTTPAddress: "  "}, config.ClientApp{}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://api.example.com/", want: "https://api.example.com"},
		{in: " http://127.0.0.1:9000 ", want: "http://127.0.0.1:9000"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetToken_TrimsWhitespace(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1")
	a.SetToken("  abc  ")
	assert.Equal(t, "abc", a.Token())
}

// ── FetchNotifications ───────────────────────────────────────────────────────

func TestFetchNotifications_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/notifications", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		id, err := uuid.Parse(r.Header.Get(RequestIDHeader))
		assert.NoError(t, err)
		assert.Equal(t, uuid.Version(7), id.Version())

		writeBody(w, http.StatusOK, `{
			"notifications": [
				{"id": "n1", "type": "message", "title": "Hi", "message": "Hello", "timestamp": "2026-01-02T10:00:00Z", "read": false, "priority": "high"},
				{"id": "n2", "type": "system", "title": "Up", "message": "Maintenance", "timestamp": "2026-01-01T10:00:00Z", "read": true, "priority": "low"}
			],
			"unreadCount": 7
		}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	page, err := a.FetchNotifications(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "n1", page.Items[0].ID)
	assert.False(t, page.Items[0].Read)
	assert.Equal(t, 7, page.UnreadCount)
}

func TestFetchNotifications_ReusesRequestIDFromContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-42", r.Header.Get(RequestIDHeader))
		writeBody(w, http.StatusOK, `{"notifications": [], "unreadCount": 0}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.WithValue(context.Background(), utils.RequestIDCtxKey, "req-42")
	_, err := a.FetchNotifications(ctx, 0)

	require.NoError(t, err)
}

func TestFetchNotifications_NoLimit_EmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("limit"))
		writeBody(w, http.StatusOK, `{"unreadCount": 0}`)
	}))
	defer srv.Close()

	page, err := newTestAdapter(t, srv.URL).FetchNotifications(context.Background(), 0)

	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestFetchNotifications_RemoteErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusServiceUnavailable, `{"message": "Notifications are temporarily unavailable"}`)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).FetchNotifications(context.Background(), 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceUnavailable)

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusServiceUnavailable, remoteErr.StatusCode)
	assert.Equal(t, "Notifications are temporarily unavailable", remoteErr.Message)
}

func TestFetchNotifications_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, `{"notifications": "oops"}`)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).FetchNotifications(context.Background(), 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestFetchNotifications_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).FetchNotifications(context.Background(), 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestFetchNotifications_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, `{"notifications": []}`)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL).FetchNotifications(ctx, 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

// ── acknowledgements ─────────────────────────────────────────────────────────

func TestMarkNotificationRead_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/notifications/n1/read", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).MarkNotificationRead(context.Background(), "n1")
	assert.NoError(t, err)
}

func TestMarkNotificationRead_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusNotFound, `{"error": "notification not found"}`)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).MarkNotificationRead(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "notification not found")
}

func TestMarkAllNotificationsRead_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/notifications/read-all", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	assert.NoError(t, newTestAdapter(t, srv.URL).MarkAllNotificationsRead(context.Background()))
}

func TestClearNotifications(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/notifications", r.URL.Path)
		writeBody(w, http.StatusUnauthorized, `{"message": "token expired"}`)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).ClearNotifications(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── dashboard collections ────────────────────────────────────────────────────

func TestFetchApplications(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/applications", r.URL.Path)
		writeBody(w, http.StatusOK, `[{"id": "a1", "internshipId": "i1", "status": "reviewing"}]`)
	}))
	defer srv.Close()

	apps, err := newTestAdapter(t, srv.URL).FetchApplications(context.Background())

	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "i1", apps[0].InternshipID)
}

func TestFetchInternships_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, `[]`)
	}))
	defer srv.Close()

	items, err := newTestAdapter(t, srv.URL).FetchInternships(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestFetchInternship(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/internships/i1":
			writeBody(w, http.StatusOK, `{"id": "i1", "title": "Backend Intern"}`)
		default:
			writeBody(w, http.StatusNotFound, `{"message": "internship not found"}`)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	item, err := a.FetchInternship(context.Background(), "i1")
	require.NoError(t, err)
	assert.Equal(t, "Backend Intern", item.Title)

	_, err = a.FetchInternship(context.Background(), "i2")
	assert.True(t, errors.Is(err, ErrNotFound))
}
