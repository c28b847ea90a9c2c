package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/intern-match/internal/config"
	"github.com/MKhiriev/intern-match/internal/logger"
	"github.com/MKhiriev/intern-match/internal/utils"
	"github.com/MKhiriev/intern-match/models"
	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries the per-request trace identifier.
const RequestIDHeader = "X-Request-ID"

type httpRemoteAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRemoteAdapter constructs the HTTP/JSON implementation of
// [RemoteSource]. It normalises the base URL from adapterCfg.HTTPAddress,
// applies the request timeout and seeds the bearer token from appCfg.Token.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPRemoteAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, log *logger.Logger) (RemoteSource, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpRemoteAdapter{
		client: utils.NewHTTPClient(),
		ids:    utils.NewUUIDGenerator(),
		logger: log.WithComponent("adapter:http"),
	}
	a.client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json").
		OnAfterResponse(a.logResponse)
	a.SetToken(appCfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [RemoteSource].
func (h *httpRemoteAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [RemoteSource].
func (h *httpRemoteAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// FetchNotifications implements [NotificationSource]. It GETs
// /api/notifications?limit=N and decodes {"notifications": [...],
// "unreadCount": n}.
func (h *httpRemoteAdapter) FetchNotifications(ctx context.Context, limit int) (models.NotificationPage, error) {
	req := h.authedRequest(ctx)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	var page models.NotificationPage
	if err := h.getJSON(req, "/api/notifications", &page); err != nil {
		return models.NotificationPage{}, fmt.Errorf("fetch notifications: %w", err)
	}
	if page.Items == nil {
		page.Items = []models.NotificationItem{}
	}

	return page, nil
}

// MarkNotificationRead implements [NotificationSource] via
// PATCH /api/notifications/{id}/read.
func (h *httpRemoteAdapter) MarkNotificationRead(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Patch("/api/notifications/{id}/read")
	if err != nil {
		return fmt.Errorf("mark notification read: %w: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// MarkAllNotificationsRead implements [NotificationSource] via
// PATCH /api/notifications/read-all.
func (h *httpRemoteAdapter) MarkAllNotificationsRead(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Patch("/api/notifications/read-all")
	if err != nil {
		return fmt.Errorf("mark all notifications read: %w: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// ClearNotifications implements [NotificationSource] via
// DELETE /api/notifications.
func (h *httpRemoteAdapter) ClearNotifications(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/api/notifications")
	if err != nil {
		return fmt.Errorf("clear notifications: %w: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// FetchApplications implements [DashboardSource] via GET /api/applications.
func (h *httpRemoteAdapter) FetchApplications(ctx context.Context) ([]models.Application, error) {
	items := []models.Application{}
	if err := h.getJSON(h.authedRequest(ctx), "/api/applications", &items); err != nil {
		return nil, fmt.Errorf("fetch applications: %w", err)
	}
	return items, nil
}

// FetchInternships implements [DashboardSource] via GET /api/internships.
func (h *httpRemoteAdapter) FetchInternships(ctx context.Context) ([]models.Internship, error) {
	items := []models.Internship{}
	if err := h.getJSON(h.authedRequest(ctx), "/api/internships", &items); err != nil {
		return nil, fmt.Errorf("fetch internships: %w", err)
	}
	return items, nil
}

// FetchInternship implements [DashboardSource] via GET /api/internships/{id}.
func (h *httpRemoteAdapter) FetchInternship(ctx context.Context, id string) (models.Internship, error) {
	var item models.Internship
	if err := h.getJSON(h.authedRequest(ctx).SetPathParam("id", id), "/api/internships/{id}", &item); err != nil {
		return models.Internship{}, fmt.Errorf("fetch internship %s: %w", id, err)
	}
	return item, nil
}

func (h *httpRemoteAdapter) getJSON(req *resty.Request, path string, dst any) error {
	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

// authedRequest reuses a request ID carried by ctx so that a chain of calls
// can be correlated; otherwise each request gets a new one.
func (h *httpRemoteAdapter) authedRequest(ctx context.Context) *resty.Request {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.ids.Generate()
	}
	req := h.client.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, requestID)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpRemoteAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("func", "httpRemoteAdapter.logResponse").
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Str("request_id", resp.Request.Header.Get(RequestIDHeader)).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("remote call finished")
	return nil
}
