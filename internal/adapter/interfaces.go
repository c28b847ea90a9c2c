// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// remote data source of the internship-matching platform.
//
// [NotificationSource] and [DashboardSource] decouple the sync layer from the
// protocol; [NewHTTPRemoteAdapter] is the HTTP/JSON implementation.
//
// Failures are classified so callers can react without knowing the
// transport: non-2xx responses become a [*RemoteError] that unwraps to a
// sentinel such as [ErrNotFound] or [ErrUnauthorized], network failures wrap
// [ErrTransport], and undecodable bodies wrap [ErrDecode].
package adapter

import (
	"context"

	"github.com/MKhiriev/intern-match/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_source_mock.go -package=mock

// NotificationSource is the remote side of the notification feed.
type NotificationSource interface {
	// FetchNotifications returns the newest page of at most limit
	// notifications together with the server-side unread count. A limit of
	// zero lets the server pick its default page size.
	FetchNotifications(ctx context.Context, limit int) (models.NotificationPage, error)

	// MarkNotificationRead acknowledges a single notification.
	MarkNotificationRead(ctx context.Context, id string) error

	// MarkAllNotificationsRead acknowledges every notification of the
	// authenticated user.
	MarkAllNotificationsRead(ctx context.Context) error

	// ClearNotifications deletes every notification of the authenticated
	// user.
	ClearNotifications(ctx context.Context) error
}

// DashboardSource serves the read-only collections shown on the dashboard.
type DashboardSource interface {
	FetchApplications(ctx context.Context) ([]models.Application, error)
	FetchInternships(ctx context.Context) ([]models.Internship, error)
	FetchInternship(ctx context.Context, id string) (models.Internship, error)
}

// RemoteSource is the full remote data source used by the client.
type RemoteSource interface {
	NotificationSource
	DashboardSource

	// SetToken stores the bearer token attached to every subsequent request.
	SetToken(token string)

	// Token returns the bearer token currently held, or "".
	Token() string
}
