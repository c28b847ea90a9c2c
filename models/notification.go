// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NotificationType is the closed set of notification kinds produced by the
// platform.
type NotificationType string

const (
	NotificationApplicationUpdate NotificationType = "application_update"
	NotificationNewInternship     NotificationType = "new_internship"
	NotificationMessage           NotificationType = "message"
	NotificationSystem            NotificationType = "system"
	NotificationApproval          NotificationType = "approval"
	NotificationRejection         NotificationType = "rejection"
)

// Valid reports whether t is one of the known notification kinds.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationApplicationUpdate, NotificationNewInternship, NotificationMessage,
		NotificationSystem, NotificationApproval, NotificationRejection:
		return true
	}
	return false
}

// Priority ranks how prominently a notification should be surfaced.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// NotificationItem is a single entry of the notification feed.
type NotificationItem struct {
	// ID is unique and stable across polls.
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
	Priority  Priority         `json:"priority"`

	// ActionURL optionally points the user at the related resource.
	ActionURL string `json:"actionUrl,omitempty"`

	// Metadata is opaque to the client.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// NotificationPage is one page of the feed as returned by the remote source.
//
// UnreadCount is computed by the server and is not required to equal the
// number of unread entries in Items: the page may not contain every unread
// notification.
type NotificationPage struct {
	Items       []NotificationItem `json:"notifications"`
	UnreadCount int                `json:"unreadCount"`
}

// Clone returns a deep copy of the page's item slice so callers may mutate
// it without touching shared state. Metadata maps are shared.
func (p NotificationPage) Clone() NotificationPage {
	items := make([]NotificationItem, len(p.Items))
	copy(items, p.Items)
	return NotificationPage{Items: items, UnreadCount: p.UnreadCount}
}

// CountUnread returns the number of items in the page with Read == false.
func (p NotificationPage) CountUnread() int {
	n := 0
	for _, item := range p.Items {
		if !item.Read {
			n++
		}
	}
	return n
}
