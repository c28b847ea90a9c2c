// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/intern-match/models"
)

// Field names accepted by [NotificationValidator].
const (
	FieldType      = "type"
	FieldTitle     = "title"
	FieldMessage   = "message"
	FieldPriority  = "priority"
	FieldActionURL = "action_url"
)

const maxTitleLength = 140

var allNotificationFields = []string{FieldType, FieldTitle, FieldMessage, FieldPriority, FieldActionURL}

type NotificationValidator struct{}

func NewNotificationValidator() Validator {
	return &NotificationValidator{}
}

func (v *NotificationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NotificationItem:
		return v.validateNotification(ctx, value, fields...)
	case *models.NotificationItem:
		return v.validateNotification(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// An empty priority is allowed: the backend fills in the default.
func (v *NotificationValidator) validateNotification(_ context.Context, n models.NotificationItem, fields ...string) error {
	if len(fields) == 0 {
		fields = allNotificationFields
	}

	for _, f := range fields {
		switch f {
		case FieldType:
			if !n.Type.Valid() {
				return ErrInvalidNotificationType
			}
		case FieldTitle:
			title := strings.TrimSpace(n.Title)
			if title == "" {
				return ErrEmptyTitle
			}
			if utf8.RuneCountInString(title) > maxTitleLength {
				return ErrTitleTooLong
			}
		case FieldMessage:
			if strings.TrimSpace(n.Message) == "" {
				return ErrEmptyMessage
			}
		case FieldPriority:
			if n.Priority != "" && !isValidPriority(n.Priority) {
				return ErrInvalidPriority
			}
		case FieldActionURL:
			if n.ActionURL != "" && !isValidActionURL(n.ActionURL) {
				return ErrInvalidActionURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidPriority(p models.Priority) bool {
	switch p {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		return true
	}
	return false
}

func isValidActionURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.IsAbs() {
		return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
	}
	return strings.HasPrefix(u.Path, "/")
}
