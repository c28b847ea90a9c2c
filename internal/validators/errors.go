package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidNotificationType = errors.New("invalid notification type")
	ErrEmptyTitle              = errors.New("title is required")
	ErrTitleTooLong            = errors.New("title is too long")
	ErrEmptyMessage            = errors.New("message is required")
	ErrInvalidPriority         = errors.New("invalid priority")
	ErrInvalidActionURL        = errors.New("action URL must be an absolute http(s) URL or a path")
)
