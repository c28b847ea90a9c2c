package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/intern-match/internal/fakeremote"
	"github.com/MKhiriev/intern-match/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidLimit:       http.StatusBadRequest,
	ErrInvalidRequestBody: http.StatusBadRequest,
	ErrNoOwner:            http.StatusUnauthorized,

	validators.ErrInvalidNotificationType: http.StatusUnprocessableEntity,
	validators.ErrEmptyTitle:              http.StatusUnprocessableEntity,
	validators.ErrTitleTooLong:            http.StatusUnprocessableEntity,
	validators.ErrEmptyMessage:            http.StatusUnprocessableEntity,
	validators.ErrInvalidPriority:         http.StatusUnprocessableEntity,
	validators.ErrInvalidActionURL:        http.StatusUnprocessableEntity,

	fakeremote.ErrNotificationNotFound: http.StatusNotFound,
	fakeremote.ErrInternshipNotFound:   http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
