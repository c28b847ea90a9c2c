package http

import "github.com/MKhiriev/intern-match/models"

// Backend is the data behind the API. Every owner-scoped method receives the
// authenticated token subject.
type Backend interface {
	Notifications(owner string, limit int) models.NotificationPage
	MarkRead(owner, id string) error
	MarkAllRead(owner string)
	Clear(owner string)
	Publish(owner string, n models.NotificationItem) models.NotificationItem
	Applications(owner string) []models.Application
	Internships() []models.Internship
	Internship(id string) (models.Internship, error)
}
