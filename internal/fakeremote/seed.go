package fakeremote

import (
	"time"

	"github.com/MKhiriev/intern-match/models"
)

func seedInternships(now time.Time) []models.Internship {
	day := 24 * time.Hour
	return []models.Internship{
		{
			ID: "int-backend-1", CompanyID: "acme", CompanyName: "Acme Corp",
			Title: "Backend Engineering Intern", Location: "Berlin", Remote: true,
			Description: "Build services that power the Acme marketplace.",
			Skills:      []string{"go", "postgres"},
			Deadline:    now.Add(21 * day), PostedAt: now.Add(-3 * day),
		},
		{
			ID: "int-data-2", CompanyID: "globex", CompanyName: "Globex",
			Title: "Data Analyst Intern", Location: "Amsterdam",
			Description: "Help the analytics team answer product questions.",
			Skills:      []string{"sql", "python"},
			Deadline:    now.Add(14 * day), PostedAt: now.Add(-7 * day),
		},
		{
			ID: "int-design-3", CompanyID: "initech", CompanyName: "Initech",
			Title: "Product Design Intern", Location: "Remote", Remote: true,
			Description: "Design flows for internal tooling.",
			Skills:      []string{"figma"},
			Deadline:    now.Add(30 * day), PostedAt: now.Add(-1 * day),
		},
	}
}

func (b *Backend) seedOwnerLocked(owner string) *ownerData {
	now := b.now()
	return &ownerData{
		notifications: []models.NotificationItem{
			{
				ID: b.ids.Generate(), Type: models.NotificationApplicationUpdate,
				Title: "Application under review", Message: "Acme Corp is reviewing your application.",
				Timestamp: now.Add(-time.Hour), Priority: models.PriorityHigh,
				ActionURL: "/applications/app-" + owner + "-1",
			},
			{
				ID: b.ids.Generate(), Type: models.NotificationNewInternship,
				Title: "New internship", Message: "Initech posted a Product Design internship.",
				Timestamp: now.Add(-2 * time.Hour), Priority: models.PriorityMedium,
				ActionURL: "/internships/int-design-3",
			},
			{
				ID: b.ids.Generate(), Type: models.NotificationSystem,
				Title: "Welcome", Message: "Your profile is ready.",
				Timestamp: now.Add(-48 * time.Hour), Priority: models.PriorityLow, Read: true,
			},
		},
		applications: []models.Application{
			{
				ID: "app-" + owner + "-1", InternshipID: "int-backend-1", StudentID: owner,
				Status: models.ApplicationReviewing, SubmittedAt: now.Add(-72 * time.Hour), UpdatedAt: now.Add(-time.Hour),
			},
		},
	}
}
