// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/intern-match/internal/adapter"
	"github.com/MKhiriev/intern-match/internal/logger"
	"github.com/MKhiriev/intern-match/models"
)

const (
	applicationsSessionName = "applications"
	internshipsSessionName  = "internships"
)

// Dashboard keeps the student's applications and the open internships in
// sync. Each collection is an independent polling session.
type Dashboard struct {
	source adapter.DashboardSource
	log    *logger.Logger

	Applications *PollingSync[[]models.Application]
	Internships  *PollingSync[[]models.Internship]
}

// NewDashboard creates inactive sessions over source. opts apply to both.
func NewDashboard(source adapter.DashboardSource, log *logger.Logger, opts ...PollingOption) *Dashboard {
	if log == nil {
		log = logger.Nop()
	}
	opts = append([]PollingOption{WithLogger(log)}, opts...)

	return &Dashboard{
		source:       source,
		log:          log.WithComponent("dashboard"),
		Applications: NewPollingSync(applicationsSessionName, source.FetchApplications, []models.Application{}, opts...),
		Internships:  NewPollingSync(internshipsSessionName, source.FetchInternships, []models.Internship{}, opts...),
	}
}

// SetActive starts or stops both sessions.
func (d *Dashboard) SetActive(active bool) {
	d.Applications.SetActive(active)
	d.Internships.SetActive(active)
}

// Refresh starts a foreground fetch of both collections.
func (d *Dashboard) Refresh() {
	d.Applications.Refresh()
	d.Internships.Refresh()
}

// Close stops both sessions permanently.
func (d *Dashboard) Close() {
	d.Applications.Close()
	d.Internships.Close()
}

// Internship returns the internship with id from the synced list, asking
// the remote source only when it is not there.
func (d *Dashboard) Internship(ctx context.Context, id string) (models.Internship, error) {
	for _, in := range d.Internships.Snapshot().Data {
		if in.ID == id {
			return in, nil
		}
	}

	d.log.Debug().Str("func", "Dashboard.Internship").Str("id", id).Msg("internship not cached, fetching")
	in, err := d.source.FetchInternship(ctx, id)
	if err != nil {
		return models.Internship{}, fmt.Errorf("fetch internship %q: %w", id, err)
	}
	return in, nil
}

// ApplicationFor returns the student's application to internshipID, if any.
func (d *Dashboard) ApplicationFor(internshipID string) (models.Application, bool) {
	for _, app := range d.Applications.Snapshot().Data {
		if app.InternshipID == internshipID {
			return app, true
		}
	}
	return models.Application{}, false
}
