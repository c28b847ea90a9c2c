// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fakeremote is an in-memory stand-in for the platform's remote
// data source. It backs the development server so that the client can be
// run end to end without the real platform.
//
// Every owner (the subject of the bearer token) gets its own notifications
// and applications, seeded on first access. Internships are shared.
package fakeremote

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/intern-match/internal/logger"
	"github.com/MKhiriev/intern-match/internal/utils"
	"github.com/MKhiriev/intern-match/models"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInternshipNotFound   = errors.New("internship not found")
)

type ownerData struct {
	notifications []models.NotificationItem
	applications  []models.Application
}

// Backend holds the fake platform state.
type Backend struct {
	mu          sync.Mutex
	owners      map[string]*ownerData
	internships []models.Internship

	ids    *utils.UUIDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewBackend creates a backend seeded with a handful of internships.
func NewBackend(log *logger.Logger) *Backend {
	b := &Backend{
		owners: make(map[string]*ownerData),
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
		logger: log,
	}
	b.internships = seedInternships(b.now())
	return b
}

// Notifications returns the newest limit notifications of owner and the
// number of unread notifications overall, which may exceed what the page
// holds. limit <= 0 returns everything.
func (b *Backend) Notifications(owner string, limit int) models.NotificationPage {
	b.mu.Lock()
	defer b.mu.Unlock()

	data := b.ownerLocked(owner)
	page := models.NotificationPage{Items: []models.NotificationItem{}}
	for i, item := range data.notifications {
		if !item.Read {
			page.UnreadCount++
		}
		if limit <= 0 || i < limit {
			page.Items = append(page.Items, item)
		}
	}
	return page
}

// MarkRead marks one notification of owner read.
func (b *Backend) MarkRead(owner, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	data := b.ownerLocked(owner)
	for i := range data.notifications {
		if data.notifications[i].ID == id {
			data.notifications[i].Read = true
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotificationNotFound, id)
}

// MarkAllRead marks every notification of owner read.
func (b *Backend) MarkAllRead(owner string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	data := b.ownerLocked(owner)
	for i := range data.notifications {
		data.notifications[i].Read = true
	}
}

// Clear deletes every notification of owner.
func (b *Backend) Clear(owner string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.ownerLocked(owner).notifications = []models.NotificationItem{}
}

// Publish adds n to the top of owner's feed, filling in ID and timestamp
// when missing, and returns the stored item.
func (b *Backend) Publish(owner string, n models.NotificationItem) models.NotificationItem {
	b.mu.Lock()
	defer b.mu.Unlock()

	if n.ID == "" {
		n.ID = b.ids.Generate()
	}
	if n.Timestamp.IsZero() {
		n.Timestamp = b.now()
	}
	if n.Priority == "" {
		n.Priority = models.PriorityMedium
	}

	data := b.ownerLocked(owner)
	data.notifications = append([]models.NotificationItem{n}, data.notifications...)
	return n
}

// Applications returns owner's applications, newest first.
func (b *Backend) Applications(owner string) []models.Application {
	b.mu.Lock()
	defer b.mu.Unlock()

	apps := b.ownerLocked(owner).applications
	out := make([]models.Application, len(apps))
	copy(out, apps)
	return out
}

// Internships returns every open internship ordered by deadline.
func (b *Backend) Internships() []models.Internship {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]models.Internship, len(b.internships))
	copy(out, b.internships)
	return out
}

// Internship returns the internship with id.
func (b *Backend) Internship(id string) (models.Internship, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, in := range b.internships {
		if in.ID == id {
			return in, nil
		}
	}
	return models.Internship{}, fmt.Errorf("%w: %s", ErrInternshipNotFound, id)
}

// Owners returns every owner seen so far.
func (b *Backend) Owners() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	owners := make([]string, 0, len(b.owners))
	for owner := range b.owners {
		owners = append(owners, owner)
	}
	sort.Strings(owners)
	return owners
}

// RunPublisher publishes a synthetic notification to every known owner
// every interval until ctx is done, so that polling clients see new data.
func (b *Backend) RunPublisher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	n := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n++
			for _, owner := range b.Owners() {
				item := b.Publish(owner, models.NotificationItem{
					Type:    models.NotificationSystem,
					Title:   "Platform update",
					Message: fmt.Sprintf("Scheduled update #%d", n),
				})
				b.logger.Debug().Str("func", "Backend.RunPublisher").Str("owner", owner).Str("id", item.ID).Msg("notification published")
			}
		}
	}
}

func (b *Backend) ownerLocked(owner string) *ownerData {
	data, ok := b.owners[owner]
	if !ok {
		data = b.seedOwnerLocked(owner)
		b.owners[owner] = data
		b.logger.Info().Str("func", "Backend.ownerLocked").Str("owner", owner).Msg("seeded new owner")
	}
	return data
}
