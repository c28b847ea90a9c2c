// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/intern-match/internal/adapter"
	"github.com/MKhiriev/intern-match/internal/logger"
	"github.com/MKhiriev/intern-match/models"
)

const (
	feedSessionName = "notifications"

	// DefaultFeedPageSize is the number of notifications fetched per poll.
	DefaultFeedPageSize = 50
	// DefaultAckTimeout bounds a single read acknowledgement.
	DefaultAckTimeout = 10 * time.Second
)

// FeedOption customises a [NotificationFeed].
type FeedOption func(*feedOptions)

type feedOptions struct {
	pageSize   int
	ackTimeout time.Duration
	logger     *logger.Logger
	polling    []PollingOption
}

// WithPageSize sets the fetch limit; 0 lets the remote pick.
func WithPageSize(n int) FeedOption {
	return func(o *feedOptions) {
		if n >= 0 {
			o.pageSize = n
		}
	}
}

// WithAckTimeout bounds each markRead / markAllRead acknowledgement.
func WithAckTimeout(d time.Duration) FeedOption {
	return func(o *feedOptions) {
		if d > 0 {
			o.ackTimeout = d
		}
	}
}

func WithFeedLogger(l *logger.Logger) FeedOption {
	return func(o *feedOptions) { o.logger = l }
}

// WithFeedPolling forwards options to the underlying polling session.
func WithFeedPolling(opts ...PollingOption) FeedOption {
	return func(o *feedOptions) { o.polling = append(o.polling, opts...) }
}

// NotificationFeed is the user's notification list with an unread badge.
//
// Reads are optimistic: MarkRead and MarkAllRead change local state before
// returning and acknowledge remotely in the background. Clear is not: the
// local list is emptied only after the remote source confirmed.
type NotificationFeed struct {
	source adapter.NotificationSource
	sync   *PollingSync[models.NotificationPage]
	opts   feedOptions
	log    *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
	acks   sync.WaitGroup
}

// NewNotificationFeed creates an inactive feed polling source.
func NewNotificationFeed(source adapter.NotificationSource, opts ...FeedOption) *NotificationFeed {
	o := feedOptions{
		pageSize:   DefaultFeedPageSize,
		ackTimeout: DefaultAckTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.Nop()
	}

	f := &NotificationFeed{
		source: source,
		opts:   o,
		log:    o.logger.WithComponent("notification_feed"),
	}
	f.ctx, f.cancel = context.WithCancel(context.Background())

	pollingOpts := append([]PollingOption{WithLogger(o.logger)}, o.polling...)
	f.sync = NewPollingSync(feedSessionName, f.fetch, models.NotificationPage{Items: []models.NotificationItem{}}, pollingOpts...)

	return f
}

func (f *NotificationFeed) fetch(ctx context.Context) (models.NotificationPage, error) {
	page, err := f.source.FetchNotifications(ctx, f.opts.pageSize)
	if err != nil {
		return models.NotificationPage{}, err
	}
	if page.Items == nil {
		page.Items = []models.NotificationItem{}
	}
	if page.UnreadCount < 0 {
		page.UnreadCount = 0
	}
	return page, nil
}

// SetActive starts or stops polling.
func (f *NotificationFeed) SetActive(active bool) {
	f.sync.SetActive(active)
}

// Refresh re-fetches the feed in the foreground.
func (f *NotificationFeed) Refresh() {
	f.sync.Refresh()
}

// Snapshot returns the feed's sync state. Data is a copy.
func (f *NotificationFeed) Snapshot() SyncSnapshot[models.NotificationPage] {
	s := f.sync.Snapshot()
	s.Data = s.Data.Clone()
	return s
}

// Items returns a copy of the current notifications, newest first as
// delivered by the remote source.
func (f *NotificationFeed) Items() []models.NotificationItem {
	return f.sync.Snapshot().Data.Clone().Items
}

// UnreadCount returns the badge value.
func (f *NotificationFeed) UnreadCount() int {
	return f.sync.Snapshot().Data.UnreadCount
}

// IsStale reports whether the feed needs a refresh.
func (f *NotificationFeed) IsStale() bool {
	return f.sync.IsStale()
}

// MarkRead marks one notification read locally and acknowledges it in the
// background. The unread count drops by one unless the item is known to be
// read already; it never goes below zero. A failed acknowledgement is
// logged and left for the next poll to reconcile.
func (f *NotificationFeed) MarkRead(id string) {
	f.sync.Update(func(page models.NotificationPage) models.NotificationPage {
		next := page.Clone()
		alreadyRead := false
		for i := range next.Items {
			if next.Items[i].ID != id {
				continue
			}
			alreadyRead = next.Items[i].Read
			next.Items[i].Read = true
			break
		}
		if !alreadyRead && next.UnreadCount > 0 {
			next.UnreadCount--
		}
		return next
	})

	f.acknowledge("MarkRead", func(ctx context.Context) error {
		return f.source.MarkNotificationRead(ctx, id)
	})
}

// MarkAllRead marks every notification read locally, zeroes the badge and
// acknowledges in the background.
func (f *NotificationFeed) MarkAllRead() {
	f.sync.Update(func(page models.NotificationPage) models.NotificationPage {
		next := page.Clone()
		for i := range next.Items {
			next.Items[i].Read = true
		}
		next.UnreadCount = 0
		return next
	})

	f.acknowledge("MarkAllRead", f.source.MarkAllNotificationsRead)
}

// Clear deletes every notification remotely and, once confirmed, empties
// the local feed. On failure the local feed is left untouched and the error
// is returned.
func (f *NotificationFeed) Clear(ctx context.Context) error {
	if err := f.source.ClearNotifications(ctx); err != nil {
		f.log.Err(err).Str("func", "NotificationFeed.Clear").Msg("error clearing notifications")
		return fmt.Errorf("clear notifications: %w", err)
	}

	f.sync.Update(func(models.NotificationPage) models.NotificationPage {
		return models.NotificationPage{Items: []models.NotificationItem{}}
	})
	return nil
}

// Close stops polling and waits for outstanding acknowledgements.
func (f *NotificationFeed) Close() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.closed = true
	f.mu.Unlock()

	f.sync.Close()
	f.acks.Wait()
	f.cancel()
}

func (f *NotificationFeed) acknowledge(op string, ack func(ctx context.Context) error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}

	f.acks.Add(1)
	go func() {
		defer f.acks.Done()

		ctx, cancel := context.WithTimeout(f.ctx, f.opts.ackTimeout)
		defer cancel()

		if err := ack(ctx); err != nil {
			f.log.Warn().Err(err).Str("func", "NotificationFeed."+op).Msg("acknowledgement failed, next poll will reconcile")
		}
	}()
}
