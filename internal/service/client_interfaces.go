package service

// Session is a sync component gated by the activation signal.
type Session interface {
	// SetActive starts (true) or tears down (false) background syncing.
	SetActive(active bool)

	// Refresh starts a user-initiated fetch. Ignored while inactive.
	Refresh()

	// Close tears the session down permanently.
	Close()
}

var (
	_ Session = (*PollingSync[int])(nil)
	_ Session = (*NotificationFeed)(nil)
	_ Session = (*Dashboard)(nil)
)
