// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/intern-match/internal/clock"
	"github.com/MKhiriev/intern-match/internal/logger"
	"github.com/MKhiriev/intern-match/internal/metrics"
)

// Polling defaults.
const (
	DefaultPollInterval   = 30 * time.Second
	DefaultMaxRetries     = 3
	DefaultRetryBaseDelay = time.Second
)

// FetchFunc loads the current value of a remote collection. It must honour
// ctx cancellation; timeouts are left to the transport.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// SyncState is the position of a session in its fetch/retry cycle.
type SyncState int

const (
	// StateIdle: no fetch in flight, last chain succeeded (or none ran yet).
	StateIdle SyncState = iota
	// StateFetchingForeground: first attempt of a user-visible fetch.
	StateFetchingForeground
	// StateRetryingForeground: a user-visible fetch failed and is being
	// retried; loading stays true.
	StateRetryingForeground
	// StateFetchingSilent: first attempt of a periodic refresh.
	StateFetchingSilent
	// StateRetryingSilent: a periodic refresh failed and is being retried.
	StateRetryingSilent
	// StateIdleWithError: the last chain exhausted its retries.
	StateIdleWithError
)

func (s SyncState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetchingForeground:
		return "fetching_foreground"
	case StateRetryingForeground:
		return "retrying_foreground"
	case StateFetchingSilent:
		return "fetching_silent"
	case StateRetryingSilent:
		return "retrying_silent"
	case StateIdleWithError:
		return "idle_with_error"
	default:
		return "unknown"
	}
}

func (s SyncState) foreground() bool {
	return s == StateFetchingForeground || s == StateRetryingForeground
}

func (s SyncState) inFlight() bool {
	return s != StateIdle && s != StateIdleWithError
}

// SyncSnapshot is a consistent copy of a session's observable state.
type SyncSnapshot[T any] struct {
	// Data is the last successfully fetched value, or the initial value.
	Data T
	// Loading is true only during a foreground chain.
	Loading bool
	// Error is the last terminal failure message, "" when none.
	Error string
	// Err is the classified form of Error, nil when none.
	Err *SyncError
	// LastUpdated is the time of the last success; zero if none.
	LastUpdated time.Time
	RetryCount  int
	State       SyncState
}

// PollingOption customises a [PollingSync].
type PollingOption func(*pollingOptions)

type pollingOptions struct {
	interval       time.Duration
	autoStart      bool
	maxRetries     int
	retryBaseDelay time.Duration
	clock          clock.Clock
	logger         *logger.Logger
	metrics        metrics.SyncRecorder
	onChange       []func()
}

// WithInterval sets the period between silent refreshes; 0 disables them.
func WithInterval(d time.Duration) PollingOption {
	return func(o *pollingOptions) {
		if d >= 0 {
			o.interval = d
		}
	}
}

// WithAutoStart controls whether activation triggers a foreground fetch.
func WithAutoStart(autoStart bool) PollingOption {
	return func(o *pollingOptions) { o.autoStart = autoStart }
}

// WithMaxRetries sets how many silent retries follow a failed attempt.
func WithMaxRetries(n int) PollingOption {
	return func(o *pollingOptions) {
		if n >= 0 {
			o.maxRetries = n
		}
	}
}

// WithRetryBaseDelay sets the linear backoff unit: retry N waits N × d.
func WithRetryBaseDelay(d time.Duration) PollingOption {
	return func(o *pollingOptions) {
		if d > 0 {
			o.retryBaseDelay = d
		}
	}
}

// WithClock sets the clock driving retry and interval timers.
func WithClock(c clock.Clock) PollingOption {
	return func(o *pollingOptions) { o.clock = c }
}

// WithLogger sets the parent logger; the session logs under its own
// component name.
func WithLogger(l *logger.Logger) PollingOption {
	return func(o *pollingOptions) { o.logger = l }
}

// WithMetrics sets where attempts and their outcomes are recorded.
func WithMetrics(m metrics.SyncRecorder) PollingOption {
	return func(o *pollingOptions) { o.metrics = m }
}

// WithOnChange registers fn to be called after every state change. fn runs
// without the session lock held and may call Snapshot.
func WithOnChange(fn func()) PollingOption {
	return func(o *pollingOptions) { o.onChange = append(o.onChange, fn) }
}

// PollingSync keeps a local copy of a remote collection fresh by periodic
// fetching, with linear-backoff retries.
//
// Attempts run on the goroutine that triggers them: the caller of
// SetActive or Refresh, or the timer goroutine for retries and periodic
// refreshes. At most one attempt is live per session; results of attempts
// superseded by Refresh or cut off by deactivation are discarded.
type PollingSync[T any] struct {
	name  string
	fetch FetchFunc[T]
	opts  pollingOptions
	log   *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu          sync.Mutex
	data        T
	err         *SyncError
	lastUpdated time.Time
	retryCount  int
	state       SyncState

	active bool
	closed bool
	// gen identifies the live chain; bumped on every chain start and teardown.
	gen           uint64
	cancelAttempt context.CancelFunc
	retryTimer    clock.Timer
	intervalTimer clock.Timer
}

// NewPollingSync creates an inactive session named name. Nothing is fetched
// until SetActive(true).
func NewPollingSync[T any](name string, fetch FetchFunc[T], initial T, opts ...PollingOption) *PollingSync[T] {
	o := pollingOptions{
		interval:       DefaultPollInterval,
		autoStart:      true,
		maxRetries:     DefaultMaxRetries,
		retryBaseDelay: DefaultRetryBaseDelay,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.logger == nil {
		o.logger = logger.Nop()
	}
	if o.metrics == nil {
		o.metrics = metrics.Nop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &PollingSync[T]{
		name:   name,
		fetch:  fetch,
		opts:   o,
		log:    o.logger.WithComponent("polling:" + name),
		ctx:    ctx,
		cancel: cancel,
		data:   initial,
	}
}

// Name returns the session name used in logs and metrics.
func (p *PollingSync[T]) Name() string {
	return p.name
}

// SetActive feeds the activation signal. Turning it on fetches in the
// foreground (when auto-start is enabled) and then polls silently;
// turning it off cancels every pending timer and discards any in-flight
// result. Repeating the current value is a no-op.
func (p *PollingSync[T]) SetActive(active bool) {
	p.mu.Lock()
	if p.closed || p.active == active {
		p.mu.Unlock()
		return
	}
	p.active = active

	if !active {
		p.teardownLocked()
		p.mu.Unlock()
		p.log.Debug().Str("func", "PollingSync.SetActive").Msg("session deactivated")
		p.notify()
		return
	}

	p.log.Debug().Str("func", "PollingSync.SetActive").Bool("auto_start", p.opts.autoStart).Msg("session activated")
	if !p.opts.autoStart {
		p.armIntervalLocked()
		p.mu.Unlock()
		return
	}

	gen, ctx := p.startChainLocked(StateFetchingForeground)
	p.mu.Unlock()
	p.notify()

	p.runAttempt(ctx, gen, metrics.KindForeground)
}

// Refresh cancels any outstanding retry or in-flight attempt and starts a
// fresh foreground fetch. It is ignored while the session is inactive.
func (p *PollingSync[T]) Refresh() {
	p.mu.Lock()
	if p.closed || !p.active {
		p.mu.Unlock()
		p.log.Debug().Str("func", "PollingSync.Refresh").Msg("refresh ignored: session inactive")
		return
	}

	p.teardownLocked()
	gen, ctx := p.startChainLocked(StateFetchingForeground)
	p.mu.Unlock()
	p.notify()

	p.runAttempt(ctx, gen, metrics.KindForeground)
}

// Snapshot returns a copy of the session state.
func (p *PollingSync[T]) Snapshot() SyncSnapshot[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

// IsStale reports whether no success happened yet or the last one is older
// than the polling interval.
func (p *PollingSync[T]) IsStale() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.lastUpdated.IsZero() {
		return true
	}
	return p.opts.clock.Now().Sub(p.lastUpdated) > p.opts.interval
}

// Update applies a local change to Data, e.g. an optimistic mutation. The
// next successful fetch replaces it with the remote view.
func (p *PollingSync[T]) Update(fn func(T) T) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.data = fn(p.data)
	p.mu.Unlock()
	p.notify()
}

// Close deactivates the session permanently.
func (p *PollingSync[T]) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.active = false
	p.teardownLocked()
	p.mu.Unlock()

	p.cancel()
}

func (p *PollingSync[T]) snapshotLocked() SyncSnapshot[T] {
	s := SyncSnapshot[T]{
		Data:        p.data,
		Loading:     p.state.foreground(),
		Err:         p.err,
		LastUpdated: p.lastUpdated,
		RetryCount:  p.retryCount,
		State:       p.state,
	}
	if p.err != nil {
		s.Error = p.err.Message
	}
	return s
}

// startChainLocked begins a new fetch chain in state and returns its
// generation and attempt context.
func (p *PollingSync[T]) startChainLocked(state SyncState) (uint64, context.Context) {
	p.gen++
	p.retryCount = 0
	p.state = state
	p.err = nil

	ctx, cancel := context.WithCancel(p.ctx)
	p.cancelAttempt = cancel
	return p.gen, ctx
}

// teardownLocked kills the live chain: timers are stopped, the in-flight
// attempt is cancelled and its result will be discarded.
func (p *PollingSync[T]) teardownLocked() {
	p.gen++
	if p.cancelAttempt != nil {
		p.cancelAttempt()
		p.cancelAttempt = nil
	}
	if p.retryTimer != nil {
		p.retryTimer.Stop()
		p.retryTimer = nil
	}
	if p.intervalTimer != nil {
		p.intervalTimer.Stop()
		p.intervalTimer = nil
	}
	if p.state.inFlight() {
		p.retryCount = 0
		p.state = StateIdle
		if p.err != nil {
			p.state = StateIdleWithError
		}
	}
	p.opts.metrics.RetryCount(p.name, p.retryCount)
}

func (p *PollingSync[T]) armIntervalLocked() {
	if !p.active || p.closed || p.opts.interval <= 0 {
		return
	}
	if p.intervalTimer != nil {
		p.intervalTimer.Stop()
	}
	gen := p.gen
	p.intervalTimer = p.opts.clock.AfterFunc(p.opts.interval, func() { p.onInterval(gen) })
}

func (p *PollingSync[T]) onInterval(gen uint64) {
	p.mu.Lock()
	if gen != p.gen || !p.active {
		p.mu.Unlock()
		return
	}
	p.intervalTimer = nil
	chainGen, ctx := p.startChainLocked(StateFetchingSilent)
	p.mu.Unlock()
	p.notify()

	p.runAttempt(ctx, chainGen, metrics.KindSilent)
}

func (p *PollingSync[T]) onRetry(gen uint64) {
	p.mu.Lock()
	if gen != p.gen || !p.active {
		p.mu.Unlock()
		return
	}
	p.retryTimer = nil
	ctx, cancel := context.WithCancel(p.ctx)
	p.cancelAttempt = cancel
	p.mu.Unlock()

	p.runAttempt(ctx, gen, metrics.KindRetry)
}

func (p *PollingSync[T]) runAttempt(ctx context.Context, gen uint64, kind string) {
	p.opts.metrics.AttemptStarted(p.name, kind)
	started := p.opts.clock.Now()

	data, err := p.fetch(ctx)

	p.mu.Lock()
	elapsed := p.opts.clock.Now().Sub(started)
	if gen != p.gen {
		p.mu.Unlock()
		p.opts.metrics.AttemptFinished(p.name, metrics.OutcomeDiscarded, elapsed)
		p.log.Debug().Str("func", "PollingSync.runAttempt").Str("kind", kind).Msg("discarding result of superseded attempt")
		return
	}
	if p.cancelAttempt != nil {
		p.cancelAttempt()
		p.cancelAttempt = nil
	}

	if err == nil {
		p.data = data
		p.lastUpdated = p.opts.clock.Now()
		p.err = nil
		p.retryCount = 0
		p.state = StateIdle
		p.armIntervalLocked()
		p.mu.Unlock()

		p.opts.metrics.AttemptFinished(p.name, metrics.OutcomeSuccess, elapsed)
		p.opts.metrics.RetryCount(p.name, 0)
		p.notify()
		return
	}

	p.opts.metrics.AttemptFinished(p.name, metrics.OutcomeFailure, elapsed)
	syncErr := newSyncError(err)

	if p.retryCount < p.opts.maxRetries {
		p.retryCount++
		delay := p.opts.retryBaseDelay * time.Duration(p.retryCount)
		if p.state.foreground() {
			p.state = StateRetryingForeground
		} else {
			p.state = StateRetryingSilent
		}
		p.retryTimer = p.opts.clock.AfterFunc(delay, func() { p.onRetry(gen) })
		retryCount := p.retryCount
		p.mu.Unlock()

		p.log.Warn().Err(err).
			Str("func", "PollingSync.runAttempt").
			Str("kind", kind).
			Str("error_kind", syncErr.Kind.String()).
			Int("retry", retryCount).
			Dur("delay", delay).
			Msg("fetch failed, retry scheduled")
		p.opts.metrics.RetryCount(p.name, retryCount)
		p.notify()
		return
	}

	p.err = syncErr
	p.retryCount = 0
	p.state = StateIdleWithError
	p.armIntervalLocked()
	p.mu.Unlock()

	p.log.Err(err).
		Str("func", "PollingSync.runAttempt").
		Str("kind", kind).
		Str("error_kind", syncErr.Kind.String()).
		Msg("fetch failed, retries exhausted")
	p.opts.metrics.RetryCount(p.name, 0)
	p.notify()
}

func (p *PollingSync[T]) notify() {
	for _, fn := range p.opts.onChange {
		fn()
	}
}
