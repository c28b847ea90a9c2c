package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/intern-match/internal/logger"
	"github.com/MKhiriev/intern-match/internal/store"
)

// ScopeOption customises a [Scope].
type ScopeOption func(*Scope)

// WithScopeLogger sets the logger used for storage failures.
func WithScopeLogger(l *logger.Logger) ScopeOption {
	return func(s *Scope) { s.log = l.WithComponent("scope") }
}

// Scope is key/value state private to one owner (the signed-in user). The
// owner's whole map is stored as a single document keyed by owner ID.
type Scope struct {
	kv  store.KeyValueStore
	log *logger.Logger

	mu      sync.Mutex
	owner   string
	entries map[string]json.RawMessage
}

// NewScope creates an unbound scope over kv.
func NewScope(kv store.KeyValueStore, opts ...ScopeOption) *Scope {
	s := &Scope{
		kv:      kv,
		log:     logger.Nop(),
		entries: map[string]json.RawMessage{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bind switches the scope to owner and loads its document. Re-binding the
// current owner does nothing; an empty owner unbinds. A missing or corrupt
// document starts the owner with an empty map.
func (s *Scope) Bind(ctx context.Context, owner string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if owner == s.owner {
		return
	}
	s.owner = owner
	s.entries = map[string]json.RawMessage{}
	if owner == "" {
		return
	}

	doc, err := s.kv.Get(ctx, owner)
	if err != nil {
		if !errors.Is(err, store.ErrDocumentNotFound) {
			s.log.Err(err).Str("func", "Scope.Bind").Str("owner", owner).Msg("error loading scoped state")
		}
		return
	}

	var entries map[string]json.RawMessage
	if err = json.Unmarshal([]byte(doc), &entries); err != nil {
		s.log.Warn().Err(err).Str("func", "Scope.Bind").Str("owner", owner).Msg("corrupt scoped state ignored")
		return
	}
	if entries != nil {
		s.entries = entries
	}
}

// Owner returns the bound owner, or "".
func (s *Scope) Owner() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.owner
}

// SetState stores value under key and persists the owner's map. The value
// must be JSON-encodable. Storage failures are logged; memory stays
// authoritative.
func (s *Scope) SetState(ctx context.Context, key string, value any) error {
	if key == "" {
		return ErrEmptyStateKey
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode state %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.owner == "" {
		return ErrNoOwner
	}
	s.entries[key] = raw
	s.persistLocked(ctx)
	return nil
}

// GetState returns the decoded value under key, or def when absent or
// unbound. Values come back in their generic JSON form (float64, string,
// map[string]any, ...); use [GetStateAs] for a typed read.
func (s *Scope) GetState(key string, def any) any {
	s.mu.Lock()
	raw, ok := s.entries[key]
	s.mu.Unlock()
	if !ok {
		return def
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}

// GetStateAs is the typed form of [Scope.GetState]. A value that does not
// decode into T yields def.
func GetStateAs[T any](s *Scope, key string, def T) T {
	s.mu.Lock()
	raw, ok := s.entries[key]
	s.mu.Unlock()
	if !ok {
		return def
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}

// ClearState removes the named keys and persists the rest. With no keys
// the owner's document is erased entirely, as it is when the last key
// goes.
func (s *Scope) ClearState(ctx context.Context, keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.owner == "" {
		return
	}
	if len(keys) == 0 {
		s.entries = map[string]json.RawMessage{}
	}
	for _, k := range keys {
		delete(s.entries, k)
	}

	if len(s.entries) == 0 {
		if err := s.kv.Remove(ctx, s.owner); err != nil {
			s.log.Err(err).Str("func", "Scope.ClearState").Str("owner", s.owner).Msg("error removing scoped state")
		}
		return
	}
	s.persistLocked(ctx)
}

func (s *Scope) persistLocked(ctx context.Context) {
	if len(s.entries) == 0 {
		return
	}
	doc, err := json.Marshal(s.entries)
	if err != nil {
		s.log.Err(err).Str("func", "Scope.persist").Str("owner", s.owner).Msg("error encoding scoped state")
		return
	}
	if err = s.kv.Set(ctx, s.owner, string(doc)); err != nil {
		s.log.Err(err).Str("func", "Scope.persist").Str("owner", s.owner).Msg("error saving scoped state")
	}
}
