// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/intern-match/internal/clock"
	"github.com/MKhiriev/intern-match/internal/logger"
	"github.com/MKhiriev/intern-match/internal/metrics"
	"github.com/MKhiriev/intern-match/internal/store"
)

// DefaultDebounce is the quiet period before a draft is written.
const DefaultDebounce = time.Second

// DraftOption customises a [Draft].
type DraftOption func(*draftOptions)

type draftOptions struct {
	debounce time.Duration
	clock    clock.Clock
	logger   *logger.Logger
	metrics  metrics.SyncRecorder
}

// WithDebounce sets the quiet period; values <= 0 keep the default.
func WithDebounce(d time.Duration) DraftOption {
	return func(o *draftOptions) {
		if d > 0 {
			o.debounce = d
		}
	}
}

// WithDraftClock sets the clock driving the debounce timer and LastSaved.
func WithDraftClock(c clock.Clock) DraftOption {
	return func(o *draftOptions) { o.clock = c }
}

// WithDraftLogger sets the parent logger of the draft.
func WithDraftLogger(l *logger.Logger) DraftOption {
	return func(o *draftOptions) { o.logger = l }
}

// WithDraftMetrics sets where write outcomes are recorded.
func WithDraftMetrics(m metrics.SyncRecorder) DraftOption {
	return func(o *draftOptions) { o.metrics = m }
}

// Draft is a form value that survives restarts. Edits apply to the
// in-memory value at once; the store is written after a quiet period.
//
// T must encode to a JSON object. Fields are addressed by their JSON
// names.
type Draft[T any] struct {
	key  string
	kv   store.KeyValueStore
	opts draftOptions
	log  *logger.Logger

	initial map[string]json.RawMessage
	// names holds the JSON field names of T; nil when T is not a struct.
	names map[string]struct{}

	mu        sync.Mutex
	fields    map[string]json.RawMessage
	value     T
	seq       uint64
	timer     clock.Timer
	saving    bool
	lastSaved time.Time
	closed    bool

	// writeMu serialises store writes so an older snapshot never lands
	// after a newer one.
	writeMu sync.Mutex
}

// BindDraft loads the draft stored under key. Persisted fields win over
// the ones in initial; fields missing from the stored document keep their
// initial value. A missing, unreadable or corrupt document yields initial.
func BindDraft[T any](ctx context.Context, kv store.KeyValueStore, key string, initial T, opts ...DraftOption) (*Draft[T], error) {
	if key == "" {
		return nil, ErrEmptyDraftKey
	}

	o := draftOptions{debounce: DefaultDebounce}
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

	initialFields, err := toFields(initial)
	if err != nil {
		return nil, err
	}

	d := &Draft[T]{
		key:     key,
		kv:      kv,
		opts:    o,
		log:     o.logger.WithComponent("draft:" + key),
		initial: initialFields,
		names:   jsonFieldNames(reflect.TypeFor[T]()),
	}

	fields := cloneFields(initialFields)
	if persisted, ok := d.load(ctx); ok {
		for name, raw := range persisted {
			if !d.hasField(name) {
				continue
			}
			fields[name] = raw
		}
	}

	value, err := fromFields[T](fields, false)
	if err != nil {
		d.log.Warn().Err(err).Str("func", "BindDraft").Str("key", key).Msg("persisted draft does not fit the form, using initial value")
		fields = cloneFields(initialFields)
		value, err = fromFields[T](fields, false)
		if err != nil {
			return nil, err
		}
	}
	d.fields = fields
	d.value = value

	return d, nil
}

func (d *Draft[T]) load(ctx context.Context) (map[string]json.RawMessage, bool) {
	doc, err := d.kv.Get(ctx, d.key)
	if err != nil {
		if !errors.Is(err, store.ErrDocumentNotFound) {
			d.log.Err(err).Str("func", "Draft.load").Str("key", d.key).Msg("error reading draft")
		}
		return nil, false
	}

	var persisted map[string]json.RawMessage
	if err = json.Unmarshal([]byte(doc), &persisted); err != nil {
		d.log.Warn().Err(err).Str("func", "Draft.load").Str("key", d.key).Msg("corrupt draft document ignored")
		return nil, false
	}
	return persisted, true
}

// Key returns the storage key of the draft.
func (d *Draft[T]) Key() string {
	return d.key
}

// Value returns the current form value.
func (d *Draft[T]) Value() T {
	d.mu.Lock()
	defer d.mu.Unlock()

	v, err := fromFields[T](d.fields, false)
	if err != nil {
		return d.value
	}
	return v
}

// UpdateField sets a single field and schedules a write.
func (d *Draft[T]) UpdateField(field string, value any) {
	d.UpdateMany(map[string]any{field: value})
}

// UpdateMany applies patch and schedules a single write. Fields the form
// does not have, or values of the wrong shape, are logged and skipped; the
// rest of the patch still applies.
func (d *Draft[T]) UpdateMany(patch map[string]any) {
	if len(patch) == 0 {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	next := cloneFields(d.fields)
	applied := 0
	for name, v := range patch {
		if !d.hasField(name) {
			d.log.Warn().Str("func", "Draft.UpdateMany").Str("key", d.key).Str("field", name).Msg("unknown draft field skipped")
			continue
		}
		raw, err := json.Marshal(v)
		if err != nil {
			d.log.Warn().Err(err).Str("func", "Draft.UpdateMany").Str("key", d.key).Str("field", name).Msg("unencodable draft field skipped")
			continue
		}

		prev := next[name]
		next[name] = raw
		if _, err = fromFields[T](next, true); err != nil {
			next[name] = prev
			d.log.Warn().Err(err).Str("func", "Draft.UpdateMany").Str("key", d.key).Str("field", name).Msg("draft field of wrong type skipped")
			continue
		}
		applied++
	}
	if applied == 0 {
		return
	}

	d.fields = next
	d.value, _ = fromFields[T](next, false)
	d.scheduleLocked()
}

// Update replaces the whole value through fn and schedules a write.
func (d *Draft[T]) Update(fn func(T) T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	current, err := fromFields[T](d.fields, false)
	if err != nil {
		current = d.value
	}
	next, err := toFields(fn(current))
	if err != nil {
		d.log.Err(err).Str("func", "Draft.Update").Str("key", d.key).Msg("error encoding draft")
		return
	}

	d.fields = next
	d.value, _ = fromFields[T](next, false)
	d.scheduleLocked()
}

// Clear resets the form to its initial value and removes the stored
// document. A pending write is cancelled and the reset is not persisted.
// A store failure is returned but the in-memory reset stands.
func (d *Draft[T]) Clear(ctx context.Context) error {
	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	d.mu.Lock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.fields = cloneFields(d.initial)
	d.value, _ = fromFields[T](d.fields, false)
	d.mu.Unlock()

	if err := d.kv.Remove(ctx, d.key); err != nil {
		d.log.Err(err).Str("func", "Draft.Clear").Str("key", d.key).Msg("error removing draft")
		return fmt.Errorf("remove draft %q: %w", d.key, err)
	}
	return nil
}

// Flush writes a pending change immediately. It returns the store error,
// if any; nil when nothing was pending.
func (d *Draft[T]) Flush(ctx context.Context) error {
	d.mu.Lock()
	if d.timer == nil {
		d.mu.Unlock()
		return nil
	}
	d.timer.Stop()
	d.timer = nil
	seq := d.seq
	d.mu.Unlock()

	return d.write(ctx, seq)
}

// IsSaving reports whether a store write is in progress.
func (d *Draft[T]) IsSaving() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.saving
}

// LastSaved returns the time of the last successful write; zero if none.
func (d *Draft[T]) LastSaved() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastSaved
}

// Close cancels a pending write without performing it. Further edits still
// update the value but are never persisted.
func (d *Draft[T]) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// scheduleLocked restarts the quiet period.
func (d *Draft[T]) scheduleLocked() {
	if d.closed {
		return
	}
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
	}
	seq := d.seq
	d.timer = d.opts.clock.AfterFunc(d.opts.debounce, func() {
		if err := d.write(context.Background(), seq); err != nil {
			d.log.Err(err).Str("func", "Draft.write").Str("key", d.key).Msg("error saving draft")
		}
	})
}

func (d *Draft[T]) write(ctx context.Context, seq uint64) error {
	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	d.mu.Lock()
	if seq != d.seq || d.closed {
		d.mu.Unlock()
		return nil
	}
	d.timer = nil
	doc, err := json.Marshal(d.fields)
	if err != nil {
		d.mu.Unlock()
		return fmt.Errorf("encode draft: %w", err)
	}
	d.saving = true
	d.mu.Unlock()

	err = d.kv.Set(ctx, d.key, string(doc))
	d.opts.metrics.DraftWritten(err == nil)

	d.mu.Lock()
	d.saving = false
	if err == nil {
		d.lastSaved = d.opts.clock.Now()
	}
	d.mu.Unlock()

	if err != nil {
		return fmt.Errorf("save draft %q: %w", d.key, err)
	}
	d.log.Debug().Str("func", "Draft.write").Str("key", d.key).Msg("draft saved")
	return nil
}

// hasField reports whether name is a JSON field of T. Fields tagged
// omitempty are not in the encoded initial value, so T itself is asked.
func (d *Draft[T]) hasField(name string) bool {
	if d.names != nil {
		_, ok := d.names[name]
		return ok
	}
	_, err := fromFields[T](map[string]json.RawMessage{name: json.RawMessage("null")}, true)
	return err == nil
}

// jsonFieldNames returns the names encoding/json uses for the fields of a
// struct type, following promoted fields of embedded structs.
func jsonFieldNames(t reflect.Type) map[string]struct{} {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	names := make(map[string]struct{})
	for i := range t.NumField() {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")

		if f.Anonymous && name == "" {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				for n := range jsonFieldNames(ft) {
					names[n] = struct{}{}
				}
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		names[name] = struct{}{}
	}
	return names
}

func toFields[T any](v T) (map[string]json.RawMessage, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode draft: %w", err)
	}
	var fields map[string]json.RawMessage
	if err = json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, ErrDraftNotObject
	}
	return fields, nil
}

func fromFields[T any](fields map[string]json.RawMessage, strict bool) (T, error) {
	var v T
	raw, err := json.Marshal(fields)
	if err != nil {
		return v, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	if strict {
		dec.DisallowUnknownFields()
	}
	err = dec.Decode(&v)
	return v, err
}

func cloneFields(in map[string]json.RawMessage) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
