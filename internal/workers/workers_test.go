// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"sync"
	"testing"
	"time"
)

// mockWorker is a test implementation of the Worker interface
// that records the activation calls it received.
type mockWorker struct {
	mu     sync.Mutex
	active []bool
	closed int
}

func (m *mockWorker) SetActive(active bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = append(m.active, active)
}

func (m *mockWorker) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed++
}

func TestWorkers_SetActive_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := New(w1, w2, w3)
	ws.SetActive(true)

	for i, w := range []*mockWorker{w1, w2, w3} {
		if len(w.active) != 1 || !w.active[0] {
			t.Errorf("worker[%d]: expected one activation, got %v", i, w.active)
		}
	}
}

func TestWorkers_SetActive_Empty(t *testing.T) {
	ws := New()

	// Should not panic on empty workers list
	ws.SetActive(true)
	ws.Close()
}

func TestWorkers_SetActive_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.SetActive(false)
}

func TestWorkers_New_SkipsNil(t *testing.T) {
	w := &mockWorker{}
	ws := New(nil, w, nil)

	ws.SetActive(true)

	if len(ws.workers) != 1 {
		t.Fatalf("expected 1 worker, got %d", len(ws.workers))
	}
}

func TestWorkers_SetActive_Sequence(t *testing.T) {
	w := &mockWorker{}
	ws := New(w)

	ws.SetActive(true)
	ws.SetActive(false)
	ws.SetActive(true)

	expected := []bool{true, false, true}
	for i, v := range expected {
		if w.active[i] != v {
			t.Errorf("expected active[%d]=%v, got %v", i, v, w.active[i])
		}
	}
}

func TestWorkers_Close_CalledOnce(t *testing.T) {
	w := &mockWorker{}
	ws := New(w)

	ws.Close()

	if w.closed != 1 {
		t.Errorf("expected Close to be called exactly once, got %d", w.closed)
	}
}

// barrierWorker blocks in SetActive until every barrierWorker has entered.
type barrierWorker struct {
	wg *sync.WaitGroup
}

func (b *barrierWorker) SetActive(bool) {
	b.wg.Done()
	b.wg.Wait()
}

func (b *barrierWorker) Close() {}

func TestWorkers_SetActive_RunsConcurrently(t *testing.T) {
	var barrier sync.WaitGroup
	barrier.Add(3)

	ws := New(&barrierWorker{&barrier}, &barrierWorker{&barrier}, &barrierWorker{&barrier})

	done := make(chan struct{})
	go func() {
		ws.SetActive(true)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("workers were activated sequentially")
	}
}
