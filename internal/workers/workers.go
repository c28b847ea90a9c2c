package workers

import "sync"

type Workers struct {
	workers []Worker
}

// New groups ws. Nil workers are skipped.
func New(ws ...Worker) *Workers {
	w := &Workers{}
	for _, worker := range ws {
		if worker != nil {
			w.workers = append(w.workers, worker)
		}
	}
	return w
}

// SetActive forwards active to every worker concurrently and returns once
// all of them have handled it.
func (w *Workers) SetActive(active bool) {
	w.each(func(worker Worker) { worker.SetActive(active) })
}

// Close tears every worker down.
func (w *Workers) Close() {
	w.each(Worker.Close)
}

func (w *Workers) each(fn func(Worker)) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(worker)
		}()
	}
	wg.Wait()
}
