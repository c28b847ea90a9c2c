// Package workers drives the background sync components of the client
// from a single activation signal.
//
// Each component owns its timers; a Workers aggregate only fans the
// activation changes out so that every session starts and stops together.
package workers

// Worker is a background component gated by the activation signal.
//
// SetActive(true) may block for the duration of a foreground fetch, so
// Workers calls it on a goroutine per worker.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) SetActive(active bool) {
//	    // start or stop background processing
//	}
//
//	func (w *MyWorker) Close() {}
type Worker interface {
	SetActive(active bool)
	Close()
}
