package cpu

import (
	"sync"
	"sync/atomic"

	"solseek/pkg/generator"
)

// searchState is the only state shared between workers during a search:
// the stop flag, the attempts accumulator, and the single-assignment
// result slot. All three use atomic primitives; nothing on the hot path
// takes a lock.
type searchState struct {
	stop     atomic.Bool   // Set once; workers exit on observing it
	attempts atomic.Uint64 // Total attempts, flushed in batches by workers

	claimed atomic.Bool      // Guards the result slot; first CAS wins
	winner  generator.Result // Written only by the claiming worker

	errOnce sync.Once // Guards err
	err     error     // First fatal worker error, read after the join

	closeOnce sync.Once
	done      chan struct{} // Closed with the stop flag, for select-based waits
}

func newSearchState() *searchState {
	return &searchState{done: make(chan struct{})}
}

// stopped is the per-iteration check on the worker hot path.
func (s *searchState) stopped() bool {
	return s.stop.Load()
}

// halt sets the stop flag and wakes anything waiting on done.
// Safe to call any number of times from any goroutine.
func (s *searchState) halt() {
	s.stop.Store(true)
	s.closeOnce.Do(func() { close(s.done) })
}

// publish attempts to write the winning result. The first caller wins and
// halts the search in the same step; later candidates are dropped and the
// losing workers just exit. The winner is read only after all workers have
// been joined.
func (s *searchState) publish(res generator.Result) bool {
	if !s.claimed.CompareAndSwap(false, true) {
		return false
	}
	s.winner = res
	s.halt()
	return true
}

// fail records a fatal worker error and halts the search. Only the first
// error is kept.
func (s *searchState) fail(err error) {
	s.errOnce.Do(func() { s.err = err })
	s.halt()
}

// result returns the winning result, if a publish succeeded.
func (s *searchState) result() (generator.Result, bool) {
	if !s.claimed.Load() {
		return generator.Result{}, false
	}
	return s.winner, true
}
