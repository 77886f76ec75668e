// Package anim provides a cooperative, single-threaded frame scheduler.
//
// It mirrors a host's "request animation frame" primitive: callbacks are
// queued for the next frame, receive the host timestamp, and must re-request
// themselves to keep running. Every request can be cancelled before it runs.
package anim

import (
	"sort"
	"time"
)

// FrameFunc is invoked once per requested frame with the host timestamp.
type FrameFunc func(now time.Duration)

// Handle identifies a pending frame request.
type Handle uint64

// Scheduler queues frame callbacks. It is not safe for concurrent use; the
// host drives it from its render loop.
type Scheduler struct {
	seq     Handle
	pending map[Handle]FrameFunc
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[Handle]FrameFunc)}
}

// RequestFrame queues fn for the next Tick and returns its handle.
func (s *Scheduler) RequestFrame(fn FrameFunc) Handle {
	s.seq++
	s.pending[s.seq] = fn
	return s.seq
}

// CancelFrame drops a pending request. Unknown handles are ignored.
func (s *Scheduler) CancelFrame(h Handle) {
	delete(s.pending, h)
}

// Pending reports the number of queued callbacks.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Tick runs every callback queued before the call, in request order.
// Callbacks requested while ticking wait for the next Tick.
func (s *Scheduler) Tick(now time.Duration) {
	if len(s.pending) == 0 {
		return
	}
	handles := make([]Handle, 0, len(s.pending))
	for h := range s.pending {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })

	for _, h := range handles {
		fn, ok := s.pending[h]
		if !ok {
			// cancelled by an earlier callback in this tick
			continue
		}
		delete(s.pending, h)
		fn(now)
	}
}
