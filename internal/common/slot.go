package common

import "sync/atomic"

// RequestSlot guards a logical slot (current search, current selected
// location) against stale in-flight responses. Each new request takes a
// monotonic sequence; a completion is applied only if its sequence still
// matches the slot. Last request wins by issuance order, not completion
// order.
type RequestSlot struct {
	seq atomic.Uint64
}

// Begin marks a new in-flight request and returns its sequence.
func (s *RequestSlot) Begin() uint64 {
	return s.seq.Add(1)
}

// Current reports whether seq is still the latest request for the slot.
func (s *RequestSlot) Current(seq uint64) bool {
	return s.seq.Load() == seq
}

// Clear supersedes any in-flight request without starting a new one,
// e.g. when a selection is toggled off.
func (s *RequestSlot) Clear() {
	s.seq.Add(1)
}
