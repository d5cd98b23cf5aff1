package sim

import (
	"sync"
	"time"
)

// tickHistory records the build time of the last N ticks in a ring buffer so
// the HUD can show a smoothed figure.
type tickHistory struct {
	buffer    []time.Duration
	nextIndex int
	filled    int
	mu        sync.RWMutex
}

func newTickHistory(ringSize int) *tickHistory {
	return &tickHistory{buffer: make([]time.Duration, ringSize)}
}

func (h *tickHistory) record(d time.Duration) {
	h.mu.Lock()
	h.buffer[h.nextIndex] = d
	h.nextIndex++
	if h.nextIndex >= len(h.buffer) {
		h.nextIndex = 0
	}
	if h.filled < len(h.buffer) {
		h.filled++
	}
	h.mu.Unlock()
}

// snapshot returns up to the last n durations, most recent last.
func (h *tickHistory) snapshot(n int) []time.Duration {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if n > h.filled {
		n = h.filled
	}
	out := make([]time.Duration, n)
	idx := h.nextIndex - n
	if idx < 0 {
		idx += len(h.buffer)
	}
	for i := range out {
		out[i] = h.buffer[idx]
		idx++
		if idx >= len(h.buffer) {
			idx = 0
		}
	}
	return out
}

func (h *tickHistory) mean() time.Duration {
	s := h.snapshot(len(h.buffer))
	if len(s) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range s {
		sum += d
	}
	return sum / time.Duration(len(s))
}
