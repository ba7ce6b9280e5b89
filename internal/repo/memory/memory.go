package memory

import (
	"sync"

	"github.com/hamed0406/uptimemonitor/internal/domain"
)

// DefaultCapacity is the number of results kept by the API process.
const DefaultCapacity = 20

// History is a bounded, newest-first, in-memory result log. Append holds the
// write lock for the whole insert+evict so concurrent probes never lose an
// update or push the log past its capacity.
type History struct {
	mu       sync.RWMutex
	capacity int
	entries  []domain.CheckResult
}

// New returns an empty history. A capacity below 1 falls back to
// DefaultCapacity.
func New(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &History{
		capacity: capacity,
		entries:  make([]domain.CheckResult, 0, capacity+1),
	}
}

func (h *History) Append(r domain.CheckResult) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries, domain.CheckResult{})
	copy(h.entries[1:], h.entries[:len(h.entries)-1])
	h.entries[0] = r

	if len(h.entries) > h.capacity {
		h.entries[h.capacity] = domain.CheckResult{}
		h.entries = h.entries[:h.capacity]
	}
}

func (h *History) Snapshot() []domain.CheckResult {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]domain.CheckResult, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

func (h *History) Capacity() int { return h.capacity }
