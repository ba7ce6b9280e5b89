package repo

import "github.com/hamed0406/uptimemonitor/internal/domain"

// HistoryStore is the newest-first log of probe results.
type HistoryStore interface {
	// Append inserts r at the front, evicting the oldest entry once the store
	// is over capacity. It cannot fail.
	Append(r domain.CheckResult)
	// Snapshot returns a copy of the current entries, newest first.
	Snapshot() []domain.CheckResult
	Len() int
}
