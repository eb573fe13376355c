package tw

import (
	"sort"
	"sync"
)

// Ledger counts how often each base class has been used. Counts only grow
// until Reset. It is safe for concurrent use.
type Ledger struct {
	mu     sync.Mutex
	counts map[string]*usage
	seq    uint64
}

type usage struct {
	count int
	// last is the ledger sequence number of the latest increment; it breaks
	// ties in MostUsed.
	last uint64
}

func NewLedger() *Ledger {
	return &Ledger{counts: make(map[string]*usage)}
}

// Record increments the count for base and returns the new count.
func (l *Ledger) Record(base string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	u, ok := l.counts[base]
	if !ok {
		u = &usage{}
		l.counts[base] = u
	}
	u.count++
	u.last = l.seq
	return u.count
}

// Count returns how often base has been recorded.
func (l *Ledger) Count(base string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if u, ok := l.counts[base]; ok {
		return u.count
	}
	return 0
}

// MostUsed returns up to limit base classes by descending count. Equal
// counts are ordered most recently incremented first.
func (l *Ledger) MostUsed(limit int) []string {
	if limit <= 0 {
		return nil
	}
	l.mu.Lock()
	type entry struct {
		base string
		usage
	}
	entries := make([]entry, 0, len(l.counts))
	for base, u := range l.counts {
		entries = append(entries, entry{base: base, usage: *u})
	}
	l.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].last > entries[j].last
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.base
	}
	return out
}

// Reset clears every count at once.
func (l *Ledger) Reset() {
	l.mu.Lock()
	l.counts = make(map[string]*usage)
	l.mu.Unlock()
}

// Snapshot copies the current counts.
func (l *Ledger) Snapshot() map[string]int {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]int, len(l.counts))
	for base, u := range l.counts {
		out[base] = u.count
	}
	return out
}

// Len reports how many distinct classes have been recorded.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.counts)
}
