// Package leaderboard keeps a ranked record of prior submissions. It is a
// supplemented feature — spec.md's core treats leaderboard bookkeeping as an
// external collaborator, but every submission still needs somewhere to land.
package leaderboard

import (
	"sort"
	"sync"

	"goracer/internal/sim"
)

// Entry is one ranked submission.
type Entry struct {
	Username string
	Score    sim.Score
	Source   string
}

// less orders entries by the leaderboard's ranking law: sim.Score's own
// total order first (successful beats unsuccessful, smaller time beats
// larger), then shorter source code breaks a tie.
func less(a, b Entry) bool {
	if a.Score != b.Score {
		return a.Score.Less(b.Score)
	}
	return len(a.Source) < len(b.Source)
}

// Leaderboard is a mutex-guarded, score-ordered set of entries. The zero
// value is ready to use.
type Leaderboard struct {
	mu      sync.RWMutex
	entries []Entry
}

// Add records one submission's outcome.
func (l *Leaderboard) Add(username, source string, score sim.Score) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{Username: username, Score: score, Source: source})
}

// TopN returns the n best-ranked entries, best first. It is a pure function
// of the current multiset of entries: insertion order never affects the
// result. If n exceeds the number of recorded entries, all of them are
// returned.
func (l *Leaderboard) TopN(n int) []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ranked := make([]Entry, len(l.entries))
	copy(ranked, l.entries)
	sort.Slice(ranked, func(i, j int) bool { return less(ranked[i], ranked[j]) })

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
