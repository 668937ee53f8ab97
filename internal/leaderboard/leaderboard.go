// Package leaderboard keeps the best scores of one process, shared by every
// game session it serves.
package leaderboard

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode"

	"github.com/tomz197/alien-invasion/internal/config"
	"github.com/tomz197/alien-invasion/internal/stats"
)

// DefaultName replaces empty player names.
const DefaultName = "player"

// Entry is a single score on the board.
type Entry struct {
	Name  string
	Score int
	Level int
	seq   int // Submission order, used for deterministic tie-break when scores are equal
}

// Board is a goroutine-safe table of the highest scores.
type Board struct {
	mu      sync.RWMutex
	size    int
	entries []Entry // Sorted by score descending, then submission order
	nextSeq int
}

// New creates a board holding at most size entries.
func New(size int) *Board {
	if size <= 0 {
		size = config.LeaderboardSize
	}
	return &Board{size: size}
}

// Submit records a finished game. It returns the 1-based rank of the entry,
// or 0 if the score did not make the board. Scores of zero are ignored.
func (b *Board) Submit(name string, score, level int) int {
	if score <= 0 {
		return 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	e := Entry{Name: CleanName(name), Score: score, Level: level, seq: b.nextSeq}
	b.nextSeq++

	// Equal scores rank after earlier submissions
	i, _ := slices.BinarySearchFunc(b.entries, e, compare)
	if i >= b.size {
		return 0
	}
	b.entries = slices.Insert(b.entries, i, e)
	if len(b.entries) > b.size {
		b.entries = b.entries[:b.size]
	}
	return i + 1
}

func compare(a, b Entry) int {
	if a.Score != b.Score {
		return b.Score - a.Score
	}
	return a.seq - b.seq
}

// Top returns a copy of the best n entries, best first.
func (b *Board) Top(n int) []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n = min(max(n, 0), len(b.entries))
	return slices.Clone(b.entries[:n])
}

// Best returns the highest entry, if any.
func (b *Board) Best() (Entry, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if len(b.entries) == 0 {
		return Entry{}, false
	}
	return b.entries[0], true
}

// Len returns the number of entries on the board.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// CleanName strips control characters, trims spaces and limits the length
// of a player name. Empty names become DefaultName.
func CleanName(name string) string {
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)

	if r := []rune(name); len(r) > config.MaxPlayerName {
		name = string(r[:config.MaxPlayerName])
	}
	if name == "" {
		return DefaultName
	}
	return name
}

// Lines formats entries as ranked rows, e.g. "1. alice 12,340 L4".
func Lines(entries []Entry) []string {
	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		lines = append(lines, fmt.Sprintf("%d. %s %s %s", i+1, e.Name, stats.FormatScore(e.Score), stats.FormatLevel(e.Level)))
	}
	return lines
}
