// Package leaderboard maintains the bounded, rank-ordered best-results
// list across all users, backed by a flat text file.
package leaderboard

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// MaxEntries is the bound on the persisted board size.
const MaxEntries = 10

// Entry is one row of the board.
type Entry struct {
	Owner string
	Score int

	// Seconds is the elapsed test time. Display data only; it never
	// affects ranking. Zero for rows persisted in the legacy two-field
	// schema.
	Seconds int
}

// Board holds the in-memory board and its backing file. It is constructed
// once at process start and shared by reference; there is no ambient state.
type Board struct {
	path    string
	entries []Entry
}

// New creates a Board backed by the file at path. Call Load before use.
func New(path string) *Board {
	return &Board{path: path}
}

// Load parses the backing file into the in-memory board. A missing file
// yields an empty board. Lines that do not split into two or three fields,
// or whose numeric fields do not parse, are skipped individually.
func (b *Board) Load() error {
	f, err := os.Open(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			b.entries = nil
			return nil
		}
		return fmt.Errorf("open leaderboard: %w", err)
	}
	defer f.Close()

	var entries []Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if e, ok := parseLine(sc.Text()); ok {
			entries = append(entries, e)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read leaderboard: %w", err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	b.entries = entries
	return nil
}

// Record appends a new result, re-ranks, truncates to MaxEntries, and
// rewrites the backing file. The sort is stable, so among equal scores
// earlier-recorded entries keep precedence. The updated view is returned
// even when persistence fails; the in-memory ranking is never rolled back.
func (b *Board) Record(owner string, score, seconds int) ([]Entry, error) {
	b.entries = append(b.entries, Entry{Owner: owner, Score: score, Seconds: seconds})

	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Score > b.entries[j].Score
	})
	if len(b.entries) > MaxEntries {
		b.entries = b.entries[:MaxEntries]
	}

	if err := b.persist(); err != nil {
		return b.View(), err
	}
	return b.View(), nil
}

// View returns a copy of the current ranked entries.
func (b *Board) View() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// persist rewrites the whole backing file. The write goes to a temp file
// in the same directory which is then renamed over the target, so a crash
// mid-write never leaves a truncated board.
func (b *Board) persist() error {
	dir := filepath.Dir(b.path)
	tmp, err := os.CreateTemp(dir, ".leaderboard-*")
	if err != nil {
		return fmt.Errorf("create leaderboard temp file: %w", err)
	}

	w := bufio.NewWriter(tmp)
	for _, e := range b.entries {
		fmt.Fprintf(w, "%s %d %d\n", e.Owner, e.Score, e.Seconds)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write leaderboard: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close leaderboard temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), b.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace leaderboard: %w", err)
	}
	return nil
}

// parseLine parses "owner score" or "owner score seconds".
func parseLine(line string) (Entry, bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 && len(fields) != 3 {
		return Entry{}, false
	}

	score, err := strconv.Atoi(fields[1])
	if err != nil {
		return Entry{}, false
	}

	e := Entry{Owner: fields[0], Score: score}
	if len(fields) == 3 {
		seconds, err := strconv.Atoi(fields[2])
		if err != nil {
			return Entry{}, false
		}
		e.Seconds = seconds
	}
	return e, true
}
