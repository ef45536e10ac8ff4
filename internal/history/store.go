// Package history persists per-user transcripts of finished sessions.
// The log is append-only: blocks are added, never rewritten.
package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abhisek/mathdrill/internal/session"
)

// ErrNoHistory is returned by Read when the user has no transcript file yet.
var ErrNoHistory = errors.New("no history recorded")

// Store writes one transcript file per user under a directory.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Record implements session.Sink.
func (s *Store) Record(res *session.Result) error {
	return s.Append(res)
}

// Append writes the transcript block for res to the owner's log. The file
// is opened for append, written, and closed within this call.
func (s *Store) Append(res *session.Result) error {
	f, err := os.OpenFile(s.path(res.Owner), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open history log: %w", err)
	}

	if _, err := f.WriteString(Transcript(res)); err != nil {
		f.Close()
		return fmt.Errorf("append history log: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close history log: %w", err)
	}
	return nil
}

// Read returns the raw contents of the owner's transcript file.
func (s *Store) Read(owner string) (string, error) {
	data, err := os.ReadFile(s.path(owner))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoHistory
		}
		return "", fmt.Errorf("read history log: %w", err)
	}
	return string(data), nil
}

func (s *Store) path(owner string) string {
	return filepath.Join(s.dir, owner+".txt")
}
