// Package userstore keeps the flat-file credential list. The rest of the
// application only ever sees the authenticated username it yields.
package userstore

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrEmptyCredentials is returned when the username or password is blank.
	ErrEmptyCredentials = errors.New("username and password must not be empty")

	// ErrBadCredentials is returned for a wrong password.
	ErrBadCredentials = errors.New("wrong password")

	// ErrUserExists is returned when registering a taken username.
	ErrUserExists = errors.New("username already taken")
)

// Store reads and appends "username password" lines in a flat file.
type Store struct {
	path string
}

// New creates a Store backed by the file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Login authenticates user. An unknown username is registered on the spot,
// so first-time users can log straight in.
func (s *Store) Login(user, pass string) error {
	user, pass = strings.TrimSpace(user), strings.TrimSpace(pass)
	if user == "" || pass == "" {
		return ErrEmptyCredentials
	}

	stored, found, err := s.lookup(user)
	if err != nil {
		return err
	}
	if !found {
		return s.append(user, pass)
	}
	if stored != pass {
		return ErrBadCredentials
	}
	return nil
}

// Register adds a new user, rejecting duplicates.
func (s *Store) Register(user, pass string) error {
	user, pass = strings.TrimSpace(user), strings.TrimSpace(pass)
	if user == "" || pass == "" {
		return ErrEmptyCredentials
	}

	_, found, err := s.lookup(user)
	if err != nil {
		return err
	}
	if found {
		return ErrUserExists
	}
	return s.append(user, pass)
}

// lookup scans the file for user. A missing file means no users yet.
// Malformed lines are skipped.
func (s *Store) lookup(user string) (pass string, found bool, err error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("open user file: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		if fields[0] == user {
			return fields[1], true, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", false, fmt.Errorf("read user file: %w", err)
	}
	return "", false, nil
}

func (s *Store) append(user, pass string) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open user file: %w", err)
	}
	if _, err := fmt.Fprintf(f, "%s %s\n", user, pass); err != nil {
		f.Close()
		return fmt.Errorf("append user file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close user file: %w", err)
	}
	return nil
}
