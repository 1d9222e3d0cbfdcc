// Package prefs persists the widget's user preferences as a small JSON
// dotfile in the home directory.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Preferences is the persisted record. Only dark_mode is recognised;
// unknown keys in the file are ignored on load and dropped on save.
type Preferences struct {
	DarkMode bool `json:"dark_mode"`
}

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath joins the user's home directory with name.
func DefaultPath(name string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, name), nil
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the record. A missing file is not an error and yields the
// zero value; unreadable or malformed files return an error and the zero
// value, leaving the fallback decision to the caller.
func (s *Store) Load() (Preferences, error) {
	var p Preferences

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return p, fmt.Errorf("read preferences %s: %w", s.path, err)
	}

	if err := json.Unmarshal(data, &p); err != nil {
		return Preferences{}, fmt.Errorf("decode preferences %s: %w", s.path, err)
	}
	return p, nil
}

// Save overwrites the file with exactly the recognised keys.
func (s *Store) Save(p Preferences) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write preferences %s: %w", s.path, err)
	}
	return nil
}
