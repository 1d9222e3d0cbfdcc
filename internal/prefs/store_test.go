package prefs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, contents *string) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".retirement_countdown_config.json")
	if contents != nil {
		require.NoError(t, os.WriteFile(path, []byte(*contents), 0o600))
	}
	return NewStore(path)
}

func ptr(s string) *string { return &s }

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		contents *string
		want     bool
		wantErr  bool
	}{
		{name: "missing file", contents: nil, want: false},
		{name: "dark", contents: ptr(`{"dark_mode": true}`), want: true},
		{name: "light", contents: ptr(`{"dark_mode": false}`), want: false},
		{name: "unknown keys ignored", contents: ptr(`{"dark_mode": true, "opacity": 0.5}`), want: true},
		{name: "key absent", contents: ptr(`{}`), want: false},
		{name: "invalid json", contents: ptr(`{dark_mode: yes`), wantErr: true},
		{name: "wrong type", contents: ptr(`{"dark_mode": "true"}`), wantErr: true},
		{name: "empty file", contents: ptr(``), wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := newTestStore(t, tt.contents)
			p, err := store.Load()
			if tt.wantErr {
				require.Error(t, err)
				require.False(t, p.DarkMode)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, p.DarkMode)
		})
	}
}

func TestLoadUnreadablePath(t *testing.T) {
	t.Parallel()

	// A directory where the file should be fails to read.
	dir := t.TempDir()
	p, err := NewStore(dir).Load()
	require.Error(t, err)
	require.False(t, p.DarkMode)
}

func TestSaveOverwritesWithSingleKey(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, ptr(`{"dark_mode": false, "legacy": [1, 2, 3]}`))

	require.NoError(t, store.Save(Preferences{DarkMode: true}))
	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	require.Equal(t, `{"dark_mode":true}`, strings.TrimSpace(string(data)))

	require.NoError(t, store.Save(Preferences{DarkMode: false}))
	data, err = os.ReadFile(store.Path())
	require.NoError(t, err)
	require.Equal(t, `{"dark_mode":false}`, strings.TrimSpace(string(data)))

	p, err := store.Load()
	require.NoError(t, err)
	require.False(t, p.DarkMode)
}

func TestSaveIntoMissingDirectoryFails(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "nope", "prefs.json"))
	require.Error(t, store.Save(Preferences{DarkMode: true}))
}

func TestDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	path, err := DefaultPath(".retirement_countdown_config.json")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".retirement_countdown_config.json"), path)
}
