package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"beszelctl/internal/hub"
	"beszelctl/pkg/logging"
)

// DefaultConfigDir is the per-user directory holding the credential file,
// relative to the home directory.
const DefaultConfigDir = ".config/beszelctl"

// credentialsFile is the name of the persisted credential file.
const credentialsFile = "credentials.json"

// Environment variables that shadow the persisted credentials for the
// duration of a single invocation. They never mutate the file.
const (
	EnvURL   = "BESZEL_URL"
	EnvToken = "BESZEL_TOKEN"
)

// Credentials holds the hub URL and the auth token obtained by login.
// An empty Token means unauthenticated; an empty URL means the store has
// never been initialized.
type Credentials struct {
	URL   string `json:"url"`
	Token string `json:"token,omitempty"`
}

// Store persists Credentials in a restricted-permission JSON file.
//
// SECURITY: the file is created with 0600 permissions from the start (no
// chmod-after-write race) and the directory with 0700. Token values are
// never logged.
type Store struct {
	dir string // Optional custom directory; defaults to ~/.config/beszelctl
}

// NewStore creates a Store using the default per-user configuration
// directory.
func NewStore() *Store {
	return &Store{}
}

// NewStoreWithDir creates a Store rooted at a custom directory. Used by
// tests and the --config-dir flag.
func NewStoreWithDir(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the location of the credential file.
func (s *Store) Path() (string, error) {
	if s.dir != "" {
		return filepath.Join(s.dir, credentialsFile), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, DefaultConfigDir, credentialsFile), nil
}

// Load reads the persisted credentials, returning zero Credentials when no
// file exists. BESZEL_URL and BESZEL_TOKEN, when set, override the loaded
// fields for this process only; the file is never written back.
func (s *Store) Load() (Credentials, error) {
	creds, err := s.LoadFile()
	if err != nil {
		return creds, err
	}

	if v := os.Getenv(EnvURL); v != "" {
		creds.URL = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		creds.Token = v
	}

	return creds, nil
}

// LoadFile reads the persisted credentials without applying environment
// overrides. Mutating commands (login, config set-url) read through this
// so an env override can never leak into the file on the next Save.
func (s *Store) LoadFile() (Credentials, error) {
	var creds Credentials

	path, err := s.Path()
	if err != nil {
		return creds, &hub.PersistenceError{Path: credentialsFile, Reason: err}
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return creds, nil
	case err != nil:
		return creds, &hub.PersistenceError{Path: path, Reason: err}
	}

	if err := json.Unmarshal(data, &creds); err != nil {
		return creds, &hub.PersistenceError{Path: path, Reason: fmt.Errorf("failed to parse credential file: %w", err)}
	}
	return creds, nil
}

// Save writes the credentials atomically: marshal to a temp file in the
// target directory, then rename over the final path. A concurrent
// invocation never observes a partial file, and the file is owner
// read/write only from creation.
func (s *Store) Save(creds Credentials) error {
	path, err := s.Path()
	if err != nil {
		return &hub.PersistenceError{Path: credentialsFile, Reason: err}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return &hub.PersistenceError{Path: path, Reason: fmt.Errorf("failed to create directory: %w", err)}
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return &hub.PersistenceError{Path: path, Reason: fmt.Errorf("failed to marshal credentials: %w", err)}
	}

	tmp, err := os.CreateTemp(dir, credentialsFile+".tmp-*")
	if err != nil {
		return &hub.PersistenceError{Path: path, Reason: err}
	}
	tmpName := tmp.Name()
	// CreateTemp uses 0600 already; keep an explicit chmod in case the
	// process umask story changes.
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &hub.PersistenceError{Path: path, Reason: err}
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &hub.PersistenceError{Path: path, Reason: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &hub.PersistenceError{Path: path, Reason: err}
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &hub.PersistenceError{Path: path, Reason: err}
	}

	logging.Info("CredentialStore", "Saved credentials for %s to %s", creds.URL, path)
	return nil
}

// Clear removes the persisted credential file. A missing file is a no-op.
func (s *Store) Clear() error {
	path, err := s.Path()
	if err != nil {
		return &hub.PersistenceError{Path: credentialsFile, Reason: err}
	}

	err = os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return &hub.PersistenceError{Path: path, Reason: err}
	}

	logging.Info("CredentialStore", "Cleared credentials at %s", path)
	return nil
}
