// Package fs provides a file-backed token store for the auth provider.
package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// TokenStore persists tokens as a JSON file on the filesystem. Writes go
// through to disk immediately so the token survives process restarts.
type TokenStore struct {
	mu     sync.RWMutex
	path   string
	tokens map[string]string
}

// tokenFile is the JSON structure stored on disk.
type tokenFile struct {
	Tokens map[string]string `json:"tokens"`
}

// NewTokenStore creates a file-backed token store.
// If path is empty, defaults to ~/.config/<appName>/tokens.json
func NewTokenStore(path string, appName string) (*TokenStore, error) {
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("could not determine config directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
		if appName == "" {
			appName = "auth-provider"
		}
		path = filepath.Join(configDir, appName, "tokens.json")
	}

	store := &TokenStore{
		path:   path,
		tokens: make(map[string]string),
	}

	// Load existing tokens if the file exists
	if err := store.load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return store, nil
}

// load reads tokens from disk
func (s *TokenStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file tokenFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse token file: %w", err)
	}

	s.tokens = file.Tokens
	if s.tokens == nil {
		s.tokens = make(map[string]string)
	}

	return nil
}

// Get returns the value stored under key, or "" if none.
func (s *TokenStore) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tokens[key], nil
}

// Set stores value under key and persists to disk.
func (s *TokenStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[key] = value
	return s.save()
}

// Remove deletes the value stored under key and persists to disk.
func (s *TokenStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, key)
	return s.save()
}

// save writes the token file. Caller must hold s.mu.
func (s *TokenStore) save() error {
	// Ensure directory exists with restricted permissions
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file := tokenFile{Tokens: s.tokens}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize tokens: %w", err)
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write tokens: %w", err)
	}

	return nil
}

// Path returns the path to the token file.
func (s *TokenStore) Path() string {
	return s.path
}
