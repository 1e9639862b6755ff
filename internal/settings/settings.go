// Package settings persists the social-posting credentials as a single
// JSON blob on disk, outside the in-memory application state.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// SocialCredentials is the stored page identity for the posting client.
type SocialCredentials struct {
	PageID      string `json:"pageId"`
	AccessToken string `json:"accessToken"`
}

// Configured reports whether both fields are present.
func (c SocialCredentials) Configured() bool {
	return c.PageID != "" && c.AccessToken != ""
}

// Store reads and writes the credentials file. Load tolerates a missing
// file (first run) by returning zero credentials.
type Store struct {
	mu     sync.Mutex
	path   string
	logger zerolog.Logger
}

// NewStore creates a store backed by the given file path.
func NewStore(path string, logger zerolog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger.With().Str("component", "settings-store").Logger(),
	}
}

// Load reads the stored credentials. A missing file yields zero
// credentials and no error.
func (s *Store) Load() (SocialCredentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug().Str("file", s.path).Msg("no stored credentials yet")
			return SocialCredentials{}, nil
		}
		s.logger.Error().Err(err).Str("file", s.path).Msg("failed to read credentials file")
		return SocialCredentials{}, fmt.Errorf("failed to read credentials file %s: %w", s.path, err)
	}

	var creds SocialCredentials
	if err := json.Unmarshal(data, &creds); err != nil {
		s.logger.Error().Err(err).Str("file", s.path).Msg("failed to parse credentials file")
		return SocialCredentials{}, fmt.Errorf("failed to parse credentials file %s: %w", s.path, err)
	}

	return creds, nil
}

// Save writes the credentials, creating the parent directory if needed.
func (s *Store) Save(creds SocialCredentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create credentials directory: %w", err)
	}

	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		s.logger.Error().Err(err).Str("file", s.path).Msg("failed to write credentials file")
		return fmt.Errorf("failed to write credentials file %s: %w", s.path, err)
	}

	s.logger.Info().Str("file", s.path).Str("page_id", creds.PageID).Msg("social credentials saved")
	return nil
}
