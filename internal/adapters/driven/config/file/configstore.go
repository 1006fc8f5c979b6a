package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/snipper-cli/internal/core/domain"
	"github.com/custodia-labs/snipper-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// fileSettings is the TOML shape of the config file. All fields are
// optional; absent fields keep their defaults.
type fileSettings struct {
	Marker             *string  `toml:"marker"`
	SourceExtensions   []string `toml:"source_extensions"`
	DocumentExtensions []string `toml:"document_extensions"`
	SnippetExtension   *string  `toml:"snippet_extension"`
	Colour             *bool    `toml:"colour"`
}

// ConfigStore is a file-based implementation of driven.ConfigStore
// using TOML.
type ConfigStore struct {
	mu       sync.Mutex
	filePath string
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.snipper/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".snipper")
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return nil, err
	}

	return &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}, nil
}

// Load returns the stored settings merged over the defaults. A missing
// config file yields the defaults.
func (s *ConfigStore) Load(_ context.Context) (*domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := domain.DefaultSettings()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &settings, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var stored fileSettings
	if err := toml.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if stored.Marker != nil {
		settings.Marker = *stored.Marker
	}
	if stored.SourceExtensions != nil {
		settings.SourceExtensions = stored.SourceExtensions
	}
	if stored.DocumentExtensions != nil {
		settings.DocumentExtensions = stored.DocumentExtensions
	}
	if stored.SnippetExtension != nil {
		settings.SnippetExtension = *stored.SnippetExtension
	}
	if stored.Colour != nil {
		settings.Colour = *stored.Colour
	}
	return &settings, nil
}

// Save persists the settings to the config file.
func (s *ConfigStore) Save(_ context.Context, settings *domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := fileSettings{
		Marker:             &settings.Marker,
		SourceExtensions:   settings.SourceExtensions,
		DocumentExtensions: settings.DocumentExtensions,
		SnippetExtension:   &settings.SnippetExtension,
		Colour:             &settings.Colour,
	}

	data, err := toml.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
