package driven

import (
	"context"

	"github.com/custodia-labs/snipper-cli/internal/core/domain"
)

// ConfigStore loads and persists tool configuration.
type ConfigStore interface {
	// Load returns the stored settings merged over the defaults.
	// A missing config file is not an error; defaults are returned.
	Load(ctx context.Context) (*domain.Settings, error)

	// Save persists the settings.
	Save(ctx context.Context, settings *domain.Settings) error
}
