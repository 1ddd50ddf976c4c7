package ports

import (
	"context"

	"bakery/internal/core/domain/model/store"
)

// StoreSettingsRepository reads and writes the single settings row.
type StoreSettingsRepository interface {
	// Get returns the settings. A missing row yields the default settings.
	Get(ctx context.Context) (*store.Settings, error)

	// Save inserts or replaces the settings row.
	Save(ctx context.Context, settings *store.Settings) error
}
