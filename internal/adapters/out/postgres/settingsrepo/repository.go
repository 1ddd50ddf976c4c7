package settingsrepo

import (
	"context"
	"errors"
	"time"

	"bakery/internal/core/domain/model/store"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepository implements ports.StoreSettingsRepository.
type GormSettingsRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db, now: time.Now}
}

// Get loads the settings row. Before the first Save the defaults are returned.
func (r *GormSettingsRepository) Get(ctx context.Context) (*store.Settings, error) {
	var dto SettingsDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", store.SettingsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return store.DefaultSettings(r.now()), nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save upserts the settings row.
func (r *GormSettingsRepository) Save(ctx context.Context, settings *store.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	dto := fromDomain(settings)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&dto).Error
}
