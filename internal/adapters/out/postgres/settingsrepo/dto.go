// Package settingsrepo persists the single store settings row.
package settingsrepo

import (
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/store"

	"github.com/shopspring/decimal"
)

// SettingsDTO is the row layout of store_settings. Only the row with
// id store.SettingsID is ever used.
type SettingsDTO struct {
	ID             int64           `gorm:"primaryKey;autoIncrement:false"`
	IsOpen         bool            `gorm:"not null"`
	OpeningHours   string          `gorm:"type:varchar(255);not null"`
	BannerActive   bool            `gorm:"not null"`
	BannerText     string          `gorm:"type:text"`
	BannerPrice    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	BannerDiscount int             `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

func (SettingsDTO) TableName() string {
	return "store_settings"
}

func fromDomain(s *store.Settings) SettingsDTO {
	banner := s.Banner()
	return SettingsDTO{
		ID:             store.SettingsID,
		IsOpen:         s.IsOpen(),
		OpeningHours:   s.OpeningHours(),
		BannerActive:   banner.Active(),
		BannerText:     banner.Text(),
		BannerPrice:    banner.Price().Decimal(),
		BannerDiscount: banner.Discount(),
		UpdatedAt:      s.UpdatedAt(),
	}
}

func toDomain(dto SettingsDTO) (*store.Settings, error) {
	price, err := kernel.NewMoney(dto.BannerPrice)
	if err != nil {
		return nil, err
	}

	banner, err := store.NewBanner(dto.BannerActive, dto.BannerText, price, dto.BannerDiscount)
	if err != nil {
		return nil, err
	}

	return store.NewSettings(dto.IsOpen, dto.OpeningHours, banner, dto.UpdatedAt.UTC())
}
