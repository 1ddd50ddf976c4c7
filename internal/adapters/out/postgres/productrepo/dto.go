// Package productrepo persists catalog products.
package productrepo

import (
	"database/sql/driver"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/kernel"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// ProductDTO is the row layout of the products table.
type ProductDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement:false"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Images      ImageList       `gorm:"not null"`
	Category    string          `gorm:"type:varchar(32);not null;index"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// ImageList stores image URLs as a text[] on PostgreSQL and as the same
// array literal in a text column elsewhere.
type ImageList pq.StringArray

// GormDBDataType picks the column type per dialect.
func (ImageList) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

// Value implements driver.Valuer. A nil list is stored as an empty array.
func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return "{}", nil
	}
	return pq.StringArray(l).Value()
}

// Scan implements sql.Scanner.
func (l *ImageList) Scan(src any) error {
	return (*pq.StringArray)(l).Scan(src)
}

func fromDomain(p *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price().Decimal(),
		Images:      ImageList(p.Images()),
		Category:    p.Category().String(),
	}
}

func toDomain(dto ProductDTO) (*catalog.Product, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	category, err := catalog.ParseCategory(dto.Category)
	if err != nil {
		return nil, err
	}

	return catalog.NewProduct(dto.ID, dto.Name, dto.Description, price, []string(dto.Images), category)
}
