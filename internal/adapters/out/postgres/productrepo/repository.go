package productrepo

import (
	"context"
	"errors"
	"fmt"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add saves a new product to the database.
func (r *GormProductRepository) Add(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := fromDomain(product)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes the product's mutable fields back to the database.
func (r *GormProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := fromDomain(product)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":        dto.Name,
		"description": dto.Description,
		"price":       dto.Price,
		"images":      dto.Images,
		"category":    dto.Category,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("productId", fmt.Sprint(dto.ID))
	}

	return nil
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id int64) (*catalog.Product, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productId", fmt.Sprint(id))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the products with the given ids, ordered by id.
func (r *GormProductRepository) GetByIDs(ctx context.Context, ids []int64) ([]*catalog.Product, error) {
	if len(ids) == 0 {
		return []*catalog.Product{}, nil
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]*catalog.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// Count returns the number of stored products.
func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&ProductDTO{}).Count(&n).Error
	return n, err
}
