package customerrepo

import (
	"context"

	"bakery/internal/core/domain/model/customer"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const upsertBatchSize = 100

// GormCustomerRepository implements ports.CustomerRepository.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// UpsertAll inserts or overwrites customers by id.
func (r *GormCustomerRepository) UpsertAll(ctx context.Context, customers []*customer.Customer) error {
	if len(customers) == 0 {
		return nil
	}

	dtos := make([]CustomerDTO, 0, len(customers))
	for _, c := range customers {
		if err := c.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(c))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "address", "total_orders", "last_order_at", "created_at",
		}),
	}).CreateInBatches(&dtos, upsertBatchSize).Error
}

// DeleteAllExcept drops customers that no longer have orders.
func (r *GormCustomerRepository) DeleteAllExcept(ctx context.Context, keep []*customer.Customer) error {
	tx := r.db.WithContext(ctx)
	if len(keep) == 0 {
		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&CustomerDTO{}).Error
	}

	ids := make([]string, 0, len(keep))
	for _, c := range keep {
		ids = append(ids, c.ID().String())
	}
	return tx.Where("id NOT IN ?", ids).Delete(&CustomerDTO{}).Error
}

// GetAll returns customers, most recent order first.
func (r *GormCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	var dtos []CustomerDTO
	if err := r.db.WithContext(ctx).Order("last_order_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	customers := make([]*customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, nil
}
