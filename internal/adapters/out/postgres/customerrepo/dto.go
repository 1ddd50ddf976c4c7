// Package customerrepo persists customer summaries.
package customerrepo

import (
	"time"

	"bakery/internal/core/domain/model/customer"
)

// CustomerDTO is the row layout of the customers table.
type CustomerDTO struct {
	ID          string    `gorm:"type:varchar(36);primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Phone       string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Address     string    `gorm:"type:text"`
	TotalOrders int       `gorm:"not null"`
	LastOrderAt time.Time `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:          c.ID().String(),
		Name:        c.Name(),
		Phone:       c.Phone(),
		Address:     c.Address(),
		TotalOrders: c.TotalOrders(),
		LastOrderAt: c.LastOrderAt(),
		CreatedAt:   c.CreatedAt(),
	}
}

// toDomain rebuilds the customer. The id is derived from the phone, so the
// stored id is not read back.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	return customer.NewCustomer(dto.Name, dto.Phone, dto.Address, dto.TotalOrders, dto.LastOrderAt.UTC(), dto.CreatedAt.UTC())
}
