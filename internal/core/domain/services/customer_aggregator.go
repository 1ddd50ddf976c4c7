package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/order"
)

// CustomerAggregator rebuilds customer summaries from order history.
//
// Orders are grouped by trimmed phone number. For each phone the most
// recent order provides the name and address, total orders counts every
// order (cancelled ones included, as they were still placed), and the
// first order sets the creation time.
type CustomerAggregator struct{}

func NewCustomerAggregator() CustomerAggregator {
	return CustomerAggregator{}
}

type customerAccumulator struct {
	latest *order.Order
	first  time.Time
	count  int
}

// Aggregate returns one customer per phone, most recent order first.
// Orders without a phone are skipped.
func (CustomerAggregator) Aggregate(orders []*order.Order) ([]*customer.Customer, error) {
	byPhone := make(map[string]*customerAccumulator)
	for _, o := range orders {
		phone := strings.TrimSpace(o.Details().Phone())
		if phone == "" {
			continue
		}
		acc, ok := byPhone[phone]
		if !ok {
			acc = &customerAccumulator{latest: o, first: o.CreatedAt()}
			byPhone[phone] = acc
		}
		acc.count++
		if o.CreatedAt().After(acc.latest.CreatedAt()) {
			acc.latest = o
		}
		if o.CreatedAt().Before(acc.first) {
			acc.first = o.CreatedAt()
		}
	}

	customers := make([]*customer.Customer, 0, len(byPhone))
	var errList []error
	for phone, acc := range byPhone {
		c, err := customer.NewCustomer(
			acc.latest.Details().Name(),
			phone,
			acc.latest.Details().Address(),
			acc.count,
			acc.latest.CreatedAt(),
			acc.first,
		)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		customers = append(customers, c)
	}

	sort.Slice(customers, func(i, j int) bool {
		if customers[i].LastOrderAt().Equal(customers[j].LastOrderAt()) {
			return customers[i].Phone() < customers[j].Phone()
		}
		return customers[i].LastOrderAt().After(customers[j].LastOrderAt())
	})
	return customers, errors.Join(errList...)
}
