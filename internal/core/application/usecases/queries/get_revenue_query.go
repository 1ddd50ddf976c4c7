package queries

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

const (
	minRevenueYear = 2000
	maxRevenueYear = 9999

	// RevenueMonthLayout is the wire format of a report month.
	RevenueMonthLayout = "2006-01"
)

var ErrGetRevenueQueryIsNotConstructed = errors.New(
	"GetRevenueQuery must be created via NewGetRevenueQuery constructor",
)

// GetRevenueQuery reports delivered revenue for one calendar month.
//
// Example:
//
//	query, err := NewGetRevenueQueryForMonth("2025-03")
//	report, err := handler.Handle(ctx, query)
//	fmt.Println(report.Total) // 1234.50
type GetRevenueQuery struct {
	year  int
	month time.Month
	guard guard.ConstructorGuard
}

// NewGetRevenueQuery validates the year and month.
func NewGetRevenueQuery(year int, month time.Month) (GetRevenueQuery, error) {
	var errList []error
	if year < minRevenueYear || year > maxRevenueYear {
		errList = append(errList, errs.NewValueIsOutOfRangeError("year", year, minRevenueYear, maxRevenueYear))
	}
	if month < time.January || month > time.December {
		errList = append(errList, errs.NewValueIsOutOfRangeError("month", int(month), int(time.January), int(time.December)))
	}
	if err := errors.Join(errList...); err != nil {
		return GetRevenueQuery{}, err
	}

	return GetRevenueQuery{year: year, month: month, guard: guard.NewConstructorGuard()}, nil
}

// NewGetRevenueQueryForMonth parses a "YYYY-MM" month.
func NewGetRevenueQueryForMonth(month string) (GetRevenueQuery, error) {
	t, err := time.Parse(RevenueMonthLayout, strings.TrimSpace(month))
	if err != nil {
		return GetRevenueQuery{}, errs.NewValueIsInvalidErrorWithCause("month is invalid",
			fmt.Errorf("%q is not in YYYY-MM format", month))
	}
	return NewGetRevenueQuery(t.Year(), t.Month())
}

func (q GetRevenueQuery) Validate() error {
	return q.guard.Validate(ErrGetRevenueQueryIsNotConstructed)
}

func (q GetRevenueQuery) Year() int {
	return q.year
}

func (q GetRevenueQuery) Month() time.Month {
	return q.month
}

// GetRevenueQueryResponse is the monthly report.
type GetRevenueQueryResponse struct {
	Year            int
	Month           time.Month
	Total           kernel.Money
	DeliveredOrders int
	Days            []DailyRevenueResponse
}

// DailyRevenueResponse is one day of the report, most recent first.
type DailyRevenueResponse struct {
	Day    time.Time
	Total  kernel.Money
	Orders int
}
