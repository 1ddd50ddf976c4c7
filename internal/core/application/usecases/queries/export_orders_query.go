package queries

import (
	"errors"

	"bakery/internal/pkg/guard"
)

var ErrExportOrdersQueryIsNotConstructed = errors.New(
	"ExportOrdersQuery must be created via NewExportOrdersQuery constructor",
)

// ExportOrdersQuery produces a downloadable document with every order.
type ExportOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewExportOrdersQuery() ExportOrdersQuery {
	return ExportOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q ExportOrdersQuery) Validate() error {
	return q.guard.Validate(ErrExportOrdersQueryIsNotConstructed)
}

// ExportOrdersQueryResponse is the rendered document.
type ExportOrdersQueryResponse struct {
	FileName    string
	ContentType string
	Content     []byte
}
