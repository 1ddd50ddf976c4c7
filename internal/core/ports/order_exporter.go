package ports

import (
	"io"

	"bakery/internal/core/domain/model/order"
)

// OrderExporter writes orders to a downloadable document.
type OrderExporter interface {
	// ContentType is the MIME type of the produced document.
	ContentType() string

	// FileExtension is the extension of the produced document, with the dot.
	FileExtension() string

	// Export writes orders, in the given order, to w.
	Export(w io.Writer, orders []*order.Order) error
}
