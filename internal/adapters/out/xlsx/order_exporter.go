// Package xlsx writes orders to an Excel workbook.
package xlsx

import (
	"fmt"
	"io"
	"strings"
	"time"

	"bakery/internal/core/domain/model/order"

	"github.com/tealeg/xlsx"
)

const (
	ordersSheet = "Pedidos"
	itemsSheet  = "Itens"
	moneyFormat = "#,##0.00"
	timeLayout  = "2006-01-02 15:04"
)

var (
	orderHeaders = []string{
		"Pedido", "Data", "Cliente", "Telefone", "Endereço",
		"Itens", "Total", "Pagamento", "Status", "Observações",
	}
	itemHeaders = []string{"Pedido", "Produto", "Quantidade", "Preço", "Subtotal"}
)

// OrderExporter implements ports.OrderExporter. The workbook has one row
// per order on the first sheet and one row per item on the second.
type OrderExporter struct {
	loc *time.Location
}

// NewOrderExporter renders timestamps in loc; nil means UTC.
func NewOrderExporter(loc *time.Location) *OrderExporter {
	if loc == nil {
		loc = time.UTC
	}
	return &OrderExporter{loc: loc}
}

func (e *OrderExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *OrderExporter) FileExtension() string {
	return ".xlsx"
}

// Export writes the workbook to w.
func (e *OrderExporter) Export(w io.Writer, orders []*order.Order) error {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet(ordersSheet)
	if err != nil {
		return fmt.Errorf("failed to create %s sheet: %w", ordersSheet, err)
	}
	items, err := file.AddSheet(itemsSheet)
	if err != nil {
		return fmt.Errorf("failed to create %s sheet: %w", itemsSheet, err)
	}

	addHeader(sheet, orderHeaders)
	addHeader(items, itemHeaders)

	for _, o := range orders {
		e.addOrderRow(sheet, o)
		for _, item := range o.Items() {
			row := items.AddRow()
			row.AddCell().SetString(o.ID().String())
			row.AddCell().SetString(item.ProductName())
			row.AddCell().SetInt(item.Quantity())
			row.AddCell().SetFloatWithFormat(item.UnitPrice().Float64(), moneyFormat)
			row.AddCell().SetFloatWithFormat(item.Subtotal().Float64(), moneyFormat)
		}
	}

	if err = file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func (e *OrderExporter) addOrderRow(sheet *xlsx.Sheet, o *order.Order) {
	lines := make([]string, 0, len(o.Items()))
	for _, item := range o.Items() {
		lines = append(lines, fmt.Sprintf("%dx %s", item.Quantity(), item.ProductName()))
	}

	row := sheet.AddRow()
	row.AddCell().SetString(o.ID().String())
	row.AddCell().SetString(o.CreatedAt().In(e.loc).Format(timeLayout))
	row.AddCell().SetString(o.Details().Name())
	row.AddCell().SetString(o.Details().Phone())
	row.AddCell().SetString(o.Details().Address())
	row.AddCell().SetString(strings.Join(lines, "; "))
	row.AddCell().SetFloatWithFormat(o.TotalAmount().Float64(), moneyFormat)
	row.AddCell().SetString(o.PaymentMethod().String())
	row.AddCell().SetString(o.Status().String())
	row.AddCell().SetString(o.Notes())
}

func addHeader(sheet *xlsx.Sheet, headers []string) {
	row := sheet.AddRow()
	for _, h := range headers {
		row.AddCell().SetString(h)
	}
}
