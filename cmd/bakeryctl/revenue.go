package main

import (
	"context"
	"fmt"
	"io"

	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/order"

	"github.com/olekukonko/tablewriter"
)

// renderRevenue prints the daily breakdown with the month total as footer.
func renderRevenue(w io.Writer, report queries.GetRevenueQueryResponse) error {
	fmt.Fprintf(w, "Faturamento %04d-%02d\n", report.Year, int(report.Month))

	table := tablewriter.NewWriter(w)
	table.Header("Dia", "Pedidos", "Total (R$)")
	for _, day := range report.Days {
		if err := table.Append([]string{day.Day.Format("02/01/2006"), fmt.Sprint(day.Orders), day.Total.String()}); err != nil {
			return err
		}
	}
	table.Footer("Mês", fmt.Sprint(report.DeliveredOrders), report.Total.String())
	return table.Render()
}

// noopNotifier drops order events; the CLI has no connected dashboards.
type noopNotifier struct{}

func (noopNotifier) OrderPlaced(context.Context, *order.Order) {}
