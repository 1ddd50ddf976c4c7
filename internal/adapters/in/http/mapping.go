package http

import (
	"fmt"

	"bakery/internal/core/application/usecases/queries"
)

const dayLayout = "2006-01-02"

func productFromQuery(p queries.GetCatalogQueryResponse) Product {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return Product{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.Float64(),
		Images:      images,
		Category:    p.Category,
	}
}

func storeFromQuery(s queries.GetStoreSettingsQueryResponse) Store {
	return Store{
		IsOpen:       s.IsOpen,
		OpeningHours: s.OpeningHours,
		Banner: Banner{
			Active:          s.Banner.Active,
			Text:            s.Banner.Text,
			Price:           s.Banner.Price.Float64(),
			Discount:        s.Banner.Discount,
			DiscountedPrice: s.Banner.DiscountedPrice.Float64(),
		},
		UpdatedAt: s.UpdatedAt,
	}
}

func orderFromQuery(o queries.OrderResponse) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItem{
			Id:           item.ID.Value(),
			ProductId:    item.ProductID,
			ProductName:  item.ProductName,
			ProductPrice: item.ProductPrice.Float64(),
			Quantity:     item.Quantity,
			Subtotal:     item.Subtotal.Float64(),
		})
	}

	return Order{
		Id:              o.ID.Value(),
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		TotalAmount:     o.TotalAmount.Float64(),
		Status:          o.Status,
		PaymentMethod:   o.PaymentMethod,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		Items:           items,
	}
}

func ordersFromQuery(orders []queries.OrderResponse) []Order {
	response := make([]Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderFromQuery(o))
	}
	return response
}

func revenueFromQuery(r queries.GetRevenueQueryResponse) Revenue {
	days := make([]DailyRevenue, 0, len(r.Days))
	for _, d := range r.Days {
		days = append(days, DailyRevenue{
			Date:   d.Day.Format(dayLayout),
			Total:  d.Total.Float64(),
			Orders: d.Orders,
		})
	}

	return Revenue{
		Month:           fmt.Sprintf("%04d-%02d", r.Year, int(r.Month)),
		Total:           r.Total.Float64(),
		DeliveredOrders: r.DeliveredOrders,
		Days:            days,
	}
}
