package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/auth"
	"bakery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CommandHandler executes a command that produces no result.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler executes a request and returns its result.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Authenticator checks admin credentials.
type Authenticator interface {
	Login(email, password string) (auth.Token, error)
}

// Handlers groups the use cases reachable over HTTP.
type Handlers struct {
	PlaceOrder         CommandHandler[commands.PlaceOrderCommand]
	ChangeOrderStatus  CommandHandler[commands.ChangeOrderStatusCommand]
	DeleteOrder        CommandHandler[commands.DeleteOrderCommand]
	UpdateProductPrice CommandHandler[commands.UpdateProductPriceCommand]
	ToggleStoreStatus  QueryHandler[commands.ToggleStoreStatusCommand, bool]
	UpdateBanner       CommandHandler[commands.UpdateBannerCommand]

	GetCatalog       QueryHandler[queries.GetCatalogQuery, []queries.GetCatalogQueryResponse]
	GetStoreSettings QueryHandler[queries.GetStoreSettingsQuery, queries.GetStoreSettingsQueryResponse]
	GetOrders        QueryHandler[queries.GetOrdersQuery, []queries.OrderResponse]
	GetOrderBoard    QueryHandler[queries.GetOrderBoardQuery, queries.GetOrderBoardQueryResponse]
	GetOrderSummary  QueryHandler[queries.GetOrderSummaryQuery, string]
	GetRevenue       QueryHandler[queries.GetRevenueQuery, queries.GetRevenueQueryResponse]
	GetCustomers     QueryHandler[queries.GetCustomersQuery, []queries.GetCustomersQueryResponse]
	ExportOrders     QueryHandler[queries.ExportOrdersQuery, queries.ExportOrdersQueryResponse]
}

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	handlers      Handlers
	authenticator Authenticator
	logger        *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, authenticator Authenticator, logger *slog.Logger) *Server {
	return &Server{
		handlers:      handlers,
		authenticator: authenticator,
		logger:        logger.With("component", "http.Server"),
	}
}

// GetProducts handles GET /api/v1/products.
func (s *Server) GetProducts(ctx echo.Context, params GetProductsParams) error {
	query, err := queries.NewGetCatalogQuery(deref(params.Category))
	if err != nil {
		return badRequest(ctx, "Invalid category: "+err.Error())
	}

	products, err := s.handlers.GetCatalog.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "retrieve products")
	}

	response := make([]Product, 0, len(products))
	for _, p := range products {
		response = append(response, productFromQuery(p))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetStore handles GET /api/v1/store.
func (s *Server) GetStore(ctx echo.Context) error {
	settings, err := s.handlers.GetStoreSettings.Handle(ctx.Request().Context(), queries.NewGetStoreSettingsQuery())
	if err != nil {
		return s.fail(ctx, err, "retrieve store status")
	}
	return ctx.JSON(http.StatusOK, storeFromQuery(settings))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context, params CreateOrderParams) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lines := make([]commands.OrderLine, 0, len(newOrder.Items))
	for _, item := range newOrder.Items {
		lines = append(lines, commands.OrderLine{ProductID: item.ProductId, Quantity: item.Quantity})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		orderID,
		newOrder.CustomerName,
		newOrder.CustomerPhone,
		newOrder.CustomerAddress,
		lines,
		deref(newOrder.PaymentMethod),
		deref(newOrder.Notes),
		deref(params.IdempotencyKey),
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "place order")
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{Id: orderID.Value()})
}

// Login handles POST /api/v1/admin/login.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	token, err := s.authenticator.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			s.logger.WarnContext(ctx.Request().Context(), "admin login rejected", "email", req.Email)
		}
		return s.fail(ctx, err, "log in")
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token.Value, ExpiresAt: token.ExpiresAt})
}

// GetOrders handles GET /api/v1/admin/orders.
func (s *Server) GetOrders(ctx echo.Context, params GetOrdersParams) error {
	query, err := queries.NewGetOrdersQuery(deref(params.Status))
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	orders, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "retrieve orders")
	}
	return ctx.JSON(http.StatusOK, ordersFromQuery(orders))
}

// GetOrderBoard handles GET /api/v1/admin/orders/board.
func (s *Server) GetOrderBoard(ctx echo.Context) error {
	board, err := s.handlers.GetOrderBoard.Handle(ctx.Request().Context(), queries.NewGetOrderBoardQuery())
	if err != nil {
		return s.fail(ctx, err, "retrieve order board")
	}

	return ctx.JSON(http.StatusOK, OrderBoard{
		InProgress:     ordersFromQuery(board.InProgress),
		OutForDelivery: ordersFromQuery(board.OutForDelivery),
		History:        ordersFromQuery(board.History),
	})
}

// ExportOrders handles GET /api/v1/admin/orders/export.
func (s *Server) ExportOrders(ctx echo.Context) error {
	export, err := s.handlers.ExportOrders.Handle(ctx.Request().Context(), queries.NewExportOrdersQuery())
	if err != nil {
		return s.fail(ctx, err, "export orders")
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.FileName))
	return ctx.Blob(http.StatusOK, export.ContentType, export.Content)
}

// DeleteOrder handles DELETE /api/v1/admin/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	cmd, err := commands.NewDeleteOrderCommand(kernel.UUIDFromGoogle(orderId))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "delete order")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles PATCH /api/v1/admin/orders/{orderId}/status.
// A transition the order state machine does not allow is a conflict.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var req ChangeOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(kernel.UUIDFromGoogle(orderId), req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status data: "+err.Error())
	}

	if err = s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrValueIsInvalid) {
			return ctx.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: err.Error(),
			})
		}
		return s.fail(ctx, err, "change order status")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderSummary handles GET /api/v1/admin/orders/{orderId}/summary.
func (s *Server) GetOrderSummary(ctx echo.Context, orderId openapi_types.UUID) error {
	query, err := queries.NewGetOrderSummaryQuery(kernel.UUIDFromGoogle(orderId))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	summary, err := s.handlers.GetOrderSummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "build order summary")
	}
	return ctx.String(http.StatusOK, summary)
}

// ChangeProductPrice handles PATCH /api/v1/admin/products/{productId}/price.
func (s *Server) ChangeProductPrice(ctx echo.Context, productId int64) error {
	var req ChangeProductPriceRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.MoneyFromFloat(req.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+err.Error())
	}

	cmd, err := commands.NewUpdateProductPriceCommand(productId, price)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	if err = s.handlers.UpdateProductPrice.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "update product price")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ToggleStore handles POST /api/v1/admin/store/toggle.
func (s *Server) ToggleStore(ctx echo.Context) error {
	isOpen, err := s.handlers.ToggleStoreStatus.Handle(ctx.Request().Context(), commands.NewToggleStoreStatusCommand())
	if err != nil {
		return s.fail(ctx, err, "toggle store status")
	}
	return ctx.JSON(http.StatusOK, StoreToggled{IsOpen: isOpen})
}

// UpdateBanner handles PUT /api/v1/admin/store/banner.
func (s *Server) UpdateBanner(ctx echo.Context) error {
	var req BannerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.MoneyFromFloat(req.Price)
	if err != nil {
		return badRequest(ctx, "Invalid banner price: "+err.Error())
	}

	cmd, err := commands.NewUpdateBannerCommand(req.Active, req.Text, price, req.Discount)
	if err != nil {
		return badRequest(ctx, "Invalid banner data: "+err.Error())
	}

	if err = s.handlers.UpdateBanner.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "update banner")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetRevenue handles GET /api/v1/admin/revenue.
func (s *Server) GetRevenue(ctx echo.Context, params GetRevenueParams) error {
	query, err := queries.NewGetRevenueQueryForMonth(params.Month)
	if err != nil {
		return badRequest(ctx, "Invalid month: "+err.Error())
	}

	report, err := s.handlers.GetRevenue.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "retrieve revenue")
	}
	return ctx.JSON(http.StatusOK, revenueFromQuery(report))
}

// GetCustomers handles GET /api/v1/admin/customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	customers, err := s.handlers.GetCustomers.Handle(ctx.Request().Context(), queries.NewGetCustomersQuery())
	if err != nil {
		return s.fail(ctx, err, "retrieve customers")
	}

	response := make([]Customer, 0, len(customers))
	for _, c := range customers {
		response = append(response, Customer{
			Id:          c.ID.Value(),
			Name:        c.Name,
			Phone:       c.Phone,
			Address:     c.Address,
			TotalOrders: c.TotalOrders,
			LastOrderAt: c.LastOrderAt,
			CreatedAt:   c.CreatedAt,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
