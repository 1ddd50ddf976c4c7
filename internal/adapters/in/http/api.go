package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Product defines model for Product.
type Product struct {
	Id          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
}

// Banner defines model for Banner.
type Banner struct {
	Active          bool    `json:"active"`
	Text            string  `json:"text"`
	Price           float64 `json:"price"`
	Discount        int     `json:"discount"`
	DiscountedPrice float64 `json:"discounted_price"`
}

// Store defines model for Store.
type Store struct {
	IsOpen       bool      `json:"is_open"`
	OpeningHours string    `json:"opening_hours"`
	Banner       Banner    `json:"banner"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StoreToggled defines model for StoreToggled.
type StoreToggled struct {
	IsOpen bool `json:"is_open"`
}

// NewOrderItem defines model for NewOrderItem.
type NewOrderItem struct {
	ProductId int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	CustomerName    string         `json:"customer_name"`
	CustomerPhone   string         `json:"customer_phone"`
	CustomerAddress string         `json:"customer_address"`
	Items           []NewOrderItem `json:"items"`
	PaymentMethod   *string        `json:"payment_method,omitempty"`
	Notes           *string        `json:"notes,omitempty"`
}

// OrderCreated defines model for OrderCreated.
type OrderCreated struct {
	Id openapi_types.UUID `json:"id"`
}

// LoginRequest defines model for LoginRequest.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse defines model for LoginResponse.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	Id           openapi_types.UUID `json:"id"`
	ProductId    *int64             `json:"product_id"`
	ProductName  string             `json:"product_name"`
	ProductPrice float64            `json:"product_price"`
	Quantity     int                `json:"quantity"`
	Subtotal     float64            `json:"subtotal"`
}

// Order defines model for Order.
type Order struct {
	Id              openapi_types.UUID `json:"id"`
	CustomerName    string             `json:"customer_name"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerAddress string             `json:"customer_address"`
	TotalAmount     float64            `json:"total_amount"`
	Status          string             `json:"status"`
	PaymentMethod   string             `json:"payment_method"`
	Notes           string             `json:"notes"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	Items           []OrderItem        `json:"items"`
}

// OrderBoard defines model for OrderBoard.
type OrderBoard struct {
	InProgress     []Order `json:"in_progress"`
	OutForDelivery []Order `json:"out_for_delivery"`
	History        []Order `json:"history"`
}

// ChangeOrderStatusRequest defines model for ChangeOrderStatusRequest.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// ChangeProductPriceRequest defines model for ChangeProductPriceRequest.
type ChangeProductPriceRequest struct {
	Price float64 `json:"price"`
}

// BannerRequest defines model for BannerRequest.
type BannerRequest struct {
	Active   bool    `json:"active"`
	Text     string  `json:"text"`
	Price    float64 `json:"price"`
	Discount int     `json:"discount"`
}

// DailyRevenue defines model for DailyRevenue.
type DailyRevenue struct {
	Date   string  `json:"date"`
	Total  float64 `json:"total"`
	Orders int     `json:"orders"`
}

// Revenue defines model for Revenue.
type Revenue struct {
	Month           string         `json:"month"`
	Total           float64        `json:"total"`
	DeliveredOrders int            `json:"delivered_orders"`
	Days            []DailyRevenue `json:"days"`
}

// Customer defines model for Customer.
type Customer struct {
	Id          openapi_types.UUID `json:"id"`
	Name        string             `json:"name"`
	Phone       string             `json:"phone"`
	Address     string             `json:"address"`
	TotalOrders int                `json:"total_orders"`
	LastOrderAt time.Time          `json:"last_order_at"`
	CreatedAt   time.Time          `json:"created_at"`
}

// GetProductsParams defines parameters for GetProducts.
type GetProductsParams struct {
	Category *string `form:"category,omitempty" json:"category,omitempty"`
}

// CreateOrderParams defines parameters for CreateOrder.
type CreateOrderParams struct {
	IdempotencyKey *string `json:"Idempotency-Key,omitempty"`
}

// GetOrdersParams defines parameters for GetOrders.
type GetOrdersParams struct {
	Status *string `form:"status,omitempty" json:"status,omitempty"`
}

// GetRevenueParams defines parameters for GetRevenue.
type GetRevenueParams struct {
	Month string `form:"month" json:"month"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /api/v1/products)
	GetProducts(ctx echo.Context, params GetProductsParams) error
	// (GET /api/v1/store)
	GetStore(ctx echo.Context) error
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context, params CreateOrderParams) error
	// (POST /api/v1/admin/login)
	Login(ctx echo.Context) error
	// (GET /api/v1/admin/orders)
	GetOrders(ctx echo.Context, params GetOrdersParams) error
	// (GET /api/v1/admin/orders/board)
	GetOrderBoard(ctx echo.Context) error
	// (GET /api/v1/admin/orders/export)
	ExportOrders(ctx echo.Context) error
	// (DELETE /api/v1/admin/orders/{orderId})
	DeleteOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// (PATCH /api/v1/admin/orders/{orderId}/status)
	ChangeOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error
	// (GET /api/v1/admin/orders/{orderId}/summary)
	GetOrderSummary(ctx echo.Context, orderId openapi_types.UUID) error
	// (PATCH /api/v1/admin/products/{productId}/price)
	ChangeProductPrice(ctx echo.Context, productId int64) error
	// (POST /api/v1/admin/store/toggle)
	ToggleStore(ctx echo.Context) error
	// (PUT /api/v1/admin/store/banner)
	UpdateBanner(ctx echo.Context) error
	// (GET /api/v1/admin/revenue)
	GetRevenue(ctx echo.Context, params GetRevenueParams) error
	// (GET /api/v1/admin/customers)
	GetCustomers(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetProducts converts echo context to params.
func (w *ServerInterfaceWrapper) GetProducts(ctx echo.Context) error {
	var params GetProductsParams

	err := runtime.BindQueryParameter("form", true, false, "category", ctx.QueryParams(), &params.Category)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter category: %s", err))
	}

	return w.Handler.GetProducts(ctx, params)
}

// GetStore converts echo context to params.
func (w *ServerInterfaceWrapper) GetStore(ctx echo.Context) error {
	return w.Handler.GetStore(ctx)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var params CreateOrderParams

	headers := ctx.Request().Header
	if valueList, found := headers[http.CanonicalHeaderKey("Idempotency-Key")]; found {
		var idempotencyKey string
		if n := len(valueList); n != 1 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for Idempotency-Key, got %d", n))
		}

		err := runtime.BindStyledParameterWithOptions("simple", "Idempotency-Key", valueList[0], &idempotencyKey,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: false})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter Idempotency-Key: %s", err))
		}

		params.IdempotencyKey = &idempotencyKey
	}

	return w.Handler.CreateOrder(ctx, params)
}

// Login converts echo context to params.
func (w *ServerInterfaceWrapper) Login(ctx echo.Context) error {
	return w.Handler.Login(ctx)
}

// GetOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	var params GetOrdersParams

	err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	return w.Handler.GetOrders(ctx, params)
}

// GetOrderBoard converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderBoard(ctx echo.Context) error {
	return w.Handler.GetOrderBoard(ctx)
}

// ExportOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ExportOrders(ctx echo.Context) error {
	return w.Handler.ExportOrders(ctx)
}

// DeleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteOrder(ctx, orderId)
}

// ChangeOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeOrderStatus(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ChangeOrderStatus(ctx, orderId)
}

// GetOrderSummary converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderSummary(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrderSummary(ctx, orderId)
}

// ChangeProductPrice converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeProductPrice(ctx echo.Context) error {
	var productId int64

	err := runtime.BindStyledParameterWithOptions("simple", "productId", ctx.Param("productId"), &productId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter productId: %s", err))
	}

	return w.Handler.ChangeProductPrice(ctx, productId)
}

// ToggleStore converts echo context to params.
func (w *ServerInterfaceWrapper) ToggleStore(ctx echo.Context) error {
	return w.Handler.ToggleStore(ctx)
}

// UpdateBanner converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateBanner(ctx echo.Context) error {
	return w.Handler.UpdateBanner(ctx)
}

// GetRevenue converts echo context to params.
func (w *ServerInterfaceWrapper) GetRevenue(ctx echo.Context) error {
	var params GetRevenueParams

	err := runtime.BindQueryParameter("form", true, true, "month", ctx.QueryParams(), &params.Month)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter month: %s", err))
	}

	return w.Handler.GetRevenue(ctx, params)
}

// GetCustomers converts echo context to params.
func (w *ServerInterfaceWrapper) GetCustomers(ctx echo.Context) error {
	return w.Handler.GetCustomers(ctx)
}

func bindOrderID(ctx echo.Context) (openapi_types.UUID, error) {
	var orderId openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return orderId, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}
	return orderId, nil
}

// EchoRouter is the subset of echo routing used by RegisterHandlers.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every route. Storefront routes and the login get
// the storefront middleware; the rest get the admin middleware.
func RegisterHandlers(router EchoRouter, si ServerInterface, storefront, admin []echo.MiddlewareFunc) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET("/api/v1/products", wrapper.GetProducts, storefront...)
	router.GET("/api/v1/store", wrapper.GetStore, storefront...)
	router.POST("/api/v1/orders", wrapper.CreateOrder, storefront...)
	router.POST("/api/v1/admin/login", wrapper.Login, storefront...)

	router.GET("/api/v1/admin/orders", wrapper.GetOrders, admin...)
	router.GET("/api/v1/admin/orders/board", wrapper.GetOrderBoard, admin...)
	router.GET("/api/v1/admin/orders/export", wrapper.ExportOrders, admin...)
	router.DELETE("/api/v1/admin/orders/:orderId", wrapper.DeleteOrder, admin...)
	router.PATCH("/api/v1/admin/orders/:orderId/status", wrapper.ChangeOrderStatus, admin...)
	router.GET("/api/v1/admin/orders/:orderId/summary", wrapper.GetOrderSummary, admin...)
	router.PATCH("/api/v1/admin/products/:productId/price", wrapper.ChangeProductPrice, admin...)
	router.POST("/api/v1/admin/store/toggle", wrapper.ToggleStore, admin...)
	router.PUT("/api/v1/admin/store/banner", wrapper.UpdateBanner, admin...)
	router.GET("/api/v1/admin/revenue", wrapper.GetRevenue, admin...)
	router.GET("/api/v1/admin/customers", wrapper.GetCustomers, admin...)
}
