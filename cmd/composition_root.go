package cmd

import (
	"log/slog"
	"time"

	httpadapter "bakery/internal/adapters/in/http"
	"bakery/internal/adapters/out/postgres"
	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/adapters/out/postgres/settingsrepo"
	"bakery/internal/adapters/out/xlsx"
	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/auth"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    *postgres.GormUnitOfWorkFactory
	checkoutGuard ports.CheckoutGuard
	notifier      ports.OrderNotifier
	location      *time.Location
	logger        *slog.Logger
}

func NewCompositionRoot(
	gormDB *gorm.DB,
	checkoutGuard ports.CheckoutGuard,
	notifier ports.OrderNotifier,
	location *time.Location,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    postgres.NewGormUnitOfWorkFactory(gormDB),
		checkoutGuard: checkoutGuard,
		notifier:      notifier,
		location:      location,
		logger:        logger,
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.checkoutGuard, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductPriceCommandHandler() commands.UpdateProductPriceCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProductPriceCommandHandler(f)
}

func (c *CompositionRoot) CreateToggleStoreStatusCommandHandler() commands.ToggleStoreStatusCommandHandler {
	return commands.NewToggleStoreStatusCommandHandler(c.settingsUoWFactory())
}

func (c *CompositionRoot) CreateUpdateBannerCommandHandler() commands.UpdateBannerCommandHandler {
	return commands.NewUpdateBannerCommandHandler(c.settingsUoWFactory())
}

func (c *CompositionRoot) CreateRefreshCustomersCommandHandler() commands.RefreshCustomersCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefreshCustomersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStoreSettingsQueryHandler() queries.GetStoreSettingsQueryHandler {
	return queries.NewGetStoreSettingsQueryHandler(settingsrepo.NewGormSettingsRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderBoardQueryHandler() queries.GetOrderBoardQueryHandler {
	return queries.NewGetOrderBoardQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	return queries.NewGetOrderSummaryQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetRevenueQueryHandler() queries.GetRevenueQueryHandler {
	return queries.NewGetRevenueQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB), c.location)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() queries.GetCustomersQueryHandler {
	return queries.NewGetCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateExportOrdersQueryHandler() queries.ExportOrdersQueryHandler {
	return queries.NewExportOrdersQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB), xlsx.NewOrderExporter(c.location))
}

// CreateHTTPHandlers wires every use case the HTTP server exposes.
func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	placeOrder := c.CreatePlaceOrderCommandHandler()
	changeOrderStatus := c.CreateChangeOrderStatusCommandHandler()
	deleteOrder := c.CreateDeleteOrderCommandHandler()
	updateProductPrice := c.CreateUpdateProductPriceCommandHandler()
	toggleStoreStatus := c.CreateToggleStoreStatusCommandHandler()
	updateBanner := c.CreateUpdateBannerCommandHandler()

	return httpadapter.Handlers{
		PlaceOrder:         &placeOrder,
		ChangeOrderStatus:  &changeOrderStatus,
		DeleteOrder:        &deleteOrder,
		UpdateProductPrice: &updateProductPrice,
		ToggleStoreStatus:  &toggleStoreStatus,
		UpdateBanner:       &updateBanner,

		GetCatalog:       c.CreateGetCatalogQueryHandler(),
		GetStoreSettings: c.CreateGetStoreSettingsQueryHandler(),
		GetOrders:        c.CreateGetOrdersQueryHandler(),
		GetOrderBoard:    c.CreateGetOrderBoardQueryHandler(),
		GetOrderSummary:  c.CreateGetOrderSummaryQueryHandler(),
		GetRevenue:       c.CreateGetRevenueQueryHandler(),
		GetCustomers:     c.CreateGetCustomersQueryHandler(),
		ExportOrders:     c.CreateExportOrdersQueryHandler(),
	}
}

// CreateAuthenticator builds the admin authenticator from configuration.
func CreateAuthenticator(cfg Config) (*auth.Authenticator, error) {
	return auth.NewAuthenticator(cfg.AdminEmail, cfg.AdminPasswordHash, cfg.JWTSecret, cfg.JWTTTL)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) settingsUoWFactory() commands.SettingsUoWFactory {
	return FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}
