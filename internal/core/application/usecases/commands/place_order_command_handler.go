package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bakery/internal/core/domain/model/cart"
	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"
)

var (
	// ErrStoreIsClosed is returned when a checkout arrives while the store is closed.
	ErrStoreIsClosed = errors.New("store is closed")

	// ErrDuplicateCheckout is returned when an idempotency key was already used.
	ErrDuplicateCheckout = errors.New("checkout was already submitted")
)

// PlaceOrderCommandHandler turns a checkout into a pending order.
//
// The cart is rebuilt from the live catalog so that totals always use
// server-side prices. The order and its items are written in one unit of
// work, and connected admins are notified after the commit.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, checkoutGuard, notifier, logger)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, ErrStoreIsClosed) {
//	    // tell the customer to come back later
//	}
type PlaceOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	guard      ports.CheckoutGuard
	notifier   ports.OrderNotifier
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates a checkout handler.
func NewPlaceOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	guard ports.CheckoutGuard,
	notifier ports.OrderNotifier,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		guard:      guard,
		notifier:   notifier,
		logger:     logger.With("component", "PlaceOrderCommandHandler"),
	}
}

// Handle places the order described by cmd.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if key := cmd.IdempotencyKey(); key != "" {
		claimed, err := h.guard.Claim(ctx, key)
		if err != nil {
			return err
		}
		if !claimed {
			return ErrDuplicateCheckout
		}
	}

	placed, err := h.place(ctx, cmd)
	if err != nil {
		if key := cmd.IdempotencyKey(); key != "" {
			if releaseErr := h.guard.Release(ctx, key); releaseErr != nil {
				h.logger.WarnContext(ctx, "failed to release checkout key", "error", releaseErr)
			}
		}
		return err
	}

	h.logger.InfoContext(ctx, "order placed",
		"orderID", placed.ID().String(),
		"items", len(placed.Items()),
		"total", placed.TotalAmount().String(),
	)
	h.notifier.OrderPlaced(ctx, placed)
	return nil
}

func (h *PlaceOrderCommandHandler) place(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	settings, err := uow.StoreSettingsRepository().Get(ctx)
	if err != nil {
		return nil, err
	}
	if !settings.IsOpen() {
		return nil, ErrStoreIsClosed
	}

	products, err := uow.ProductRepository().GetByIDs(ctx, cmd.ProductIDs())
	if err != nil {
		return nil, err
	}

	c, err := buildCart(cmd.Lines(), products)
	if err != nil {
		return nil, err
	}

	items, err := order.ItemsFromCart(c)
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(cmd.OrderID(), cmd.Details(), items, cmd.PaymentMethod(), cmd.Notes(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}

func buildCart(lines []OrderLine, products []*catalog.Product) (*cart.Cart, error) {
	byID := make(map[int64]*catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID()] = p
	}

	c := cart.NewCart()
	for _, line := range lines {
		p, ok := byID[line.ProductID]
		if !ok {
			return nil, errs.NewObjectNotFoundErrorWithCause("productId", line.ProductID,
				fmt.Errorf("product %d is not in the catalog", line.ProductID))
		}
		if err := c.AddQuantity(p, line.Quantity); err != nil {
			return nil, err
		}
	}
	return c, nil
}
