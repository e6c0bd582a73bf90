package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/pixelmart/internal/client/api"
	"github.com/dmitrijs2005/pixelmart/internal/client/models"
	"github.com/dmitrijs2005/pixelmart/internal/client/repositories/cart"
	"github.com/dmitrijs2005/pixelmart/internal/common"
	"github.com/dmitrijs2005/pixelmart/internal/logging"
)

// CartService is the cart reconciler. The cart has two physical
// representations: a local sqlite snapshot for anonymous sessions and the
// authoritative server cart for authenticated ones. Which one a call
// touches is decided by the session state at call time.
//
// Authenticated mutations never merge optimistically: every mutation is
// followed by a full re-fetch so server-side business rules (stock limits
// etc.) always win. Rapid-fire mutations are deliberately not serialized;
// the in-memory view is replaced wholly under the mutex, so the
// last-completing re-fetch wins without torn state.
type CartService struct {
	client  api.Client
	session *SessionService
	repo    cart.Repository
	logger  logging.Logger

	mu    sync.RWMutex
	items models.Cart
}

func NewCartService(client api.Client, session *SessionService, repo cart.Repository, logger logging.Logger) *CartService {
	return &CartService{client: client, session: session, repo: repo, logger: logger}
}

// Load populates the in-memory view from the current source of truth.
func (c *CartService) Load(ctx context.Context) error {
	if c.session.IsAuthenticated() {
		return c.refetch(ctx)
	}
	items, err := c.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load local cart: %w", err)
	}
	c.setItems(items)
	return nil
}

// Items returns the current in-memory view.
func (c *CartService) Items() models.Cart {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(models.Cart, len(c.items))
	copy(out, c.items)
	return out
}

// Total derives the displayed total from the current view.
func (c *CartService) Total() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items.Total()
}

// Count returns the number of units in the current view.
func (c *CartService) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items.Count()
}

// Add applies a quantity delta for the product. A delta driving the
// quantity to zero or below removes the row.
func (c *CartService) Add(ctx context.Context, product models.Product, delta int) error {
	if c.session.IsAuthenticated() {
		if err := c.client.AddToCart(ctx, product.ID, delta); err != nil {
			return err
		}
		return c.refetch(ctx)
	}

	next := c.Items().Add(product, delta)
	return c.persistLocal(ctx, next)
}

// Remove drops the product from the cart. Removing an absent product is a
// no-op, not an error.
func (c *CartService) Remove(ctx context.Context, productID string) error {
	if c.session.IsAuthenticated() {
		if err := c.client.RemoveFromCart(ctx, productID); err != nil {
			return err
		}
		return c.refetch(ctx)
	}

	next := c.Items().Remove(productID)
	return c.persistLocal(ctx, next)
}

// Clear empties the cart.
func (c *CartService) Clear(ctx context.Context) error {
	if c.session.IsAuthenticated() {
		if err := c.client.ClearCart(ctx); err != nil {
			return err
		}
		return c.refetch(ctx)
	}
	return c.persistLocal(ctx, models.Cart{})
}

// Checkout submits the current cart as an order and empties the cart on
// success. Requires an authenticated session.
func (c *CartService) Checkout(ctx context.Context) (*models.Order, error) {
	if !c.session.IsAuthenticated() {
		return nil, common.ErrNoToken
	}

	items := c.Items()
	if len(items) == 0 {
		return nil, common.ErrEmptyCart
	}

	req := models.OrderRequest{Total: items.Total()}
	for _, item := range items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		req.Items = append(req.Items, models.OrderItem{
			ProductID: item.ProductID,
			VendorID:  item.VendorID,
			Quantity:  qty,
			Price:     item.PriceSnapshot,
		})
	}

	order, err := c.client.CreateOrder(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := c.Clear(ctx); err != nil {
		c.logger.Warn(ctx, "order placed but cart clear failed", "order", order.ID, "error", err)
	}
	return order, nil
}

// ReconcileLogin resolves the transition to the authenticated state.
// Server wins: the anonymous snapshot is discarded, not merged, and the
// server cart becomes the view.
func (c *CartService) ReconcileLogin(ctx context.Context) error {
	if err := c.repo.Clear(ctx); err != nil {
		c.logger.Warn(ctx, "failed to discard local cart on login", "error", err)
	}
	c.setItems(nil)
	return c.refetch(ctx)
}

// ReconcileLogout resolves the transition back to anonymous. The server
// cart is abandoned client-side and the local cart starts empty; no
// snapshot is restored.
func (c *CartService) ReconcileLogout(ctx context.Context) error {
	c.setItems(nil)
	if err := c.repo.Clear(ctx); err != nil {
		return fmt.Errorf("reset local cart: %w", err)
	}
	return nil
}

// refetch replaces the view with the authoritative server cart.
func (c *CartService) refetch(ctx context.Context) error {
	items, err := c.client.GetCart(ctx)
	if err != nil {
		return err
	}
	c.setItems(items)
	return nil
}

// persistLocal writes the snapshot synchronously, then publishes it to the
// view. A storage failure keeps the pre-mutation state and propagates.
func (c *CartService) persistLocal(ctx context.Context, next models.Cart) error {
	if err := c.repo.ReplaceAll(ctx, next); err != nil {
		return fmt.Errorf("persist local cart: %w", err)
	}
	c.setItems(next)
	return nil
}

func (c *CartService) setItems(items models.Cart) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
}
