package cli

import (
	"context"
	"fmt"
	"strconv"
)

// ShowCart prints the current cart with the running total.
func (a *App) ShowCart(ctx context.Context) error {
	items := a.cart.Items()
	if len(items) == 0 {
		printlnFn("Your cart is empty.")
		return nil
	}
	for _, item := range items {
		printlnFn(fmt.Sprintf("%s  %-30s  %d x $%.2f", item.ProductID, item.Title, item.Quantity, item.PriceSnapshot))
	}
	printlnFn(fmt.Sprintf("Total: $%.2f", a.cart.Total()))
	return nil
}

// AddToCart adds args[0] to the cart; args[1] (optional) is the quantity
// delta, default 1. The product is fetched first so the cart line carries
// its price and title.
func (a *App) AddToCart(ctx context.Context, args []string) error {
	qty := 1
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}
		qty = n
	}

	p, err := a.catalog.Get(ctx, args[0])
	if err != nil {
		return err
	}
	if err := a.cart.Add(ctx, *p, qty); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Added. Cart total: $%.2f", a.cart.Total()))
	return nil
}

// RemoveFromCart removes the product line entirely.
func (a *App) RemoveFromCart(ctx context.Context, args []string) error {
	if err := a.cart.Remove(ctx, args[0]); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Removed. Cart total: $%.2f", a.cart.Total()))
	return nil
}

// ClearCart empties the cart.
func (a *App) ClearCart(ctx context.Context) error {
	if err := a.cart.Clear(ctx); err != nil {
		return err
	}
	printlnFn("Cart cleared.")
	return nil
}

// Checkout places an order from the cart. Requires a logged-in session
// and a non-empty cart.
func (a *App) Checkout(ctx context.Context) error {
	order, err := a.cart.Checkout(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Order %s placed, total $%.2f (%s).", order.ID, order.Total, order.Status))
	return nil
}
