package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/pixelmart/internal/client/models"
)

// GetCart fetches the authoritative server cart and normalizes its rows.
func (g *Gateway) GetCart(ctx context.Context) (models.Cart, error) {
	var raw []rawObject
	if err := g.request(ctx, http.MethodGet, "/api/user/cart", nil, &raw); err != nil {
		return nil, err
	}
	return normalizeCart(raw), nil
}

// AddToCart sends a quantity delta. The server applies its own business
// rules (stock limits etc.), which is why callers re-fetch afterwards
// instead of merging optimistically.
func (g *Gateway) AddToCart(ctx context.Context, productID string, quantity int) error {
	body := map[string]any{"productId": productID, "quantity": quantity}
	return g.request(ctx, http.MethodPost, "/api/user/cart/add", body, nil)
}

func (g *Gateway) RemoveFromCart(ctx context.Context, productID string) error {
	body := map[string]any{"productId": productID}
	return g.request(ctx, http.MethodPost, "/api/user/cart/remove", body, nil)
}

func (g *Gateway) ClearCart(ctx context.Context) error {
	return g.request(ctx, http.MethodPost, "/api/user/cart/clear", nil, nil)
}
