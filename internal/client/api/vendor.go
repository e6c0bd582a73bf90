package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/pixelmart/internal/client/models"
)

func (g *Gateway) VendorProfile(ctx context.Context) (*models.UserSummary, error) {
	var u models.UserSummary
	if err := g.request(ctx, http.MethodGet, "/api/vendor/profile", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (g *Gateway) UpdateVendorProfile(ctx context.Context, upd models.ProfileUpdate) (*models.UserSummary, error) {
	var u models.UserSummary
	if err := g.request(ctx, http.MethodPut, "/api/vendor/profile", upd, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (g *Gateway) VendorProducts(ctx context.Context) ([]models.Product, error) {
	var raw []rawObject
	if err := g.request(ctx, http.MethodGet, "/api/vendor/products", nil, &raw); err != nil {
		return nil, err
	}
	return normalizeProducts(raw), nil
}

func (g *Gateway) VendorOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := g.request(ctx, http.MethodGet, "/api/vendor/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (g *Gateway) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	body := map[string]any{"status": status}
	return g.request(ctx, http.MethodPut, "/api/vendor/orders/"+orderID+"/status", body, nil)
}
