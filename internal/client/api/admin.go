package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/pixelmart/internal/client/models"
)

func (g *Gateway) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	var stats models.AdminStats
	if err := g.request(ctx, http.MethodGet, "/api/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (g *Gateway) AdminVendors(ctx context.Context) ([]models.VendorSummary, error) {
	var vendors []models.VendorSummary
	if err := g.request(ctx, http.MethodGet, "/api/admin/vendors", nil, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

func (g *Gateway) ApproveVendor(ctx context.Context, vendorID string) error {
	return g.request(ctx, http.MethodPut, "/api/admin/vendors/"+vendorID+"/approve", nil, nil)
}

func (g *Gateway) BlockVendor(ctx context.Context, vendorID string) error {
	return g.request(ctx, http.MethodPut, "/api/admin/vendors/"+vendorID+"/block", nil, nil)
}

func (g *Gateway) RejectVendor(ctx context.Context, vendorID string) error {
	return g.request(ctx, http.MethodPut, "/api/admin/vendors/"+vendorID+"/reject", nil, nil)
}

func (g *Gateway) AdminUsers(ctx context.Context) ([]models.UserSummary, error) {
	var users []models.UserSummary
	if err := g.request(ctx, http.MethodGet, "/api/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (g *Gateway) BlockUser(ctx context.Context, userID string) error {
	return g.request(ctx, http.MethodPut, "/api/admin/users/"+userID+"/block", nil, nil)
}

func (g *Gateway) UnblockUser(ctx context.Context, userID string) error {
	return g.request(ctx, http.MethodPut, "/api/admin/users/"+userID+"/unblock", nil, nil)
}

// AdminProducts returns products in every moderation status. Unlike the
// public catalog this list is not pre-filtered, so callers must check
// Status themselves.
func (g *Gateway) AdminProducts(ctx context.Context) ([]models.Product, error) {
	var raw []rawObject
	if err := g.request(ctx, http.MethodGet, "/api/admin/products", nil, &raw); err != nil {
		return nil, err
	}
	return normalizeProducts(raw), nil
}
