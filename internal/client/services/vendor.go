package services

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/pixelmart/internal/client/api"
	"github.com/dmitrijs2005/pixelmart/internal/client/models"
	"github.com/dmitrijs2005/pixelmart/internal/common"
	"github.com/dmitrijs2005/pixelmart/internal/logging"
)

// VendorService covers the vendor's own surface: profile, product
// management (create/update/delete/upload) and incoming orders.
type VendorService struct {
	client  api.Client
	session *SessionService
	logger  logging.Logger
}

func NewVendorService(client api.Client, session *SessionService, logger logging.Logger) *VendorService {
	return &VendorService{client: client, session: session, logger: logger}
}

// requireVendor gates vendor operations locally. The backend enforces the
// role anyway; failing early avoids a doomed round-trip.
func (v *VendorService) requireVendor() error {
	u := v.session.CurrentUser()
	if u == nil {
		return common.ErrNoToken
	}
	if u.Role != models.RoleVendor && u.Role != models.RoleAdmin {
		return common.ErrorUnauthorized
	}
	return nil
}

func (v *VendorService) Profile(ctx context.Context) (*models.UserSummary, error) {
	if err := v.requireVendor(); err != nil {
		return nil, err
	}
	return v.client.VendorProfile(ctx)
}

func (v *VendorService) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.UserSummary, error) {
	if err := v.requireVendor(); err != nil {
		return nil, err
	}
	return v.client.UpdateVendorProfile(ctx, upd)
}

func (v *VendorService) Products(ctx context.Context) ([]models.Product, error) {
	if err := v.requireVendor(); err != nil {
		return nil, err
	}
	return v.client.VendorProducts(ctx)
}

// CreateProduct uploads the image first, then creates the product with
// the URLs the backend assigned. New products start in pending status
// until an admin approves them.
func (v *VendorService) CreateProduct(ctx context.Context, p models.Product, imageName string, image io.Reader) (*models.Product, error) {
	if err := v.requireVendor(); err != nil {
		return nil, err
	}
	if image != nil {
		up, err := v.client.UploadImage(ctx, imageName, image)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		p.ImageURL = up.ImageURL
		p.OriginalURL = up.OriginalURL
	}
	return v.client.CreateProduct(ctx, p)
}

func (v *VendorService) UpdateProduct(ctx context.Context, id string, p models.Product) (*models.Product, error) {
	if err := v.requireVendor(); err != nil {
		return nil, err
	}
	return v.client.UpdateProduct(ctx, id, p)
}

func (v *VendorService) DeleteProduct(ctx context.Context, id string) error {
	if err := v.requireVendor(); err != nil {
		return err
	}
	return v.client.DeleteProduct(ctx, id)
}

func (v *VendorService) Orders(ctx context.Context) ([]models.Order, error) {
	if err := v.requireVendor(); err != nil {
		return nil, err
	}
	return v.client.VendorOrders(ctx)
}

// validOrderStatuses are the states a vendor may move an order into.
var validOrderStatuses = map[models.OrderStatus]bool{
	models.OrderApproved:  true,
	models.OrderRejected:  true,
	models.OrderShipped:   true,
	models.OrderDelivered: true,
}

// SetOrderStatus updates an order's status. Purchasing users never mutate
// order status; the role gate plus the status whitelist enforce that
// client-side.
func (v *VendorService) SetOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	if err := v.requireVendor(); err != nil {
		return err
	}
	if !validOrderStatuses[status] {
		return fmt.Errorf("invalid order status %q", status)
	}
	return v.client.UpdateOrderStatus(ctx, orderID, status)
}
