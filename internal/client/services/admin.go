package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/pixelmart/internal/client/api"
	"github.com/dmitrijs2005/pixelmart/internal/client/models"
	"github.com/dmitrijs2005/pixelmart/internal/common"
	"github.com/dmitrijs2005/pixelmart/internal/logging"
)

// AdminService covers the moderation surface. Its product listing is the
// unfiltered one: products arrive in every status and consumers must
// check Status themselves.
type AdminService struct {
	client  api.Client
	session *SessionService
	logger  logging.Logger
}

func NewAdminService(client api.Client, session *SessionService, logger logging.Logger) *AdminService {
	return &AdminService{client: client, session: session, logger: logger}
}

func (a *AdminService) requireAdmin() error {
	u := a.session.CurrentUser()
	if u == nil {
		return common.ErrNoToken
	}
	if u.Role != models.RoleAdmin {
		return common.ErrorUnauthorized
	}
	return nil
}

// Dashboard is the admin landing view data.
type Dashboard struct {
	Stats    models.AdminStats
	Vendors  []models.VendorSummary
	Products []models.Product
}

// LoadDashboard fetches stats, vendors and products concurrently.
func (a *AdminService) LoadDashboard(ctx context.Context) (*Dashboard, error) {
	if err := a.requireAdmin(); err != nil {
		return nil, err
	}

	var dash Dashboard
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := a.client.AdminStats(ctx)
		if stats != nil {
			dash.Stats = *stats
		}
		return err
	})
	g.Go(func() error {
		vendors, err := a.client.AdminVendors(ctx)
		dash.Vendors = vendors
		return err
	})
	g.Go(func() error {
		products, err := a.client.AdminProducts(ctx)
		dash.Products = products
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dash, nil
}

func (a *AdminService) Vendors(ctx context.Context) ([]models.VendorSummary, error) {
	if err := a.requireAdmin(); err != nil {
		return nil, err
	}
	return a.client.AdminVendors(ctx)
}

func (a *AdminService) ApproveVendor(ctx context.Context, vendorID string) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	return a.client.ApproveVendor(ctx, vendorID)
}

func (a *AdminService) BlockVendor(ctx context.Context, vendorID string) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	return a.client.BlockVendor(ctx, vendorID)
}

func (a *AdminService) RejectVendor(ctx context.Context, vendorID string) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	return a.client.RejectVendor(ctx, vendorID)
}

func (a *AdminService) Users(ctx context.Context) ([]models.UserSummary, error) {
	if err := a.requireAdmin(); err != nil {
		return nil, err
	}
	return a.client.AdminUsers(ctx)
}

func (a *AdminService) BlockUser(ctx context.Context, userID string) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	return a.client.BlockUser(ctx, userID)
}

func (a *AdminService) UnblockUser(ctx context.Context, userID string) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	return a.client.UnblockUser(ctx, userID)
}

func (a *AdminService) Products(ctx context.Context) ([]models.Product, error) {
	if err := a.requireAdmin(); err != nil {
		return nil, err
	}
	return a.client.AdminProducts(ctx)
}
