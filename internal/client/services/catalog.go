package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/pixelmart/internal/client/api"
	"github.com/dmitrijs2005/pixelmart/internal/client/models"
	"github.com/dmitrijs2005/pixelmart/internal/logging"
)

// CatalogService is a thin consumer of the public catalog endpoints. The
// backend filters these to active products; admin listings go through
// AdminService instead.
type CatalogService struct {
	client api.Client
	logger logging.Logger
}

func NewCatalogService(client api.Client, logger logging.Logger) *CatalogService {
	return &CatalogService{client: client, logger: logger}
}

// ExplorePage is the data for the landing/explore view.
type ExplorePage struct {
	Products   []models.Product
	Categories []string
}

// Explore loads products and categories concurrently.
func (c *CatalogService) Explore(ctx context.Context) (*ExplorePage, error) {
	var page ExplorePage

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products, err := c.client.Products(ctx, "", "")
		page.Products = products
		return err
	})
	g.Go(func() error {
		cats, err := c.client.Categories(ctx)
		page.Categories = cats
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &page, nil
}

// Browse lists products filtered by category and/or search query.
func (c *CatalogService) Browse(ctx context.Context, category, query string) ([]models.Product, error) {
	return c.client.Products(ctx, category, query)
}

// Get fetches one product by id.
func (c *CatalogService) Get(ctx context.Context, id string) (*models.Product, error) {
	return c.client.Product(ctx, id)
}
