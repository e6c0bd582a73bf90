package api

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/pixelmart/internal/client/models"
)

// Products lists the public catalog, optionally filtered by category or
// search query. The backend only returns active products here; admin
// listings go through AdminProducts.
func (g *Gateway) Products(ctx context.Context, category, query string) ([]models.Product, error) {
	path := "/api/products"
	params := url.Values{}
	if category != "" {
		params.Set("category", category)
	}
	if query != "" {
		params.Set("q", query)
	}
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var raw []rawObject
	if err := g.request(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	return normalizeProducts(raw), nil
}

func (g *Gateway) Categories(ctx context.Context) ([]string, error) {
	var cats []string
	if err := g.request(ctx, http.MethodGet, "/api/products/categories", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (g *Gateway) Product(ctx context.Context, id string) (*models.Product, error) {
	var raw rawObject
	if err := g.request(ctx, http.MethodGet, "/api/products/"+id, nil, &raw); err != nil {
		return nil, err
	}
	p := normalizeProduct(raw)
	return &p, nil
}

// DownloadProduct asks the backend for download access to a product. The
// response carries the original (unwatermarked) URL when access is granted.
func (g *Gateway) DownloadProduct(ctx context.Context, id string) (*models.Product, error) {
	var raw rawObject
	if err := g.request(ctx, http.MethodGet, "/api/products/"+id+"/download", nil, &raw); err != nil {
		return nil, err
	}
	p := normalizeProduct(raw)
	return &p, nil
}

func (g *Gateway) MyProducts(ctx context.Context) ([]models.Product, error) {
	var raw []rawObject
	if err := g.request(ctx, http.MethodGet, "/api/products/my", nil, &raw); err != nil {
		return nil, err
	}
	return normalizeProducts(raw), nil
}

func (g *Gateway) CreateProduct(ctx context.Context, p models.Product) (*models.Product, error) {
	var raw rawObject
	if err := g.request(ctx, http.MethodPost, "/api/products", p, &raw); err != nil {
		return nil, err
	}
	created := normalizeProduct(raw)
	return &created, nil
}

func (g *Gateway) UpdateProduct(ctx context.Context, id string, p models.Product) (*models.Product, error) {
	var raw rawObject
	if err := g.request(ctx, http.MethodPut, "/api/products/"+id, p, &raw); err != nil {
		return nil, err
	}
	updated := normalizeProduct(raw)
	return &updated, nil
}

func (g *Gateway) DeleteProduct(ctx context.Context, id string) error {
	return g.request(ctx, http.MethodDelete, "/api/products/"+id, nil, nil)
}

// UploadImage sends the image as multipart form data. The multipart writer
// owns the Content-Type so the boundary is preserved.
func (g *Gateway) UploadImage(ctx context.Context, filename string, r io.Reader) (*models.ProductUpload, error) {
	var up models.ProductUpload
	if err := g.upload(ctx, "/api/products/upload", "image", filename, r, &up); err != nil {
		return nil, err
	}
	return &up, nil
}
