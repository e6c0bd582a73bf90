package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/pixelmart/internal/client/models"
)

// CreateOrder submits a checkout. The backend assigns the id and the
// initial pending status; the client never mutates order status afterwards.
func (g *Gateway) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	var order models.Order
	if err := g.request(ctx, http.MethodPost, "/api/orders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
