package services

import (
	"context"

	"github.com/dmitrijs2005/pixelmart/internal/client/api"
	"github.com/dmitrijs2005/pixelmart/internal/client/models"
	"github.com/dmitrijs2005/pixelmart/internal/common"
	"github.com/dmitrijs2005/pixelmart/internal/logging"
)

// OrdersService is a thin consumer of the purchase-history endpoints.
// Order creation itself lives on the cart service (checkout); order
// status is mutated only by vendors and admins, never here.
type OrdersService struct {
	client  api.Client
	session *SessionService
	logger  logging.Logger
}

func NewOrdersService(client api.Client, session *SessionService, logger logging.Logger) *OrdersService {
	return &OrdersService{client: client, session: session, logger: logger}
}

// Purchased lists the products the user has bought.
func (o *OrdersService) Purchased(ctx context.Context) ([]models.Product, error) {
	if !o.session.IsAuthenticated() {
		return nil, common.ErrNoToken
	}
	return o.client.Purchased(ctx)
}
