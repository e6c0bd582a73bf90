package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/pixelmart/internal/client/models"
)

// Register creates a new account. Vendor registrations stay pending until
// an admin approves them; the backend signals that by omitting the token.
func (g *Gateway) Register(ctx context.Context, reg models.Registration) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := g.request(ctx, http.MethodPost, "/api/auth/register", reg, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login exchanges credentials for a token and user summary.
func (g *Gateway) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := g.request(ctx, http.MethodPost, "/api/auth/login", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
