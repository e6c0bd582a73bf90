package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/pixelmart/internal/client/api"
	"github.com/dmitrijs2005/pixelmart/internal/client/models"
	"github.com/dmitrijs2005/pixelmart/internal/logging"
)

// AuthService orchestrates authentication transitions. It is the only
// place that writes the session and the only trigger for cart
// reconciliation, so the two can never drift apart.
type AuthService struct {
	client  api.Client
	session *SessionService
	cart    *CartService
	logger  logging.Logger
}

func NewAuthService(client api.Client, session *SessionService, cart *CartService, logger logging.Logger) *AuthService {
	return &AuthService{client: client, session: session, cart: cart, logger: logger}
}

// Login authenticates, persists the session and reconciles the cart
// (server wins; the anonymous cart is discarded). A cart load failure
// after a successful login is logged, not returned: the user is logged in
// either way and the cart view recovers on the next load.
func (a *AuthService) Login(ctx context.Context, creds models.Credentials) (*models.UserSummary, error) {
	resp, err := a.client.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" || resp.User == nil {
		return nil, fmt.Errorf("invalid login response")
	}

	a.session.Set(ctx, resp.Token, resp.User)

	if err := a.cart.ReconcileLogin(ctx); err != nil {
		a.logger.Warn(ctx, "cart reconciliation after login failed", "error", err)
	}
	return resp.User, nil
}

// Register creates an account. Regular users are logged in right away;
// vendor registrations stay pending until an admin approves them, which
// the backend signals by omitting the token.
func (a *AuthService) Register(ctx context.Context, reg models.Registration) (*models.UserSummary, bool, error) {
	resp, err := a.client.Register(ctx, reg)
	if err != nil {
		return nil, false, err
	}
	if resp.Token == "" || resp.User == nil {
		// Pending approval: no session is created.
		return resp.User, true, nil
	}

	a.session.Set(ctx, resp.Token, resp.User)
	if err := a.cart.ReconcileLogin(ctx); err != nil {
		a.logger.Warn(ctx, "cart reconciliation after registration failed", "error", err)
	}
	return resp.User, false, nil
}

// Logout destroys the session and resets the cart to an empty anonymous
// one. Idempotent.
func (a *AuthService) Logout(ctx context.Context) error {
	a.session.Clear(ctx)
	return a.cart.ReconcileLogout(ctx)
}

// Verify checks a hydrated session against the server. An auth failure
// means the stored token expired or was revoked; the session is destroyed
// exactly as on logout. Transport failures leave the session alone: the
// cached user keeps working offline-ish and the next call re-checks.
func (a *AuthService) Verify(ctx context.Context) (*models.UserSummary, error) {
	if !a.session.IsAuthenticated() {
		return nil, nil
	}

	user, err := a.client.Profile(ctx)
	if err != nil {
		if api.IsUnauthorized(err) {
			a.logger.Info(ctx, "stored token rejected, clearing session")
			if lerr := a.Logout(ctx); lerr != nil {
				a.logger.Warn(ctx, "logout after token rejection failed", "error", lerr)
			}
			return nil, nil
		}
		return nil, err
	}

	// Refresh the cached summary with what the server returned.
	a.session.Set(ctx, a.session.Token(), user)
	return user, nil
}
