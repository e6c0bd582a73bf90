package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/pixelmart/internal/client/api"
	"github.com/dmitrijs2005/pixelmart/internal/client/models"
	"github.com/dmitrijs2005/pixelmart/internal/common"
	"github.com/dmitrijs2005/pixelmart/internal/logging"
)

// FavoritesService tracks per-item membership in the user's remote
// favorites collection. Existence is queried lazily and cached in memory
// for the service's lifetime; the cache is invalidated per item on
// add/remove, never globally.
type FavoritesService struct {
	client  api.Client
	session *SessionService
	logger  logging.Logger

	mu    sync.Mutex
	cache map[string]bool
}

func NewFavoritesService(client api.Client, session *SessionService, logger logging.Logger) *FavoritesService {
	return &FavoritesService{
		client:  client,
		session: session,
		logger:  logger,
		cache:   make(map[string]bool),
	}
}

// IsFavorite reports whether itemID is in the user's favorites.
// Anonymous sessions always resolve false without a network call, and an
// auth failure from the backend resolves false rather than erroring (the
// session may have expired mid-page). Other failures propagate.
func (f *FavoritesService) IsFavorite(ctx context.Context, itemID string) (bool, error) {
	if !f.session.IsAuthenticated() {
		return false, nil
	}

	f.mu.Lock()
	cached, ok := f.cache[itemID]
	f.mu.Unlock()
	if ok {
		return cached, nil
	}

	fav, err := f.client.CheckFavorite(ctx, itemID)
	if err != nil {
		if api.IsUnauthorized(err) {
			return false, nil
		}
		return false, err
	}

	f.mu.Lock()
	f.cache[itemID] = fav
	f.mu.Unlock()
	return fav, nil
}

// Add puts the item into the remote collection. The membership cache is
// updated only after the remote call succeeds, so a failure leaves the
// pre-mutation state visible.
func (f *FavoritesService) Add(ctx context.Context, item models.Product) error {
	if !f.session.IsAuthenticated() {
		return common.ErrNoToken
	}
	if err := f.client.AddFavorite(ctx, item.ID, item); err != nil {
		return err
	}
	f.mu.Lock()
	f.cache[item.ID] = true
	f.mu.Unlock()
	return nil
}

// Remove drops the item from the remote collection; cache discipline as
// in Add.
func (f *FavoritesService) Remove(ctx context.Context, itemID string) error {
	if !f.session.IsAuthenticated() {
		return common.ErrNoToken
	}
	if err := f.client.RemoveFavorite(ctx, itemID); err != nil {
		return err
	}
	f.mu.Lock()
	f.cache[itemID] = false
	f.mu.Unlock()
	return nil
}

// List fetches the full favorites collection.
func (f *FavoritesService) List(ctx context.Context) ([]models.FavoriteEntry, error) {
	if !f.session.IsAuthenticated() {
		return nil, common.ErrNoToken
	}
	return f.client.Favorites(ctx)
}
