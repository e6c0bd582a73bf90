package api

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/pixelmart/internal/client/models"
)

func (g *Gateway) Profile(ctx context.Context) (*models.UserSummary, error) {
	var u models.UserSummary
	if err := g.request(ctx, http.MethodGet, "/api/user/profile", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (g *Gateway) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.UserSummary, error) {
	var u models.UserSummary
	if err := g.request(ctx, http.MethodPut, "/api/user/profile", upd, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (g *Gateway) ChangePassword(ctx context.Context, chg models.PasswordChange) error {
	return g.request(ctx, http.MethodPost, "/api/user/change-password", chg, nil)
}

// UserStats returns the account counters (downloads, favorites, member
// since) shown on the profile page.
func (g *Gateway) UserStats(ctx context.Context) (*models.UserStats, error) {
	var stats models.UserStats
	if err := g.request(ctx, http.MethodGet, "/api/user/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// collectionRow is the wire shape of favorites and downloads rows. The
// snapshot travels under "imageData" for historical reasons.
type collectionRow struct {
	ItemID      string     `json:"imageId"`
	Item        rawObject  `json:"imageData"`
	AddedAt     time.Time  `json:"created_at"`
	OrderID     string     `json:"orderId,omitempty"`
	PurchasedAt *time.Time `json:"purchasedAt,omitempty"`
}

func (g *Gateway) Favorites(ctx context.Context) ([]models.FavoriteEntry, error) {
	var rows []collectionRow
	if err := g.request(ctx, http.MethodGet, "/api/user/favorites", nil, &rows); err != nil {
		return nil, err
	}
	out := make([]models.FavoriteEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.FavoriteEntry{
			ItemID:  r.ItemID,
			Item:    normalizeProduct(r.Item),
			AddedAt: r.AddedAt,
		})
	}
	return out, nil
}

func (g *Gateway) AddFavorite(ctx context.Context, itemID string, item models.Product) error {
	body := map[string]any{"imageId": itemID, "imageData": item}
	return g.request(ctx, http.MethodPost, "/api/user/favorites", body, nil)
}

func (g *Gateway) RemoveFavorite(ctx context.Context, itemID string) error {
	return g.request(ctx, http.MethodDelete, "/api/user/favorites/"+itemID, nil, nil)
}

func (g *Gateway) CheckFavorite(ctx context.Context, itemID string) (bool, error) {
	var resp struct {
		IsFavorite bool `json:"isFavorite"`
	}
	if err := g.request(ctx, http.MethodGet, "/api/user/favorites/"+itemID+"/check", nil, &resp); err != nil {
		return false, err
	}
	return resp.IsFavorite, nil
}

func (g *Gateway) Downloads(ctx context.Context) ([]models.DownloadEntry, error) {
	var rows []collectionRow
	if err := g.request(ctx, http.MethodGet, "/api/user/downloads", nil, &rows); err != nil {
		return nil, err
	}
	out := make([]models.DownloadEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.DownloadEntry{
			ItemID:      r.ItemID,
			Item:        normalizeProduct(r.Item),
			AddedAt:     r.AddedAt,
			OrderID:     r.OrderID,
			PurchasedAt: r.PurchasedAt,
		})
	}
	return out, nil
}

// RecordDownload registers a download in the user's collection. Provenance
// fields are sent only for purchase-backed downloads so the backend can
// keep telling paid and free downloads apart.
func (g *Gateway) RecordDownload(ctx context.Context, entry models.DownloadEntry) error {
	body := map[string]any{"imageId": entry.ItemID, "imageData": entry.Item}
	if entry.OrderID != "" {
		body["orderId"] = entry.OrderID
		body["purchasedAt"] = entry.PurchasedAt
	}
	return g.request(ctx, http.MethodPost, "/api/user/downloads", body, nil)
}

func (g *Gateway) Purchased(ctx context.Context) ([]models.Product, error) {
	var raw []rawObject
	if err := g.request(ctx, http.MethodGet, "/api/user/purchased", nil, &raw); err != nil {
		return nil, err
	}
	return normalizeProducts(raw), nil
}
