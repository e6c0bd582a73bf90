package services

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/pixelmart/internal/client/api"
	"github.com/dmitrijs2005/pixelmart/internal/client/models"
	"github.com/dmitrijs2005/pixelmart/internal/common"
	"github.com/dmitrijs2005/pixelmart/internal/logging"
)

// DownloadsService tracks the user's remote downloads collection, with
// the same page-lifetime membership cache discipline as favorites.
// Download entries carry provenance: entries created through a purchase
// record the order id and purchase time, free-tier downloads carry
// neither.
type DownloadsService struct {
	client  api.Client
	session *SessionService
	logger  logging.Logger

	mu     sync.Mutex
	cache  map[string]bool
	now    func() time.Time
	loaded bool
}

func NewDownloadsService(client api.Client, session *SessionService, logger logging.Logger) *DownloadsService {
	return &DownloadsService{
		client:  client,
		session: session,
		logger:  logger,
		cache:   make(map[string]bool),
		now:     time.Now,
	}
}

// Download requests download access for a product and records the
// download in the user's collection. orderID is empty for free-tier
// downloads and set when the download originates from a purchase.
// The returned product carries the original (unwatermarked) URL.
func (d *DownloadsService) Download(ctx context.Context, productID, orderID string) (*models.Product, error) {
	if !d.session.IsAuthenticated() {
		return nil, common.ErrNoToken
	}

	granted, err := d.client.DownloadProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	entry := models.DownloadEntry{ItemID: productID, Item: *granted}
	if orderID != "" {
		t := d.now()
		entry.OrderID = orderID
		entry.PurchasedAt = &t
	}
	if err := d.client.RecordDownload(ctx, entry); err != nil {
		// Access was already granted; a failed bookkeeping call must not
		// block the download itself.
		d.logger.Warn(ctx, "failed to record download", "product", productID, "error", err)
		return granted, nil
	}

	d.mu.Lock()
	d.cache[productID] = true
	d.mu.Unlock()
	return granted, nil
}

// Has reports whether productID is in the user's downloads. Anonymous
// sessions resolve false without a network call. The first authenticated
// miss loads the whole collection once and fills the cache.
func (d *DownloadsService) Has(ctx context.Context, productID string) (bool, error) {
	if !d.session.IsAuthenticated() {
		return false, nil
	}

	d.mu.Lock()
	if got, ok := d.cache[productID]; ok {
		d.mu.Unlock()
		return got, nil
	}
	loaded := d.loaded
	d.mu.Unlock()

	if loaded {
		return false, nil
	}

	entries, err := d.client.Downloads(ctx)
	if err != nil {
		if api.IsUnauthorized(err) {
			return false, nil
		}
		return false, err
	}

	d.mu.Lock()
	for _, e := range entries {
		d.cache[e.ItemID] = true
	}
	d.loaded = true
	got := d.cache[productID]
	d.mu.Unlock()
	return got, nil
}

// List fetches the full downloads collection.
func (d *DownloadsService) List(ctx context.Context) ([]models.DownloadEntry, error) {
	if !d.session.IsAuthenticated() {
		return nil, common.ErrNoToken
	}
	return d.client.Downloads(ctx)
}
