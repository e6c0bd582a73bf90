package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/pixelmart/internal/client/api"
	"github.com/dmitrijs2005/pixelmart/internal/client/models"
	cartrepo "github.com/dmitrijs2005/pixelmart/internal/client/repositories/cart"
	"github.com/dmitrijs2005/pixelmart/internal/common"
	"github.com/dmitrijs2005/pixelmart/internal/logging"
)

// memSessionRepo is an in-memory session.Repository.
type memSessionRepo struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{data: make(map[string]string)}
}

func (m *memSessionRepo) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", common.ErrorNotFound
	}
	return v, nil
}

func (m *memSessionRepo) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memSessionRepo) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memSessionRepo) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]string)
	return nil
}

// fakeClient embeds api.Client so tests only override what they use.
type fakeClient struct {
	api.Client

	mu sync.Mutex

	// server-side cart state and call counters
	serverCart   models.Cart
	getCartCalls int
	addCalls     int
	removeCalls  int
	clearCalls   int
	addErr       error
	getCartErr   error

	// favorites
	checkCalls   int
	checkResult  bool
	checkErr     error
	addFavErr    error
	favAdds      []string
	removeFavErr error
	favRemovals  []string

	// auth
	loginResp    *models.AuthResponse
	loginErr     error
	registerResp *models.AuthResponse
	registerErr  error
	profileResp  *models.UserSummary
	profileErr   error

	// orders
	createdOrder *models.Order
	orderReq     *models.OrderRequest
	createErr    error

	// downloads
	downloadGrant *models.Product
	downloadErr   error
	recorded      []models.DownloadEntry
	recordErr     error
	downloadsList []models.DownloadEntry

	// vendor
	updatedProductID string
	updatedProduct   *models.Product
	vendorProfileUpd *models.ProfileUpdate
}

func (f *fakeClient) UpdateProduct(_ context.Context, id string, p models.Product) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updatedProductID = id
	f.updatedProduct = &p
	return &p, nil
}

func (f *fakeClient) UpdateVendorProfile(_ context.Context, upd models.ProfileUpdate) (*models.UserSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.vendorProfileUpd = &upd
	return &models.UserSummary{Name: upd.Name, Email: upd.Email, Role: models.RoleVendor}, nil
}

func (f *fakeClient) GetCart(context.Context) (models.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCartCalls++
	if f.getCartErr != nil {
		return nil, f.getCartErr
	}
	out := make(models.Cart, len(f.serverCart))
	copy(out, f.serverCart)
	return out, nil
}

func (f *fakeClient) AddToCart(_ context.Context, productID string, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addCalls++
	if f.addErr != nil {
		return f.addErr
	}
	f.serverCart = f.serverCart.Add(models.Product{ID: productID, Price: 1}, quantity)
	return nil
}

func (f *fakeClient) RemoveFromCart(_ context.Context, productID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removeCalls++
	f.serverCart = f.serverCart.Remove(productID)
	return nil
}

func (f *fakeClient) ClearCart(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clearCalls++
	f.serverCart = models.Cart{}
	return nil
}

func (f *fakeClient) CheckFavorite(_ context.Context, itemID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checkCalls++
	return f.checkResult, f.checkErr
}

func (f *fakeClient) AddFavorite(_ context.Context, itemID string, _ models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addFavErr != nil {
		return f.addFavErr
	}
	f.favAdds = append(f.favAdds, itemID)
	return nil
}

func (f *fakeClient) RemoveFavorite(_ context.Context, itemID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.removeFavErr != nil {
		return f.removeFavErr
	}
	f.favRemovals = append(f.favRemovals, itemID)
	return nil
}

func (f *fakeClient) Login(context.Context, models.Credentials) (*models.AuthResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeClient) Register(context.Context, models.Registration) (*models.AuthResponse, error) {
	return f.registerResp, f.registerErr
}

func (f *fakeClient) Profile(context.Context) (*models.UserSummary, error) {
	return f.profileResp, f.profileErr
}

func (f *fakeClient) CreateOrder(_ context.Context, req models.OrderRequest) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.orderReq = &req
	return f.createdOrder, nil
}

func (f *fakeClient) DownloadProduct(context.Context, string) (*models.Product, error) {
	return f.downloadGrant, f.downloadErr
}

func (f *fakeClient) RecordDownload(_ context.Context, entry models.DownloadEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.recordErr != nil {
		return f.recordErr
	}
	f.recorded = append(f.recorded, entry)
	return nil
}

func (f *fakeClient) Downloads(context.Context) ([]models.DownloadEntry, error) {
	return f.downloadsList, nil
}

func setupCartDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS cart_items (
  product_id TEXT PRIMARY KEY,
  quantity   INTEGER NOT NULL DEFAULT 1,
  price      REAL NOT NULL DEFAULT 0,
  title      TEXT NOT NULL DEFAULT '',
  image_url  TEXT NOT NULL DEFAULT '',
  category   TEXT NOT NULL DEFAULT '',
  vendor_id  TEXT NOT NULL DEFAULT '',
  added_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
DELETE FROM cart_items;
`)
	require.NoError(t, err)
	return db
}

func newTestSession(t *testing.T) *SessionService {
	t.Helper()
	return NewSessionService(newMemSessionRepo(), logging.NewNopLogger())
}

func newTestCartRepo(t *testing.T, dbName string) *cartrepo.SQLiteRepository {
	t.Helper()
	return cartrepo.NewSQLiteRepository(setupCartDB(t, dbName))
}

func newTestCartService(t *testing.T, client api.Client, sess *SessionService, dbName string) *CartService {
	t.Helper()
	return NewCartService(client, sess, newTestCartRepo(t, dbName), logging.NewNopLogger())
}
