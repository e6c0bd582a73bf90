package api

import (
	"context"
	"io"

	"github.com/dmitrijs2005/pixelmart/internal/client/models"
)

// TokenSource supplies the credentials the gateway attaches to outbound
// requests. The session service implements it; an empty token means the
// call goes out unauthenticated.
type TokenSource interface {
	Token() string
	ClientID() string
}

// Client is the API contract with the Pixelmart backend. The backend is
// opaque: nothing here assumes anything about its implementation beyond
// the REST surface.
type Client interface {
	// Auth (unauthenticated endpoints).
	Register(ctx context.Context, reg models.Registration) (*models.AuthResponse, error)
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)

	// User profile.
	Profile(ctx context.Context) (*models.UserSummary, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.UserSummary, error)
	ChangePassword(ctx context.Context, chg models.PasswordChange) error
	UserStats(ctx context.Context) (*models.UserStats, error)

	// Favorites collection.
	Favorites(ctx context.Context) ([]models.FavoriteEntry, error)
	AddFavorite(ctx context.Context, itemID string, item models.Product) error
	RemoveFavorite(ctx context.Context, itemID string) error
	CheckFavorite(ctx context.Context, itemID string) (bool, error)

	// Downloads collection.
	Downloads(ctx context.Context) ([]models.DownloadEntry, error)
	RecordDownload(ctx context.Context, entry models.DownloadEntry) error
	Purchased(ctx context.Context) ([]models.Product, error)

	// Server-side cart (authenticated representation).
	GetCart(ctx context.Context) (models.Cart, error)
	AddToCart(ctx context.Context, productID string, quantity int) error
	RemoveFromCart(ctx context.Context, productID string) error
	ClearCart(ctx context.Context) error

	// Catalog.
	Products(ctx context.Context, category, query string) ([]models.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Product(ctx context.Context, id string) (*models.Product, error)
	DownloadProduct(ctx context.Context, id string) (*models.Product, error)

	// Vendor product management.
	MyProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, p models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, p models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	UploadImage(ctx context.Context, filename string, r io.Reader) (*models.ProductUpload, error)

	// Vendor account.
	VendorProfile(ctx context.Context) (*models.UserSummary, error)
	UpdateVendorProfile(ctx context.Context, upd models.ProfileUpdate) (*models.UserSummary, error)
	VendorProducts(ctx context.Context) ([]models.Product, error)
	VendorOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error

	// Admin moderation.
	AdminStats(ctx context.Context) (*models.AdminStats, error)
	AdminVendors(ctx context.Context) ([]models.VendorSummary, error)
	ApproveVendor(ctx context.Context, vendorID string) error
	BlockVendor(ctx context.Context, vendorID string) error
	RejectVendor(ctx context.Context, vendorID string) error
	AdminUsers(ctx context.Context) ([]models.UserSummary, error)
	BlockUser(ctx context.Context, userID string) error
	UnblockUser(ctx context.Context, userID string) error
	AdminProducts(ctx context.Context) ([]models.Product, error)

	// Orders.
	CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error)
}
