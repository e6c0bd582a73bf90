package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/pixelmart/internal/client/api"
	"github.com/dmitrijs2005/pixelmart/internal/client/config"
	"github.com/dmitrijs2005/pixelmart/internal/client/models"
	cartrepo "github.com/dmitrijs2005/pixelmart/internal/client/repositories/cart"
	sessionrepo "github.com/dmitrijs2005/pixelmart/internal/client/repositories/session"
	"github.com/dmitrijs2005/pixelmart/internal/client/services"
	"github.com/dmitrijs2005/pixelmart/internal/client/storage"
	"github.com/dmitrijs2005/pixelmart/internal/logging"

	_ "modernc.org/sqlite"
)

// The interfaces below define the minimal service surface each command
// group needs. The concrete services satisfy them; tests provide fakes.

type authService interface {
	Login(ctx context.Context, creds models.Credentials) (*models.UserSummary, error)
	Register(ctx context.Context, reg models.Registration) (*models.UserSummary, bool, error)
	Logout(ctx context.Context) error
	Verify(ctx context.Context) (*models.UserSummary, error)
}

type sessionInfo interface {
	CurrentUser() *models.UserSummary
	IsAuthenticated() bool
}

type cartService interface {
	Load(ctx context.Context) error
	Items() models.Cart
	Total() float64
	Count() int
	Add(ctx context.Context, product models.Product, delta int) error
	Remove(ctx context.Context, productID string) error
	Clear(ctx context.Context) error
	Checkout(ctx context.Context) (*models.Order, error)
}

type catalogService interface {
	Explore(ctx context.Context) (*services.ExplorePage, error)
	Browse(ctx context.Context, category, query string) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
}

type favoritesService interface {
	IsFavorite(ctx context.Context, itemID string) (bool, error)
	Add(ctx context.Context, item models.Product) error
	Remove(ctx context.Context, itemID string) error
	List(ctx context.Context) ([]models.FavoriteEntry, error)
}

type downloadsService interface {
	Download(ctx context.Context, productID, orderID string) (*models.Product, error)
	Has(ctx context.Context, productID string) (bool, error)
	List(ctx context.Context) ([]models.DownloadEntry, error)
}

type ordersService interface {
	Purchased(ctx context.Context) ([]models.Product, error)
}

type vendorService interface {
	Profile(ctx context.Context) (*models.UserSummary, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.UserSummary, error)
	Products(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, p models.Product, imageName string, image io.Reader) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, p models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	Orders(ctx context.Context) ([]models.Order, error)
	SetOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error
}

type adminService interface {
	LoadDashboard(ctx context.Context) (*services.Dashboard, error)
	Vendors(ctx context.Context) ([]models.VendorSummary, error)
	ApproveVendor(ctx context.Context, vendorID string) error
	BlockVendor(ctx context.Context, vendorID string) error
	RejectVendor(ctx context.Context, vendorID string) error
	Users(ctx context.Context) ([]models.UserSummary, error)
	BlockUser(ctx context.Context, userID string) error
	UnblockUser(ctx context.Context, userID string) error
	Products(ctx context.Context) ([]models.Product, error)
}

type profileClient interface {
	Profile(ctx context.Context) (*models.UserSummary, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.UserSummary, error)
	ChangePassword(ctx context.Context, chg models.PasswordChange) error
	UserStats(ctx context.Context) (*models.UserStats, error)
}

// App is the interactive client. It owns the wiring of config, storage
// and services and exposes one method per REPL command.
type App struct {
	config    *config.Config
	logger    logging.Logger
	session   sessionInfo
	auth      authService
	cart      cartService
	catalog   catalogService
	favorites favoritesService
	downloads downloadsService
	orders    ordersService
	vendor    vendorService
	admin     adminService
	profile   profileClient
	reader    *bufio.Reader
}

// NewApp opens the local database, restores the persisted session and
// wires the service graph.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open local database: %w", err)
	}

	sess := services.NewSessionService(sessionrepo.NewSQLiteRepository(db), logger)
	sess.Hydrate(ctx)

	httpc := &http.Client{Timeout: c.RequestTimeout}
	client := api.NewGateway(c.APIBaseURL, httpc, sess, logger)

	cart := services.NewCartService(client, sess, cartrepo.NewSQLiteRepository(db), logger)
	auth := services.NewAuthService(client, sess, cart, logger)

	return &App{
		config:    c,
		logger:    logger,
		session:   sess,
		auth:      auth,
		cart:      cart,
		catalog:   services.NewCatalogService(client, logger),
		favorites: services.NewFavoritesService(client, sess, logger),
		downloads: services.NewDownloadsService(client, sess, logger),
		orders:    services.NewOrdersService(client, sess, logger),
		vendor:    services.NewVendorService(client, sess, logger),
		admin:     services.NewAdminService(client, sess, logger),
		profile:   client,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

// Run verifies the restored session, loads the cart and enters the REPL.
// Blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	if user, err := a.auth.Verify(ctx); err != nil {
		a.logger.Warn(ctx, "session verification failed", "error", err)
	} else if user != nil {
		printlnFn(fmt.Sprintf("Welcome back, %s!", user.Name))
	}
	if err := a.cart.Load(ctx); err != nil {
		a.logger.Warn(ctx, "initial cart load failed", "error", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) currentRole() models.Role {
	if u := a.session.CurrentUser(); u != nil {
		return u.Role
	}
	return ""
}

func (a *App) getStatus() string {
	u := a.session.CurrentUser()
	if u == nil {
		return "(guest)"
	}
	s := u.Name
	if u.Role != models.RoleUser && u.Role != "" {
		s = s + " " + string(u.Role)
	}
	if n := a.cart.Count(); n > 0 {
		s = fmt.Sprintf("%s, cart:%d", s, n)
	}
	return fmt.Sprintf("(%s)", s)
}
