package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/pixelmart/internal/client/models"
	"github.com/dmitrijs2005/pixelmart/internal/client/services"
)

// stubInputs replaces the interactive input seams: getSimpleText returns
// the given answers in order, getPassword always returns password.
func stubInputs(t *testing.T, answers []string, password string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		a := answers[i]
		i++
		return a, nil
	}
	getPassword = func(_ io.Writer) (string, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeSession struct {
	user *models.UserSummary
}

func (f *fakeSession) CurrentUser() *models.UserSummary { return f.user }
func (f *fakeSession) IsAuthenticated() bool            { return f.user != nil }

type fakeAuthSvc struct {
	creds   models.Credentials
	reg     models.Registration
	user    *models.UserSummary
	pending bool
	err     error

	logoutCalled bool
}

func (f *fakeAuthSvc) Login(_ context.Context, creds models.Credentials) (*models.UserSummary, error) {
	f.creds = creds
	return f.user, f.err
}
func (f *fakeAuthSvc) Register(_ context.Context, reg models.Registration) (*models.UserSummary, bool, error) {
	f.reg = reg
	return f.user, f.pending, f.err
}
func (f *fakeAuthSvc) Logout(context.Context) error {
	f.logoutCalled = true
	return nil
}
func (f *fakeAuthSvc) Verify(context.Context) (*models.UserSummary, error) { return f.user, nil }

type fakeCartSvc struct {
	items    models.Cart
	added    []string
	addedQty []int
	removed  []string
	cleared  bool
	order    *models.Order
	err      error
}

func (f *fakeCartSvc) Load(context.Context) error { return nil }
func (f *fakeCartSvc) Items() models.Cart         { return f.items }
func (f *fakeCartSvc) Total() float64             { return f.items.Total() }
func (f *fakeCartSvc) Count() int                 { return f.items.Count() }
func (f *fakeCartSvc) Add(_ context.Context, p models.Product, qty int) error {
	if f.err != nil {
		return f.err
	}
	f.added = append(f.added, p.ID)
	f.addedQty = append(f.addedQty, qty)
	return nil
}
func (f *fakeCartSvc) Remove(_ context.Context, id string) error {
	f.removed = append(f.removed, id)
	return nil
}
func (f *fakeCartSvc) Clear(context.Context) error { f.cleared = true; return nil }
func (f *fakeCartSvc) Checkout(context.Context) (*models.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.order, nil
}

type fakeCatalogSvc struct {
	products map[string]*models.Product
	err      error
}

func (f *fakeCatalogSvc) Explore(context.Context) (*services.ExplorePage, error) { return nil, f.err }
func (f *fakeCatalogSvc) Browse(context.Context, string, string) ([]models.Product, error) {
	return nil, f.err
}
func (f *fakeCatalogSvc) Get(_ context.Context, id string) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.products[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

type fakeProfileClient struct {
	user       *models.UserSummary
	upd        models.ProfileUpdate
	stats      *models.UserStats
	statsErr   error
	statsCalls int
}

func (f *fakeProfileClient) Profile(context.Context) (*models.UserSummary, error) {
	return f.user, nil
}
func (f *fakeProfileClient) UpdateProfile(_ context.Context, upd models.ProfileUpdate) (*models.UserSummary, error) {
	f.upd = upd
	return f.user, nil
}
func (f *fakeProfileClient) ChangePassword(context.Context, models.PasswordChange) error {
	return nil
}
func (f *fakeProfileClient) UserStats(context.Context) (*models.UserStats, error) {
	f.statsCalls++
	return f.stats, f.statsErr
}

type fakeVendorSvc struct {
	products  []models.Product
	updatedID string
	updated   *models.Product
	profUpd   *models.ProfileUpdate
}

func (f *fakeVendorSvc) Profile(context.Context) (*models.UserSummary, error) {
	return &models.UserSummary{Name: "Studio"}, nil
}
func (f *fakeVendorSvc) UpdateProfile(_ context.Context, upd models.ProfileUpdate) (*models.UserSummary, error) {
	f.profUpd = &upd
	return &models.UserSummary{Name: upd.Name, Email: upd.Email}, nil
}
func (f *fakeVendorSvc) Products(context.Context) ([]models.Product, error) {
	return f.products, nil
}
func (f *fakeVendorSvc) CreateProduct(_ context.Context, p models.Product, _ string, _ io.Reader) (*models.Product, error) {
	return &p, nil
}
func (f *fakeVendorSvc) UpdateProduct(_ context.Context, id string, p models.Product) (*models.Product, error) {
	f.updatedID = id
	f.updated = &p
	return &p, nil
}
func (f *fakeVendorSvc) DeleteProduct(context.Context, string) error    { return nil }
func (f *fakeVendorSvc) Orders(context.Context) ([]models.Order, error) { return nil, nil }
func (f *fakeVendorSvc) SetOrderStatus(context.Context, string, models.OrderStatus) error {
	return nil
}

// capturePrintln records every printed line for assertions.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	var lines []string
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, fmt.Sprint(args...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestLogin_PassesCredentials(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"alice@example.org"}, "secret")

	auth := &fakeAuthSvc{user: &models.UserSummary{Name: "Alice"}}
	a := &App{auth: auth}

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, "alice@example.org", auth.creds.Email)
	assert.Equal(t, "secret", auth.creds.Password)
}

func TestRegister_VendorStaysPending(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"Studio", "studio@example.org", "y"}, "secret")

	auth := &fakeAuthSvc{user: &models.UserSummary{Name: "Studio"}, pending: true}
	a := &App{auth: auth}

	require.NoError(t, a.Register(context.Background()))
	assert.Equal(t, models.RoleVendor, auth.reg.Role)
	assert.Equal(t, "studio@example.org", auth.reg.Email)
}

func TestRegister_DefaultRoleIsEmpty(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"Bob", "bob@example.org", ""}, "secret")

	auth := &fakeAuthSvc{user: &models.UserSummary{Name: "Bob"}}
	a := &App{auth: auth}

	require.NoError(t, a.Register(context.Background()))
	assert.Empty(t, auth.reg.Role)
}

func TestAddToCart_FetchesProductFirst(t *testing.T) {
	silencePrintln(t)

	cart := &fakeCartSvc{}
	catalog := &fakeCatalogSvc{products: map[string]*models.Product{
		"img1": {ID: "img1", Title: "Misty Dunes", Price: 12.5},
	}}
	a := &App{cart: cart, catalog: catalog}

	require.NoError(t, a.AddToCart(context.Background(), []string{"img1", "3"}))
	assert.Equal(t, []string{"img1"}, cart.added)
	assert.Equal(t, []int{3}, cart.addedQty)
}

func TestAddToCart_RejectsBadQuantity(t *testing.T) {
	silencePrintln(t)
	a := &App{cart: &fakeCartSvc{}, catalog: &fakeCatalogSvc{}}
	err := a.AddToCart(context.Background(), []string{"img1", "lots"})
	require.Error(t, err)
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	silencePrintln(t)
	cart := &fakeCartSvc{}
	a := &App{cart: cart, catalog: &fakeCatalogSvc{products: map[string]*models.Product{}}}

	err := a.AddToCart(context.Background(), []string{"nope"})
	require.Error(t, err)
	assert.Empty(t, cart.added, "nothing is added when the product lookup fails")
}

func TestCheckout_ReportsOrder(t *testing.T) {
	silencePrintln(t)
	cart := &fakeCartSvc{order: &models.Order{ID: "ord1", Total: 25, Status: models.OrderPending}}
	a := &App{cart: cart}
	require.NoError(t, a.Checkout(context.Background()))
}

func TestLogout_DelegatesToAuth(t *testing.T) {
	silencePrintln(t)
	auth := &fakeAuthSvc{}
	a := &App{auth: auth}
	require.NoError(t, a.Logout(context.Background()))
	assert.True(t, auth.logoutCalled)
}

func TestProfile_ShowsStats(t *testing.T) {
	lines := capturePrintln(t)
	pc := &fakeProfileClient{
		user:  &models.UserSummary{Name: "Alice", Email: "alice@example.org", Role: models.RoleUser},
		stats: &models.UserStats{Downloads: 7, Favorites: 3, MemberSince: "January 2025"},
	}
	a := &App{session: &fakeSession{user: pc.user}, profile: pc}

	require.NoError(t, a.Profile(context.Background()))
	require.Len(t, *lines, 2)
	assert.Contains(t, (*lines)[1], "Downloads: 7")
	assert.Contains(t, (*lines)[1], "Favorites: 3")
	assert.Contains(t, (*lines)[1], "January 2025")
}

func TestProfile_StatsFailureStillShowsProfile(t *testing.T) {
	lines := capturePrintln(t)
	pc := &fakeProfileClient{
		user:     &models.UserSummary{Name: "Alice", Email: "alice@example.org"},
		statsErr: errors.New("boom"),
	}
	a := &App{session: &fakeSession{user: pc.user}, profile: pc}

	require.NoError(t, a.Profile(context.Background()))
	require.Len(t, *lines, 1, "a failed stats fetch never hides the profile")
	assert.Equal(t, 1, pc.statsCalls)
}

func TestUpdateProfile_SendsAllFields(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"New Name", "new@example.org", "http://pics.example/me.png"}, "")

	pc := &fakeProfileClient{user: &models.UserSummary{Name: "New Name", Email: "new@example.org"}}
	a := &App{session: &fakeSession{user: pc.user}, profile: pc}

	require.NoError(t, a.UpdateProfile(context.Background()))
	assert.Equal(t, "New Name", pc.upd.Name)
	assert.Equal(t, "new@example.org", pc.upd.Email)
	assert.Equal(t, "http://pics.example/me.png", pc.upd.ProfilePicURL)
}

func TestVendorUpdate_KeepsUnchangedFields(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"", "", "19.99", ""}, "")

	v := &fakeVendorSvc{products: []models.Product{
		{ID: "p1", Title: "Misty Dunes", Price: 10, Category: "nature"},
	}}
	a := &App{vendor: v}

	require.NoError(t, a.Vendor(context.Background(), []string{"update", "p1"}))
	assert.Equal(t, "p1", v.updatedID)
	require.NotNil(t, v.updated)
	assert.Equal(t, "Misty Dunes", v.updated.Title)
	assert.InDelta(t, 19.99, v.updated.Price, 1e-9)
	assert.Equal(t, "nature", v.updated.Category)
}

func TestVendorUpdate_UnknownProduct(t *testing.T) {
	silencePrintln(t)
	v := &fakeVendorSvc{}
	a := &App{vendor: v}

	err := a.Vendor(context.Background(), []string{"update", "nope"})
	require.Error(t, err)
	assert.Nil(t, v.updated)
}

func TestVendorProfileSet(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"Studio", "studio@example.org"}, "")

	v := &fakeVendorSvc{}
	a := &App{vendor: v}

	require.NoError(t, a.Vendor(context.Background(), []string{"profile", "set"}))
	require.NotNil(t, v.profUpd)
	assert.Equal(t, "Studio", v.profUpd.Name)
	assert.Equal(t, "studio@example.org", v.profUpd.Email)
}

func TestGetStatus(t *testing.T) {
	a := &App{
		session: &fakeSession{},
		cart:    &fakeCartSvc{},
	}
	assert.Equal(t, "(guest)", a.getStatus())

	a.session = &fakeSession{user: &models.UserSummary{Name: "Alice", Role: models.RoleUser}}
	assert.Equal(t, "(Alice)", a.getStatus())

	a.session = &fakeSession{user: &models.UserSummary{Name: "Ada", Role: models.RoleAdmin}}
	a.cart = &fakeCartSvc{items: models.Cart{{ProductID: "p", Quantity: 2, PriceSnapshot: 1}}}
	assert.Equal(t, "(Ada admin, cart:2)", a.getStatus())
}
