package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/pixelmart/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and creates the account. Regular
// users are logged in right away; vendor registrations stay pending until
// an admin approves them, which is reported to the user.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	asVendor, err := getSimpleText(a.reader, "Register as vendor? (y/N)", os.Stdout)
	if err != nil {
		return err
	}

	reg := models.Registration{Name: name, Email: email, Password: password}
	if strings.EqualFold(asVendor, "y") || strings.EqualFold(asVendor, "yes") {
		reg.Role = models.RoleVendor
	}

	user, pending, err := a.auth.Register(ctx, reg)
	if err != nil {
		return err
	}
	if pending {
		printlnFn("Vendor account created; an administrator has to approve it before you can log in.")
		return nil
	}
	printlnFn(fmt.Sprintf("Welcome, %s!", user.Name))
	return nil
}

// Login prompts for credentials and authenticates. On success the server
// cart replaces whatever was collected anonymously.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Welcome back, %s!", user.Name))
	return nil
}

// Logout destroys the session; the cart resets to an empty anonymous one.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// WhoAmI prints the cached session user.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s> role=%s", u.Name, u.Email, u.Role))
	return nil
}
