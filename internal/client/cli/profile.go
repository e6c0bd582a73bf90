package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/pixelmart/internal/client/models"
	"github.com/dmitrijs2005/pixelmart/internal/common"
)

// Profile fetches and prints the account profile.
func (a *App) Profile(ctx context.Context) error {
	if !a.isLoggedIn() {
		return common.ErrNoToken
	}
	u, err := a.profile.Profile(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("%s <%s> role=%s", u.Name, u.Email, u.Role))

	// The counters are decorative; a failed fetch never hides the profile.
	if stats, err := a.profile.UserStats(ctx); err == nil {
		printlnFn(fmt.Sprintf("Downloads: %d  Favorites: %d  Member since: %s",
			stats.Downloads, stats.Favorites, stats.MemberSince))
	}
	return nil
}

// UpdateProfile prompts for the mutable profile fields; empty answers
// leave the current value unchanged.
func (a *App) UpdateProfile(ctx context.Context) error {
	if !a.isLoggedIn() {
		return common.ErrNoToken
	}

	name, err := getSimpleText(a.reader, "New name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "New email (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	picURL, err := getSimpleText(a.reader, "New profile picture URL (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	u, err := a.profile.UpdateProfile(ctx, models.ProfileUpdate{Name: name, Email: email, ProfilePicURL: picURL})
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Profile updated: %s <%s>", u.Name, u.Email))
	return nil
}

// ChangePassword prompts for the current and the new password.
func (a *App) ChangePassword(ctx context.Context) error {
	if !a.isLoggedIn() {
		return common.ErrNoToken
	}

	printlnFn("Current password:")
	current, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	printlnFn("New password:")
	next, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.profile.ChangePassword(ctx, models.PasswordChange{CurrentPassword: current, NewPassword: next}); err != nil {
		return err
	}
	printlnFn("Password changed.")
	return nil
}
