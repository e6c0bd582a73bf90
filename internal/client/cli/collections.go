package cli

import (
	"context"
	"fmt"
)

// Favorites prints the favorites collection.
func (a *App) Favorites(ctx context.Context) error {
	entries, err := a.favorites.List(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		printlnFn("No favorites yet.")
		return nil
	}
	for _, e := range entries {
		printlnFn(formatProduct(e.Item))
	}
	return nil
}

// Favorite adds args[0] to the favorites collection.
func (a *App) Favorite(ctx context.Context, args []string) error {
	p, err := a.catalog.Get(ctx, args[0])
	if err != nil {
		return err
	}
	if err := a.favorites.Add(ctx, *p); err != nil {
		return err
	}
	printlnFn("Added to favorites.")
	return nil
}

// Unfavorite removes args[0] from the favorites collection.
func (a *App) Unfavorite(ctx context.Context, args []string) error {
	if err := a.favorites.Remove(ctx, args[0]); err != nil {
		return err
	}
	printlnFn("Removed from favorites.")
	return nil
}

// Downloads prints the downloads collection, marking purchased entries.
func (a *App) Downloads(ctx context.Context) error {
	entries, err := a.downloads.List(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		printlnFn("No downloads yet.")
		return nil
	}
	for _, e := range entries {
		line := formatProduct(e.Item)
		if e.Purchased() {
			line += "  (order " + e.OrderID + ")"
		}
		printlnFn(line)
	}
	return nil
}

// Download requests download access for args[0] and prints the original
// image URL. args[1] (optional) is the order id the download belongs to.
func (a *App) Download(ctx context.Context, args []string) error {
	orderID := ""
	if len(args) > 1 {
		orderID = args[1]
	}

	granted, err := a.downloads.Download(ctx, args[0], orderID)
	if err != nil {
		return err
	}
	url := granted.OriginalURL
	if url == "" {
		url = granted.ImageURL
	}
	printlnFn(fmt.Sprintf("Download ready: %s", url))
	return nil
}

// Purchased prints the purchase history.
func (a *App) Purchased(ctx context.Context) error {
	products, err := a.orders.Purchased(ctx)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		printlnFn("No purchases yet.")
		return nil
	}
	for _, p := range products {
		printlnFn(formatProduct(p))
	}
	return nil
}
