package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/pixelmart/internal/client/models"
)

func formatProduct(p models.Product) string {
	s := fmt.Sprintf("%s  %-30s  $%.2f", p.ID, p.Title, p.Price)
	if p.Category != "" {
		s += "  [" + p.Category + "]"
	}
	if p.Status != "" && p.Status != models.ProductActive {
		s += "  (" + string(p.Status) + ")"
	}
	return s
}

// Explore shows the landing view: the product list and the categories.
func (a *App) Explore(ctx context.Context) error {
	page, err := a.catalog.Explore(ctx)
	if err != nil {
		return err
	}
	printlnFn("Categories:", joinOrDash(page.Categories))
	for _, p := range page.Products {
		printlnFn(formatProduct(p))
	}
	return nil
}

// Browse lists products. args[0] (optional) is a category filter, the
// remaining args form a search query.
func (a *App) Browse(ctx context.Context, args []string) error {
	var category, query string
	if len(args) > 0 {
		category = args[0]
	}
	if len(args) > 1 {
		query = strings.Join(args[1:], " ")
	}

	products, err := a.catalog.Browse(ctx, category, query)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		printlnFn("No products found.")
		return nil
	}
	for _, p := range products {
		printlnFn(formatProduct(p))
	}
	return nil
}

// Show prints a single product, with favorite and downloads markers when
// a session exists.
func (a *App) Show(ctx context.Context, args []string) error {
	id := args[0]
	p, err := a.catalog.Get(ctx, id)
	if err != nil {
		return err
	}

	printlnFn(formatProduct(*p))
	if p.Description != "" {
		printlnFn(p.Description)
	}
	if p.ImageURL != "" {
		printlnFn("Preview:", p.ImageURL)
	}

	if a.isLoggedIn() {
		if fav, err := a.favorites.IsFavorite(ctx, id); err == nil && fav {
			printlnFn("♥ in your favorites")
		}
		if has, err := a.downloads.Has(ctx, id); err == nil && has {
			printlnFn("✓ in your downloads")
		}
	}
	return nil
}

func joinOrDash(ss []string) string {
	if len(ss) == 0 {
		return "-"
	}
	return strings.Join(ss, ", ")
}
