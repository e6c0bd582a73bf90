package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dmitrijs2005/pixelmart/internal/client/models"
)

// Vendor dispatches the vendor subcommands. The service gate rejects
// non-vendor sessions before any network call is made.
func (a *App) Vendor(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: vendor profile [set]|products|orders|add|update|delete|status")
		return nil
	}

	switch args[0] {
	case "profile":
		if len(args) > 1 && args[1] == "set" {
			return a.vendorUpdateProfile(ctx)
		}
		u, err := a.vendor.Profile(ctx)
		if err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("%s <%s>", u.Name, u.Email))
		return nil
	case "products":
		return a.vendorProducts(ctx)
	case "orders":
		return a.vendorOrders(ctx)
	case "add":
		return a.vendorAddProduct(ctx)
	case "update":
		if len(args) < 2 {
			printlnFn("Usage: vendor update <product-id>")
			return nil
		}
		return a.vendorUpdateProduct(ctx, args[1])
	case "delete":
		if len(args) < 2 {
			printlnFn("Usage: vendor delete <product-id>")
			return nil
		}
		return a.vendor.DeleteProduct(ctx, args[1])
	case "status":
		if len(args) < 3 {
			printlnFn("Usage: vendor status <order-id> <approved|rejected|shipped|delivered>")
			return nil
		}
		return a.vendor.SetOrderStatus(ctx, args[1], models.OrderStatus(args[2]))
	default:
		printlnFn("Unknown vendor subcommand:", args[0])
		return nil
	}
}

func (a *App) vendorProducts(ctx context.Context) error {
	products, err := a.vendor.Products(ctx)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		printlnFn("No products yet.")
		return nil
	}
	for _, p := range products {
		printlnFn(formatProduct(p))
	}
	return nil
}

func (a *App) vendorOrders(ctx context.Context) error {
	orders, err := a.vendor.Orders(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		printlnFn("No orders yet.")
		return nil
	}
	for _, o := range orders {
		printlnFn(fmt.Sprintf("%s  $%.2f  %s  (%d items)", o.ID, o.Total, o.Status, len(o.Items)))
	}
	return nil
}

// vendorAddProduct collects the product fields interactively, uploads the
// image and creates the product. New products start in pending status
// until an admin approves them.
func (a *App) vendorAddProduct(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Enter description (double Enter to finish):", os.Stdout)
	if err != nil {
		return err
	}
	priceStr, err := getSimpleText(a.reader, "Enter price", os.Stdout)
	if err != nil {
		return err
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return fmt.Errorf("invalid price %q", priceStr)
	}
	category, err := getSimpleText(a.reader, "Enter category", os.Stdout)
	if err != nil {
		return err
	}
	imagePath, err := getSimpleText(a.reader, "Enter image file path", os.Stdout)
	if err != nil {
		return err
	}

	file, err := os.Open(imagePath)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	p := models.Product{Title: title, Description: description, Price: price, Category: category}
	created, err := a.vendor.CreateProduct(ctx, p, filepath.Base(imagePath), file)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Product %s created (%s).", created.ID, created.Status))
	return nil
}

// vendorUpdateProduct edits an existing product; empty answers keep the
// current value. The product is looked up in the vendor's own list so a
// foreign id fails before anything is prompted away.
func (a *App) vendorUpdateProduct(ctx context.Context, id string) error {
	products, err := a.vendor.Products(ctx)
	if err != nil {
		return err
	}
	var current *models.Product
	for i := range products {
		if products[i].ID == id {
			current = &products[i]
			break
		}
	}
	if current == nil {
		return fmt.Errorf("no product with id %q", id)
	}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Title [%s] (empty to keep)", current.Title), os.Stdout)
	if err != nil {
		return err
	}
	if title != "" {
		current.Title = title
	}
	description, err := getSimpleText(a.reader, "Description (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if description != "" {
		current.Description = description
	}
	priceStr, err := getSimpleText(a.reader, fmt.Sprintf("Price [%.2f] (empty to keep)", current.Price), os.Stdout)
	if err != nil {
		return err
	}
	if priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			return fmt.Errorf("invalid price %q", priceStr)
		}
		current.Price = price
	}
	category, err := getSimpleText(a.reader, fmt.Sprintf("Category [%s] (empty to keep)", current.Category), os.Stdout)
	if err != nil {
		return err
	}
	if category != "" {
		current.Category = category
	}

	updated, err := a.vendor.UpdateProduct(ctx, id, *current)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Product %s updated (%s).", updated.ID, updated.Status))
	return nil
}

// vendorUpdateProfile edits the vendor account; empty answers keep the
// current value.
func (a *App) vendorUpdateProfile(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "New name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "New email (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	u, err := a.vendor.UpdateProfile(ctx, models.ProfileUpdate{Name: name, Email: email})
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Vendor profile updated: %s <%s>", u.Name, u.Email))
	return nil
}
