package api

import (
	"math"

	"github.com/dmitrijs2005/pixelmart/internal/client/models"
)

// The backend has grown several payload dialects over time: ids appear as
// "_id", "id" or a nested "product_id" object, titles as "title" or "name",
// images as "image_url" or "imgWatermark". Everything is mapped into the
// canonical types here, once; nothing downstream branches on shape.

// rawObject is an untyped backend payload object.
type rawObject map[string]any

// stringAt returns the first non-empty string among the given keys.
func (o rawObject) stringAt(keys ...string) string {
	for _, k := range keys {
		if s, ok := o[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// objectAt returns a nested object, if the key holds one.
func (o rawObject) objectAt(key string) (rawObject, bool) {
	m, ok := o[key].(map[string]any)
	return rawObject(m), ok
}

// numberAt returns the first parseable finite number among the given keys.
// JSON numbers decode as float64; string-typed numbers are not accepted.
func (o rawObject) numberAt(keys ...string) (float64, bool) {
	for _, k := range keys {
		if f, ok := o[k].(float64); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f, true
		}
	}
	return 0, false
}

// normalizeProduct maps one backend product object into the canonical type.
func normalizeProduct(o rawObject) models.Product {
	price, _ := o.numberAt("price")
	if price < 0 {
		price = 0
	}
	return models.Product{
		ID:          o.stringAt("_id", "id", "product_id"),
		Title:       o.stringAt("title", "name"),
		Description: o.stringAt("description"),
		Price:       price,
		Category:    o.stringAt("category"),
		ImageURL:    o.stringAt("image_url", "imgWatermark"),
		OriginalURL: o.stringAt("original_url", "imgOriginal"),
		VendorID:    o.stringAt("vendor_id", "user_id"),
		Status:      models.ProductStatus(o.stringAt("status")),
	}
}

// normalizeCartItem maps one backend cart row into the canonical type.
//
// The row may embed the product under a nested "product_id" object or
// carry it flattened; the nested object supplies fallbacks for fields the
// row itself is missing. Malformed quantity is treated as 1, malformed
// price as 0, matching the tolerance the cart total guarantees.
func normalizeCartItem(o rawObject) models.CartItem {
	nested, hasNested := o.objectAt("product_id")

	productID := ""
	if hasNested {
		productID = nested.stringAt("_id", "id")
	}
	if productID == "" {
		productID = o.stringAt("product_id", "_id", "id")
	}

	qty := 1
	if f, ok := o.numberAt("quantity"); ok && f >= 1 {
		qty = int(f)
	}

	price, ok := o.numberAt("price")
	if !ok && hasNested {
		price, _ = nested.numberAt("price")
	}
	if price < 0 {
		price = 0
	}

	item := models.CartItem{
		ProductID:     productID,
		Quantity:      qty,
		PriceSnapshot: price,
		Title:         o.stringAt("title", "name"),
		ImageURL:      o.stringAt("image_url", "imgWatermark"),
		Category:      o.stringAt("category"),
		VendorID:      o.stringAt("vendor_id", "user_id"),
	}
	if hasNested {
		if item.Title == "" {
			item.Title = nested.stringAt("title", "name")
		}
		if item.ImageURL == "" {
			item.ImageURL = nested.stringAt("image_url", "imgWatermark")
		}
		if item.Category == "" {
			item.Category = nested.stringAt("category")
		}
		if item.VendorID == "" {
			item.VendorID = nested.stringAt("vendor_id", "user_id")
		}
	}
	return item
}

func normalizeCart(raw []rawObject) models.Cart {
	cart := make(models.Cart, 0, len(raw))
	for _, o := range raw {
		item := normalizeCartItem(o)
		if item.ProductID == "" {
			continue
		}
		cart = append(cart, item)
	}
	return cart
}

func normalizeProducts(raw []rawObject) []models.Product {
	out := make([]models.Product, 0, len(raw))
	for _, o := range raw {
		p := normalizeProduct(o)
		if p.ID == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
