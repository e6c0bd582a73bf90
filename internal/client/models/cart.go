package models

import "math"

// CartItem is one cart row. PriceSnapshot is the product price observed
// when the item entered the cart; the displayed total is derived from it,
// never stored.
type CartItem struct {
	ProductID     string  `json:"product_id"`
	Quantity      int     `json:"quantity"`
	PriceSnapshot float64 `json:"price"`
	Title         string  `json:"title"`
	ImageURL      string  `json:"image_url,omitempty"`
	Category      string  `json:"category,omitempty"`
	VendorID      string  `json:"vendor_id,omitempty"`
}

// Cart is an ordered set of cart rows, at most one per product id.
//
// The methods below are pure transitions: they return a new Cart and never
// touch storage or the network. The cart service wraps them with the
// persistence side effects.
type Cart []CartItem

// Find returns the row for productID, if present.
func (c Cart) Find(productID string) (CartItem, bool) {
	for _, item := range c {
		if item.ProductID == productID {
			return item, true
		}
	}
	return CartItem{}, false
}

// Add applies a quantity delta for the given product. Quantities for the
// same product accumulate in a single row. A resulting quantity of zero or
// less removes the row; a negative delta for an absent product is a no-op.
func (c Cart) Add(p Product, delta int) Cart {
	for i, item := range c {
		if item.ProductID != p.ID {
			continue
		}
		q := item.Quantity + delta
		if q <= 0 {
			return c.Remove(p.ID)
		}
		out := make(Cart, len(c))
		copy(out, c)
		out[i].Quantity = q
		return out
	}
	if delta <= 0 {
		return c
	}
	out := make(Cart, len(c), len(c)+1)
	copy(out, c)
	return append(out, CartItem{
		ProductID:     p.ID,
		Quantity:      delta,
		PriceSnapshot: p.Price,
		Title:         p.Title,
		ImageURL:      p.ImageURL,
		Category:      p.Category,
		VendorID:      p.VendorID,
	})
}

// Remove drops the row for productID. Removing an absent product is a
// no-op, not an error.
func (c Cart) Remove(productID string) Cart {
	out := make(Cart, 0, len(c))
	for _, item := range c {
		if item.ProductID != productID {
			out = append(out, item)
		}
	}
	return out
}

// Total derives the cart total as Σ price×quantity. Malformed rows are
// tolerated: a NaN, infinite or negative price counts as 0, a quantity
// below 1 counts as 1. The result is never NaN.
func (c Cart) Total() float64 {
	var sum float64
	for _, item := range c {
		price := item.PriceSnapshot
		if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
			price = 0
		}
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		sum += price * float64(qty)
	}
	return sum
}

// Count returns the total number of units across all rows.
func (c Cart) Count() int {
	n := 0
	for _, item := range c {
		if item.Quantity < 1 {
			n++
			continue
		}
		n += item.Quantity
	}
	return n
}
