package models

import "time"

// FavoriteEntry is one row in the user's remote favorites collection.
// The snapshot is the product as it looked when favorited.
type FavoriteEntry struct {
	ItemID  string    `json:"item_id"`
	Item    Product   `json:"item"`
	AddedAt time.Time `json:"added_at,omitempty"`
}

// DownloadEntry is one row in the user's remote downloads collection.
// OrderID and PurchasedAt are provenance fields present only when the
// download originates from a completed purchase; their absence marks a
// free-tier direct download.
type DownloadEntry struct {
	ItemID      string     `json:"item_id"`
	Item        Product    `json:"item"`
	AddedAt     time.Time  `json:"added_at,omitempty"`
	OrderID     string     `json:"order_id,omitempty"`
	PurchasedAt *time.Time `json:"purchased_at,omitempty"`
}

// Purchased reports whether the entry came from a paid order.
func (d DownloadEntry) Purchased() bool {
	return d.OrderID != ""
}
