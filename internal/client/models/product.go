package models

// ProductStatus is the moderation state of a product.
type ProductStatus string

const (
	ProductPending  ProductStatus = "pending"
	ProductActive   ProductStatus = "active"
	ProductRejected ProductStatus = "rejected"
	ProductInactive ProductStatus = "inactive"
)

// Product is the catalog item as seen by the client. Public catalog
// endpoints only return active products; admin endpoints return every
// status, so consumers must check Status rather than assume filtering.
type Product struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Price       float64       `json:"price"`
	Category    string        `json:"category,omitempty"`
	ImageURL    string        `json:"image_url,omitempty"`
	OriginalURL string        `json:"original_url,omitempty"`
	VendorID    string        `json:"vendor_id,omitempty"`
	Status      ProductStatus `json:"status,omitempty"`
}

// ProductUpload is the result of a multipart image upload: URLs assigned
// by the backend for the watermarked preview and the original.
type ProductUpload struct {
	ImageURL    string `json:"image_url"`
	OriginalURL string `json:"original_url"`
}

// VendorSummary is the vendor account as listed in admin views.
type VendorSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Status   string `json:"status,omitempty"`
	Products int    `json:"products,omitempty"`
}

// AdminStats is the admin dashboard aggregate.
type AdminStats struct {
	Users    int     `json:"users"`
	Vendors  int     `json:"vendors"`
	Products int     `json:"products"`
	Orders   int     `json:"orders"`
	Revenue  float64 `json:"revenue"`
}
