package models

import "time"

// OrderStatus tracks an order through the vendor/admin pipeline. The
// purchasing user never mutates it.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderApproved  OrderStatus = "approved"
	OrderRejected  OrderStatus = "rejected"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
)

// OrderItem is one purchased line.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	VendorID  string  `json:"vendor_id,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is created by checkout and thereafter owned by the backend.
type Order struct {
	ID        string      `json:"id"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	UserID    string      `json:"user_id,omitempty"`
	CreatedAt time.Time   `json:"created_at,omitempty"`
}

// OrderRequest is the checkout payload sent to the backend.
type OrderRequest struct {
	Items []OrderItem `json:"items"`
	Total float64     `json:"total"`
}
