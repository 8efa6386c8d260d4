package http

import "time"

// Error is the uniform error body for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewProduct is the request body for registering a catalog product.
type NewProduct struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Stock      int    `json:"stock"`
	Category   string `json:"category"`
}

// Product is the response shape for catalog rows.
type Product struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Stock      int    `json:"stock"`
	Category   string `json:"category"`
}

// NewClient is the request body for registering a client.
type NewClient struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

// Client is the response shape for a registered client.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

// NewOrderLine is one requested order position.
type NewOrderLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// NewOrder is the request body for opening an order.
type NewOrder struct {
	ClientID  string         `json:"client_id"`
	OrderType string         `json:"order_type"`
	Lines     []NewOrderLine `json:"lines"`
}

// OrderLine is one order position in a response.
type OrderLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Order is the response shape for orders.
type Order struct {
	ID         int64       `json:"id"`
	ClientID   string      `json:"client_id"`
	ClientName string      `json:"client_name,omitempty"`
	OrderType  string      `json:"order_type"`
	Status     string      `json:"status"`
	Paid       bool        `json:"paid"`
	TotalCents int64       `json:"total_cents"`
	CreatedAt  time.Time   `json:"created_at"`
	Lines      []OrderLine `json:"lines"`
}

// UpdateOrderStatus is the request body for advancing an order's status.
// Paid is optional; when present it overrides the transition's payment
// rule.
type UpdateOrderStatus struct {
	Status string `json:"status"`
	Paid   *bool  `json:"paid,omitempty"`
}

// Delivery is the response shape for delivery records.
type Delivery struct {
	ID            int64      `json:"id"`
	OrderID       int64      `json:"order_id"`
	OrderStatus   string     `json:"order_status,omitempty"`
	ClientName    string     `json:"client_name,omitempty"`
	ClientAddress string     `json:"client_address,omitempty"`
	StartedAt     *time.Time `json:"started_at"`
}
