package domain

// GumroadPayload is the subset of a Gumroad sale ping the webhook reads.
type GumroadPayload struct {
	SaleID         string  `json:"sale_id"`
	ProductID      string  `json:"product_id"`
	ProductName    string  `json:"product_name"`
	Permalink      string  `json:"permalink"`
	Email          string  `json:"email"`
	Price          float64 `json:"price"`
	Currency       string  `json:"currency"`
	Quantity       int     `json:"quantity"`
	OrderNumber    int64   `json:"order_number"`
	SaleTimestamp  string  `json:"sale_timestamp"`
	PurchaserID    string  `json:"purchaser_id"`
	SubscriptionID string  `json:"subscription_id,omitempty"`
	Refunded       bool    `json:"refunded,omitempty"`
	Test           bool    `json:"test,omitempty"`
}

// WebhookResult is the outcome of processing a payment ping.
// Success false means the upgrade could not be written.
type WebhookResult struct {
	Success bool
	Message string
}
