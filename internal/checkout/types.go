package checkout

// Order is the payload forwarded to the external order endpoint. Timestamp
// is ISO-8601.
type Order struct {
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	ProductURL  string  `json:"product_url"`
	Timestamp   string  `json:"timestamp"`
	Total       float64 `json:"total"`
}
