package rpc

type ReserveStockRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	OrderID   string `json:"order_id"`
}

// ReserveStockResponse carries business outcomes as codes. Only faults
// travel as gRPC status errors.
type ReserveStockResponse struct {
	Success        bool   `json:"success"`
	Code           string `json:"code"`
	Message        string `json:"message"`
	RemainingStock int    `json:"remaining_stock"`
	Name           string `json:"name"`
}

type GetProductRequest struct {
	ProductID string `json:"product_id"`
}

type Product struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
}

type CreateProductRequest struct {
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

type UpdateStockRequest struct {
	ProductID string `json:"product_id"`
	Stock     int    `json:"stock"`
}

type ListProductsRequest struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type ListProductsResponse struct {
	Items []Product `json:"items"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
	Total int       `json:"total"`
}

type CreateOrderRequest struct {
	ProductID      string `json:"product_id"`
	Quantity       int    `json:"quantity"`
	UserID         string `json:"user_id"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

type CreateOrderResponse struct {
	OrderID        string `json:"order_id"`
	Status         string `json:"status"`
	Code           string `json:"code"`
	Message        string `json:"message"`
	RemainingStock *int   `json:"remaining_stock,omitempty"`
	Replayed       bool   `json:"replayed"`
}

type GetOrderRequest struct {
	OrderID string `json:"order_id"`
}

type Order struct {
	OrderID        string `json:"order_id"`
	Status         string `json:"status"`
	Code           string `json:"code"`
	Message        string `json:"message"`
	ProductID      string `json:"product_id"`
	Quantity       int    `json:"quantity"`
	UserID         string `json:"user_id"`
	RemainingStock *int   `json:"remaining_stock,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ListOrdersRequest struct {
	UserID string `json:"user_id"`
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
}

type ListOrdersResponse struct {
	Items []Order `json:"items"`
	Page  int     `json:"page"`
	Limit int     `json:"limit"`
	Total int     `json:"total"`
}
