package response

import (
	"github.com/Nathan-Yinka/vendy-stores/internal/rpc"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase"
)

type OrderResponse struct {
	OrderID        string `json:"orderId"`
	Status         string `json:"status"`
	Code           string `json:"code"`
	Message        string `json:"message"`
	RemainingStock *int   `json:"remainingStock,omitempty"`
}

type OrderDetailResponse struct {
	OrderID     string `json:"orderId"`
	Status      string `json:"status"`
	Code        string `json:"code"`
	Message     string `json:"message"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName,omitempty"`
	Quantity    int    `json:"quantity"`
	UserID      string `json:"userId"`
	CreatedAt   string `json:"createdAt"`
}

type OrderListResponse struct {
	Items []OrderDetailResponse `json:"items"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
	Total int                   `json:"total"`
}

func FromCreateOrder(r *rpc.CreateOrderResponse) OrderResponse {
	return OrderResponse{
		OrderID:        r.OrderID,
		Status:         r.Status,
		Code:           r.Code,
		Message:        r.Message,
		RemainingStock: r.RemainingStock,
	}
}

func FromOrder(o *rpc.Order, productName string) OrderDetailResponse {
	return OrderDetailResponse{
		OrderID:     o.OrderID,
		Status:      o.Status,
		Code:        o.Code,
		Message:     o.Message,
		ProductID:   o.ProductID,
		ProductName: productName,
		Quantity:    o.Quantity,
		UserID:      o.UserID,
		CreatedAt:   o.CreatedAt,
	}
}

func FromListedOrders(items []usecase.ListedOrder) []OrderDetailResponse {
	out := make([]OrderDetailResponse, 0, len(items))
	for i := range items {
		out = append(out, FromOrder(&items[i].Order, items[i].ProductName))
	}
	return out
}
