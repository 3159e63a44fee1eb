package response

import "github.com/Nathan-Yinka/vendy-stores/internal/usecase"

type ProductResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
}

type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int               `json:"total"`
}

func FromProductDetail(p *usecase.ProductDetail) ProductResponse {
	return ProductResponse{ProductID: p.ID, Name: p.Name, Stock: p.Stock}
}
