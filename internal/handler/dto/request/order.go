package request

type CreateOrderRequest struct {
	ProductID string `json:"productId" binding:"required" example:"product-1"`
	Quantity  int    `json:"quantity" binding:"required,min=1,max=2147483647" example:"1"`
}
