package request

type CreateProductRequest struct {
	Name  string `json:"name" binding:"required,max=200" example:"Vendyz Flash Item"`
	Stock *int   `json:"stock" binding:"required,min=0,max=2147483647" example:"10"`
}

type UpdateStockRequest struct {
	Stock *int `json:"stock" binding:"required,min=0,max=2147483647" example:"25"`
}

// PageQuery binds ?page=&limit=. Values below 1 fall back to defaults and
// limit is clamped downstream.
type PageQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}
