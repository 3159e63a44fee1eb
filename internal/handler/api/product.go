package api

import (
	"net/http"

	reqdto "github.com/Nathan-Yinka/vendy-stores/internal/handler/dto/request"
	resdto "github.com/Nathan-Yinka/vendy-stores/internal/handler/dto/response"
	"github.com/Nathan-Yinka/vendy-stores/internal/handler/httperr"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase"

	"github.com/gin-gonic/gin"
)

const productNotFound = "Product not found"

type ProductHandler struct {
	catalog usecase.CatalogService
}

func NewProductHandler(catalog usecase.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// @Summary List products
// @Description List products ordered by name
// @Tags products
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 50)"
// @Success 200 {object} resdto.ProductListResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var q reqdto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	page, err := h.catalog.ListProducts(c.Request.Context(), q.Page, q.Limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err, productNotFound)
		return
	}

	items := make([]resdto.ProductResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, resdto.FromProductDetail(&page.Items[i]))
	}
	c.JSON(http.StatusOK, resdto.ProductListResponse{
		Items: items,
		Page:  page.Page,
		Limit: page.Limit,
		Total: page.Total,
	})
}

// @Summary Get product
// @Description Get a product by ID. Served from cache when fresh.
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithDomainError(c, err, productNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductDetail(p))
}

// @Summary Create product
// @Description Create a product (admin only)
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateProductRequest true "Product"
// @Success 201 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req reqdto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	p, err := h.catalog.CreateProduct(c.Request.Context(), req.Name, *req.Stock)
	if err != nil {
		httperr.AbortWithDomainError(c, err, productNotFound)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromProductDetail(p))
}

// @Summary Update stock
// @Description Overwrite a product's stock level (admin only)
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.UpdateStockRequest true "Stock"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /products/{id}/stock [patch]
func (h *ProductHandler) UpdateStock(c *gin.Context) {
	var req reqdto.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	p, err := h.catalog.UpdateStock(c.Request.Context(), c.Param("id"), *req.Stock)
	if err != nil {
		httperr.AbortWithDomainError(c, err, productNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductDetail(p))
}
