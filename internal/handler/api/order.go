package api

import (
	"errors"
	"net/http"

	"github.com/Nathan-Yinka/vendy-stores/internal/domain/order"
	reqdto "github.com/Nathan-Yinka/vendy-stores/internal/handler/dto/request"
	resdto "github.com/Nathan-Yinka/vendy-stores/internal/handler/dto/response"
	"github.com/Nathan-Yinka/vendy-stores/internal/handler/httperr"
	"github.com/Nathan-Yinka/vendy-stores/internal/handler/middleware"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	IdempotencyKeyHeader     = "Idempotency-Key"
	IdempotentReplayedHeader = "Idempotent-Replayed"
	orderNotFound            = "Order not found"
)

var errOrderNotPlaced = errors.New("order not placed")

type OrderHandler struct {
	ordering usecase.OrderingService
}

func NewOrderHandler(ordering usecase.OrderingService) *OrderHandler {
	return &OrderHandler{ordering: ordering}
}

// @Summary Create order
// @Description Reserve stock and record an order. Retrying with the same Idempotency-Key returns the first result.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key for safe retries"
// @Param request body reqdto.CreateOrderRequest true "Order"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	caller, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("principal missing"), "Internal server error", nil)
		return
	}

	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	res, err := h.ordering.PlaceOrder(c.Request.Context(), caller, usecase.PlaceOrderInput{
		ProductID:      req.ProductID,
		Quantity:       req.Quantity,
		IdempotencyKey: c.GetHeader(IdempotencyKeyHeader),
	})
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Product not found")
		return
	}

	if res.Replayed {
		c.Header(IdempotentReplayedHeader, "true")
	}

	body := resdto.FromCreateOrder(res)
	switch res.Code {
	case order.CodeOK:
		c.JSON(http.StatusCreated, body)
	case order.CodeOutOfStock:
		httperr.AbortWithCode(c, http.StatusConflict, errOrderNotPlaced, res.Code, res.Message, body)
	case order.CodeProductNotFound:
		httperr.AbortWithCode(c, http.StatusNotFound, errOrderNotPlaced, res.Code, res.Message, body)
	default:
		httperr.AbortWithCode(c, http.StatusUnprocessableEntity, errOrderNotPlaced, res.Code, res.Message, body)
	}
}

// @Summary Get order
// @Description Get one of the caller's orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	caller, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("principal missing"), "Internal server error", nil)
		return
	}

	o, err := h.ordering.GetOrder(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		httperr.AbortWithDomainError(c, err, orderNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrder(o, ""))
}

// @Summary List orders
// @Description List the caller's confirmed orders, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 50)"
// @Success 200 {object} resdto.OrderListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	caller, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("principal missing"), "Internal server error", nil)
		return
	}

	var q reqdto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	page, err := h.ordering.ListOrders(c.Request.Context(), caller, q.Page, q.Limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err, orderNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.OrderListResponse{
		Items: resdto.FromListedOrders(page.Items),
		Page:  page.Page,
		Limit: page.Limit,
		Total: page.Total,
	})
}
