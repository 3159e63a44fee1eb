//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/Nathan-Yinka/vendy-stores/internal/domain/auth"
	"github.com/Nathan-Yinka/vendy-stores/internal/domain/order"
	"github.com/Nathan-Yinka/vendy-stores/internal/handler/api"
	resdto "github.com/Nathan-Yinka/vendy-stores/internal/handler/dto/response"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/errs"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase/queries"
	"github.com/Nathan-Yinka/vendy-stores/tests/common/builder"
	"github.com/Nathan-Yinka/vendy-stores/tests/common/httptest"
	"github.com/Nathan-Yinka/vendy-stores/tests/common/testutil"
	usecasemock "github.com/Nathan-Yinka/vendy-stores/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockOrdering *usecasemock.MockOrderingService
	handler      *api.OrderHandler
	buyerID      uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockOrdering = usecasemock.NewMockOrderingService(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockOrdering)
	s.buyerID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.buyerID)
		c.Set("user_role", auth.RoleUser)
		c.Next()
	}

	s.router.POST("/orders", authMiddleware, s.handler.Create)
	s.router.GET("/orders", authMiddleware, s.handler.List)
	s.router.GET("/orders/:id", authMiddleware, s.handler.Get)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) principal() auth.Principal {
	return auth.Principal{BuyerID: s.buyerID, Role: auth.RoleUser}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *OrderHandlerTestSuite) TestCreate() {
	url := "/orders"
	reqBody := builder.NewOrderBuilder().BuildCreateRequestDTO()

	s.Run("success: 201 with the order", func() {
		resp := builder.NewOrderBuilder().BuildCreateResponse()
		s.mockOrdering.EXPECT().PlaceOrder(gomock.Any(), s.principal(), usecase.PlaceOrderInput{
			ProductID: reqBody.ProductID, Quantity: reqBody.Quantity, IdempotencyKey: "key-1",
		}).Return(resp, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "token",
			map[string]string{api.IdempotencyKeyHeader: "key-1"})

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(resp.OrderID, body.OrderID)
		s.Equal("CONFIRMED", body.Status)
		s.Equal(9, *body.RemainingStock)
		httptest.AssertNoHeader(s.T(), rec, api.IdempotentReplayedHeader)
	})

	s.Run("success: replay is flagged", func() {
		resp := builder.NewOrderBuilder().BuildCreateResponse()
		resp.Replayed = true
		s.mockOrdering.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(resp, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		s.Equal(http.StatusCreated, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{api.IdempotentReplayedHeader: "true"})
	})

	s.Run("error: 409 when out of stock", func() {
		resp := builder.NewOrderBuilder().Failed(order.CodeOutOfStock, "Out of stock").BuildCreateResponse()
		s.mockOrdering.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(resp, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "OUT_OF_STOCK")
		s.Contains(rec.Body.String(), resp.OrderID)
	})

	s.Run("error: 404 when the product does not exist", func() {
		resp := builder.NewOrderBuilder().Failed(order.CodeProductNotFound, "Product not found").BuildCreateResponse()
		s.mockOrdering.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(resp, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "PRODUCT_NOT_FOUND")
	})

	s.Run("error: 503 when inventory is unavailable", func() {
		s.mockOrdering.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("peer unavailable"), errs.ErrDependencyUnavailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		httptest.AssertErrorCode(s.T(), rec, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE")
	})

	s.Run("error: 503 on deadline", func() {
		s.mockOrdering.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		s.Equal(http.StatusServiceUnavailable, rec.Code)
	})

	s.Run("error: 400 on validation errors", func() {
		for _, tc := range []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "quantity 0", mutate: testutil.Field("quantity", 0)},
			{name: "quantity negative", mutate: testutil.Field("quantity", -2)},
			{name: "quantity above int32", mutate: testutil.Field("quantity", 2147483648)},
			{name: "missing productId", mutate: testutil.Field("productId", nil)},
			{name: "missing quantity", mutate: testutil.Field("quantity", nil)},
		} {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *OrderHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		msg := builder.NewOrderBuilder().WithBuyer(s.buyerID).BuildMessage()
		s.mockOrdering.EXPECT().GetOrder(gomock.Any(), s.principal(), msg.OrderID).Return(msg, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+msg.OrderID, nil, "token")

		var body resdto.OrderDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(msg.OrderID, body.OrderID)
		s.Equal(s.buyerID.String(), body.UserID)
	})

	s.Run("error: 404 for someone else's order", func() {
		s.mockOrdering.EXPECT().GetOrder(gomock.Any(), gomock.Any(), "o-1").
			Return(nil, errs.Mark(errs.New("order belongs to another buyer"), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/o-1", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *OrderHandlerTestSuite) TestList() {
	s.Run("success: items carry the product name", func() {
		msg := builder.NewOrderBuilder().WithBuyer(s.buyerID).BuildMessage()
		s.mockOrdering.EXPECT().ListOrders(gomock.Any(), s.principal(), 1, 20).Return(&queries.Page[usecase.ListedOrder]{
			Items: []usecase.ListedOrder{{Order: *msg, ProductName: "Vendyz Flash Item"}},
			Page:  1,
			Limit: 20,
			Total: 1,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?page=1&limit=20", nil, "token")

		var body resdto.OrderListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal("Vendyz Flash Item", body.Items[0].ProductName)
		s.Equal(1, body.Total)
	})

	s.Run("error: 503 when the order service is down", func() {
		s.mockOrdering.EXPECT().ListOrders(gomock.Any(), gomock.Any(), 0, 0).
			Return(nil, errs.Mark(errs.New("peer unavailable"), errs.ErrDependencyUnavailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders", nil, "token")

		httptest.AssertErrorCode(s.T(), rec, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE")
	})
}
