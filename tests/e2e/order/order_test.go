//go:build e2e

package order_test

import (
	"net/http"
	"sync"
	"testing"

	"github.com/Nathan-Yinka/vendy-stores/internal/domain/auth"
	"github.com/Nathan-Yinka/vendy-stores/internal/handler/api"
	"github.com/Nathan-Yinka/vendy-stores/internal/infra/journal"
	reqdto "github.com/Nathan-Yinka/vendy-stores/internal/handler/dto/request"
	resdto "github.com/Nathan-Yinka/vendy-stores/internal/handler/dto/response"
	"github.com/Nathan-Yinka/vendy-stores/tests/common/authtest"
	"github.com/Nathan-Yinka/vendy-stores/tests/common/dbtest"
	"github.com/Nathan-Yinka/vendy-stores/tests/common/httptest"
	"github.com/Nathan-Yinka/vendy-stores/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const ordersURL = "/api/orders"

type orderSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(orderSuite))
}

func (s *orderSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

type placed struct {
	status   int
	body     resdto.OrderResponse
	replayed bool
}

func (s *orderSuite) place(token, productID string, quantity int, key string) placed {
	headers := map[string]string{}
	if key != "" {
		headers[api.IdempotencyKeyHeader] = key
	}
	w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, ordersURL,
		reqdto.CreateOrderRequest{ProductID: productID, Quantity: quantity}, token, headers)

	p := placed{status: w.Code, replayed: w.Header().Get(api.IdempotentReplayedHeader) == "true"}
	if w.Code == http.StatusCreated {
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &p.body)
	}
	return p
}

func (s *orderSuite) TestCreateOrder() {
	s.Run("在庫がある場合は201でCONFIRMEDになる", func() {
		_, token := s.jwt.NewBuyer(s.T())

		p := s.place(token, "product-3", 2, "")

		s.Equal(http.StatusCreated, p.status)
		s.Equal("CONFIRMED", p.body.Status)
		s.Equal("OK", p.body.Code)
		s.NotEmpty(p.body.OrderID)
		s.Require().NotNil(p.body.RemainingStock)
		s.Equal(8, *p.body.RemainingStock)
		s.Equal(8, dbtest.ProductStock(s.T(), s.DB, "product-3"))
	})

	s.Run("在庫3に対して5を注文すると409でFAILEDが記録される", func() {
		dbtest.CreateTestProduct(s.T(), s.DB, "product-short", "Short Item", 3)
		_, token := s.jwt.NewBuyer(s.T())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, ordersURL,
			reqdto.CreateOrderRequest{ProductID: "product-short", Quantity: 5}, token)

		httptest.AssertErrorCode(s.T(), w, http.StatusConflict, "OUT_OF_STOCK")
		s.Equal(3, dbtest.ProductStock(s.T(), s.DB, "product-short"))
		s.Equal(1, dbtest.CountOrders(s.T(), s.DB, "product-short", "FAILED"))
		s.Equal(0, dbtest.CountOrders(s.T(), s.DB, "product-short", "CONFIRMED"))
	})

	s.Run("存在しない商品は404でPRODUCT_NOT_FOUND", func() {
		_, token := s.jwt.NewBuyer(s.T())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, ordersURL,
			reqdto.CreateOrderRequest{ProductID: "no-such-product", Quantity: 1}, token)

		httptest.AssertErrorCode(s.T(), w, http.StatusNotFound, "PRODUCT_NOT_FOUND")
		s.Equal(1, dbtest.CountOrders(s.T(), s.DB, "no-such-product", "FAILED"))
	})

	s.Run("数量0は400で注文は記録されない", func() {
		_, token := s.jwt.NewBuyer(s.T())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, ordersURL,
			map[string]any{"productId": "product-3", "quantity": 0}, token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
		s.Equal(0, dbtest.CountOrders(s.T(), s.DB, "product-3", ""))
	})

	s.Run("認証なしは401", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, ordersURL,
			reqdto.CreateOrderRequest{ProductID: "product-3", Quantity: 1}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Missing Authorization header")
	})

	s.Run("期限切れトークンは401", func() {
		token := s.jwt.CreateExpiredToken(s.T(), uuid.New(), auth.RoleUser)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, ordersURL,
			reqdto.CreateOrderRequest{ProductID: "product-3", Quantity: 1}, token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid token")
	})
}

func (s *orderSuite) TestIdempotentRetry() {
	s.Run("同じキーでの再送は同じ注文を返し在庫は一度だけ減る", func() {
		buyerID, token := s.jwt.NewBuyer(s.T())
		key := uuid.NewString()

		first := s.place(token, "product-3", 1, key)
		second := s.place(token, "product-3", 1, key)

		s.Equal(http.StatusCreated, first.status)
		s.Equal(http.StatusCreated, second.status)
		s.Equal(first.body.OrderID, second.body.OrderID)
		s.False(first.replayed)
		s.True(second.replayed)
		s.Equal(9, dbtest.ProductStock(s.T(), s.DB, "product-3"))
		s.Equal(1, dbtest.CountOrdersByBuyer(s.T(), s.DB, buyerID))
	})

	s.Run("別の購入者は同じキーでも独立した注文になる", func() {
		_, tokenA := s.jwt.NewBuyer(s.T())
		_, tokenB := s.jwt.NewBuyer(s.T())
		key := "shared-key"

		a := s.place(tokenA, "product-3", 1, key)
		b := s.place(tokenB, "product-3", 1, key)

		s.Equal(http.StatusCreated, a.status)
		s.Equal(http.StatusCreated, b.status)
		s.NotEqual(a.body.OrderID, b.body.OrderID)
		s.Equal(8, dbtest.ProductStock(s.T(), s.DB, "product-3"))
	})

	s.Run("失敗した注文も同じキーで再送すると同じ結果を返す", func() {
		dbtest.CreateTestProduct(s.T(), s.DB, "product-empty", "Empty Item", 0)
		_, token := s.jwt.NewBuyer(s.T())
		key := uuid.NewString()

		first := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, ordersURL,
			reqdto.CreateOrderRequest{ProductID: "product-empty", Quantity: 1}, token,
			map[string]string{api.IdempotencyKeyHeader: key})
		dbtest.CreateTestProduct(s.T(), s.DB, "product-empty", "Empty Item", 5)
		second := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, ordersURL,
			reqdto.CreateOrderRequest{ProductID: "product-empty", Quantity: 1}, token,
			map[string]string{api.IdempotencyKeyHeader: key})

		httptest.AssertErrorCode(s.T(), first, http.StatusConflict, "OUT_OF_STOCK")
		httptest.AssertErrorCode(s.T(), second, http.StatusConflict, "OUT_OF_STOCK")
		s.Equal("true", second.Header().Get(api.IdempotentReplayedHeader))
		s.Equal(5, dbtest.ProductStock(s.T(), s.DB, "product-empty"))
	})

	s.Run("同じキーの同時送信でも注文は一件だけ", func() {
		buyerID, token := s.jwt.NewBuyer(s.T())
		key := uuid.NewString()

		const n = 8
		results := make([]placed, n)
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = s.place(token, "product-3", 1, key)
			}()
		}
		wg.Wait()

		for _, r := range results {
			s.Equal(http.StatusCreated, r.status)
			s.Equal(results[0].body.OrderID, r.body.OrderID)
		}
		s.Equal(1, dbtest.CountOrdersByBuyer(s.T(), s.DB, buyerID))

		// Reservations lost to the race are journaled, not reversed.
		orphans, err := s.Services.Journal.List(s.T().Context())
		require.NoError(s.T(), err)
		s.Equal(10, dbtest.ProductStock(s.T(), s.DB, "product-3")+1+countFor(orphans, "product-3"))
	})
}

func (s *orderSuite) TestOversell() {
	s.Run("最後の1個を2人が取り合うと1人だけ成功する", func() {
		_, tokenA := s.jwt.NewBuyer(s.T())
		_, tokenB := s.jwt.NewBuyer(s.T())

		var a, b placed
		var wg sync.WaitGroup
		wg.Add(2)
		go func() { defer wg.Done(); a = s.place(tokenA, "product-1", 1, "") }()
		go func() { defer wg.Done(); b = s.place(tokenB, "product-1", 1, "") }()
		wg.Wait()

		statuses := []int{a.status, b.status}
		s.ElementsMatch([]int{http.StatusCreated, http.StatusConflict}, statuses)
		s.Equal(0, dbtest.ProductStock(s.T(), s.DB, "product-1"))
		s.Equal(1, dbtest.CountOrders(s.T(), s.DB, "product-1", "CONFIRMED"))
		s.Equal(1, dbtest.CountOrders(s.T(), s.DB, "product-1", "FAILED"))
	})

	s.Run("同時注文でも売上数量と残在庫の合計は初期在庫に一致する", func() {
		const initial = 10
		dbtest.CreateTestProduct(s.T(), s.DB, "product-rush", "Rush Item", initial)

		const buyers = 30
		var wg sync.WaitGroup
		codes := make([]int, buyers)
		for i := range buyers {
			_, token := s.jwt.NewBuyer(s.T())
			wg.Add(1)
			go func() {
				defer wg.Done()
				codes[i] = s.place(token, "product-rush", 1, "").status
			}()
		}
		wg.Wait()

		created := 0
		for _, c := range codes {
			s.Contains([]int{http.StatusCreated, http.StatusConflict}, c)
			if c == http.StatusCreated {
				created++
			}
		}
		stock := dbtest.ProductStock(s.T(), s.DB, "product-rush")
		s.Equal(initial, created)
		s.Equal(0, stock)
		s.Equal(initial, stock+dbtest.ConfirmedQuantity(s.T(), s.DB, "product-rush"))
	})
}

func (s *orderSuite) TestListAndGetOrders() {
	s.Run("一覧はCONFIRMEDのみ新しい順で商品名付き", func() {
		buyerID, token := s.jwt.NewBuyer(s.T())
		dbtest.CreateTestProduct(s.T(), s.DB, "product-empty", "Empty Item", 0)

		s.Equal(http.StatusCreated, s.place(token, "product-2", 1, "").status)
		s.Equal(http.StatusCreated, s.place(token, "product-3", 1, "").status)
		s.Equal(http.StatusConflict, s.place(token, "product-empty", 1, "").status)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, ordersURL+"?page=1&limit=10", nil, token)
		var body resdto.OrderListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)

		s.Equal(2, body.Total)
		s.Require().Len(body.Items, 2)
		s.Equal("product-3", body.Items[0].ProductID)
		s.Equal("Vendyz Essentials Kit", body.Items[0].ProductName)
		s.Equal("product-2", body.Items[1].ProductID)
		for _, it := range body.Items {
			s.Equal("CONFIRMED", it.Status)
			s.Equal(buyerID.String(), it.UserID)
		}
	})

	s.Run("limitは50に丸められる", func() {
		_, token := s.jwt.NewBuyer(s.T())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, ordersURL+"?limit=500", nil, token)
		var body resdto.OrderListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)

		s.Equal(50, body.Limit)
		s.Equal(1, body.Page)
		s.Empty(body.Items)
	})

	s.Run("自分の注文は取得でき他人の注文は404", func() {
		_, owner := s.jwt.NewBuyer(s.T())
		_, other := s.jwt.NewBuyer(s.T())
		p := s.place(owner, "product-3", 1, "")
		s.Require().Equal(http.StatusCreated, p.status)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, ordersURL+"/"+p.body.OrderID, nil, owner)
		var got resdto.OrderDetailResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal(p.body.OrderID, got.OrderID)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, ordersURL+"/"+p.body.OrderID, nil, other)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Order not found")

		admin := s.jwt.GenerateToken(s.T(), uuid.New(), auth.RoleAdmin)
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, ordersURL+"/"+p.body.OrderID, nil, admin)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
	})

	s.Run("不正なIDは400", func() {
		_, token := s.jwt.NewBuyer(s.T())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, ordersURL+"/not-a-uuid", nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})
}

func countFor(recs []journal.OrphanedReservation, productID string) int {
	n := 0
	for _, r := range recs {
		if r.ProductID == productID {
			n += r.Quantity
		}
	}
	return n
}
