//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Nathan-Yinka/vendy-stores/internal/infra/cache"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/errs"
	"github.com/Nathan-Yinka/vendy-stores/internal/rpc"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase"
	"github.com/Nathan-Yinka/vendy-stores/tests/common/builder"
	usecasemock "github.com/Nathan-Yinka/vendy-stores/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var errRedisDown = errors.New("redis: connection refused")

type CatalogServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	inventory *usecasemock.MockInventoryCatalog
	cache     *usecasemock.MockProductCache
	svc       usecase.CatalogService
}

func TestCatalogServiceSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}

func (s *CatalogServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.inventory = usecasemock.NewMockInventoryCatalog(s.ctrl)
	s.cache = usecasemock.NewMockProductCache(s.ctrl)
	s.svc = usecase.NewCatalogService(s.inventory, s.cache)
}

func (s *CatalogServiceTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *CatalogServiceTestSuite) TestGetProduct() {
	ctx := context.Background()
	msg := builder.NewProductBuilder().BuildMessage()

	s.Run("キャッシュヒット時は在庫サービスを呼ばない", func() {
		s.cache.EXPECT().Get(gomock.Any(), "product-1").
			Return(&cache.CachedProduct{ID: "product-1", Name: "Vendyz Flash Item", Stock: 7}, true, nil)

		got, err := s.svc.GetProduct(ctx, "product-1")

		s.Require().NoError(err)
		s.Equal(&usecase.ProductDetail{ID: "product-1", Name: "Vendyz Flash Item", Stock: 7}, got)
	})

	s.Run("ミス時は在庫サービスから取得してキャッシュする", func() {
		s.cache.EXPECT().Get(gomock.Any(), "product-1").Return(nil, false, nil)
		s.inventory.EXPECT().GetProduct(gomock.Any(), "product-1").Return(msg, nil)
		s.cache.EXPECT().Set(gomock.Any(), cache.CachedProduct{ID: msg.ProductID, Name: msg.Name, Stock: msg.Stock}).Return(nil)

		got, err := s.svc.GetProduct(ctx, "product-1")

		s.Require().NoError(err)
		s.Equal(builder.NewProductBuilder().BuildDetail(), got)
	})

	s.Run("キャッシュ障害でも在庫サービスから返す", func() {
		s.cache.EXPECT().Get(gomock.Any(), "product-1").Return(nil, false, errRedisDown)
		s.inventory.EXPECT().GetProduct(gomock.Any(), "product-1").Return(msg, nil)
		s.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errRedisDown)

		got, err := s.svc.GetProduct(ctx, "product-1")

		s.Require().NoError(err)
		s.Equal("product-1", got.ID)
	})

	s.Run("在庫サービスのエラーはそのまま返しキャッシュしない", func() {
		s.cache.EXPECT().Get(gomock.Any(), "missing").Return(nil, false, nil)
		s.inventory.EXPECT().GetProduct(gomock.Any(), "missing").Return(nil, errs.Mark(errs.New("not found"), errs.ErrNotFound))

		_, err := s.svc.GetProduct(ctx, "missing")

		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("空のIDはInvalidArgument", func() {
		_, err := s.svc.GetProduct(ctx, "")
		s.True(errs.Is(err, errs.ErrInvalidArgument))
	})
}

func (s *CatalogServiceTestSuite) TestListProducts() {
	ctx := context.Background()
	s.inventory.EXPECT().ListProducts(gomock.Any(), 1, 50).Return(&rpc.ListProductsResponse{
		Items: []rpc.Product{*builder.NewProductBuilder().BuildMessage()},
		Page:  1,
		Limit: 50,
		Total: 1,
	}, nil)

	page, err := s.svc.ListProducts(ctx, 0, 100)

	s.Require().NoError(err)
	s.Equal(1, page.Total)
	s.Equal(50, page.Limit)
	s.Equal([]usecase.ProductDetail{*builder.NewProductBuilder().BuildDetail()}, page.Items)
}

func (s *CatalogServiceTestSuite) TestUpdateStock() {
	ctx := context.Background()

	s.Run("更新後にキャッシュを破棄する", func() {
		msg := builder.NewProductBuilder().WithStock(3).BuildMessage()
		s.inventory.EXPECT().UpdateStock(gomock.Any(), "product-1", 3).Return(msg, nil)
		s.cache.EXPECT().Delete(gomock.Any(), "product-1").Return(nil)

		got, err := s.svc.UpdateStock(ctx, "product-1", 3)

		s.Require().NoError(err)
		s.Equal(3, got.Stock)
	})

	s.Run("キャッシュ破棄の失敗は無視する", func() {
		s.inventory.EXPECT().UpdateStock(gomock.Any(), "product-1", 3).Return(builder.NewProductBuilder().BuildMessage(), nil)
		s.cache.EXPECT().Delete(gomock.Any(), "product-1").Return(errRedisDown)

		_, err := s.svc.UpdateStock(ctx, "product-1", 3)

		s.NoError(err)
	})

	s.Run("失敗時はキャッシュに触れない", func() {
		s.inventory.EXPECT().UpdateStock(gomock.Any(), "missing", 3).Return(nil, errs.Mark(errs.New("not found"), errs.ErrNotFound))

		_, err := s.svc.UpdateStock(ctx, "missing", 3)

		s.True(errs.Is(err, errs.ErrNotFound))
	})
}

func (s *CatalogServiceTestSuite) TestCreateProduct() {
	ctx := context.Background()
	s.inventory.EXPECT().CreateProduct(gomock.Any(), "Vendyz Mug", 2).
		Return(&rpc.Product{ProductID: "p-new", Name: "Vendyz Mug", Stock: 2}, nil)

	got, err := s.svc.CreateProduct(ctx, "Vendyz Mug", 2)

	s.Require().NoError(err)
	s.Equal(&usecase.ProductDetail{ID: "p-new", Name: "Vendyz Mug", Stock: 2}, got)
}
