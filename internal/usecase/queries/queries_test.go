//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Nathan-Yinka/vendy-stores/internal/domain/order"
	"github.com/Nathan-Yinka/vendy-stores/internal/domain/product"
	"github.com/Nathan-Yinka/vendy-stores/internal/infra"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/errs"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase/queries"
	"github.com/Nathan-Yinka/vendy-stores/tests/common/builder"
	queriesmock "github.com/Nathan-Yinka/vendy-stores/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

func TestInventoryQueries_GetProduct(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		id        string
		setupMock func(*queriesmock.MockProductReadStore)
		errIs     error
	}{
		{
			name: "success",
			id:   "product-1",
			setupMock: func(m *queriesmock.MockProductReadStore) {
				m.EXPECT().FindByID(ctx, "product-1").Return(builder.NewProductBuilder().BuildDomain(), nil)
			},
		},
		{
			name: "not found",
			id:   "missing",
			setupMock: func(m *queriesmock.MockProductReadStore) {
				m.EXPECT().FindByID(ctx, "missing").Return(nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound))
			},
			errIs: errs.ErrNotFound,
		},
		{
			name: "storage failure",
			id:   "product-1",
			setupMock: func(m *queriesmock.MockProductReadStore) {
				m.EXPECT().FindByID(ctx, "product-1").Return(nil, infra.WrapRepoErr("boom", errDBConnectionLost))
			},
			errIs: errs.ErrStorageFailure,
		},
		{
			name:      "empty id",
			id:        "",
			setupMock: func(*queriesmock.MockProductReadStore) {},
			errIs:     errs.ErrInvalidArgument,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockProductReadStore(ctrl)
			tc.setupMock(store)

			view, err := queries.NewInventoryQueries(store).GetProduct(ctx, tc.id)

			if tc.errIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.errIs))
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(builder.NewProductBuilder().BuildView(), view); diff != "" {
				t.Errorf("view mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInventoryQueries_ListProducts(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockProductReadStore(ctrl)

	items := []*product.Product{
		builder.NewProductBuilder().WithID("product-3").BuildDomain(),
		builder.NewProductBuilder().WithID("product-1").BuildDomain(),
	}
	store.EXPECT().List(ctx, 50, 50).Return(items, 52, nil)

	page, err := queries.NewInventoryQueries(store).ListProducts(ctx, 2, 999)

	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 50, page.Limit)
	assert.Equal(t, 52, page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "product-3", page.Items[0].ID)
}

func TestOrderQueries(t *testing.T) {
	ctx := context.Background()
	buyer := uuid.New()

	t.Run("GetOrder not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		id := uuid.New()
		store.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound))

		_, err := queries.NewOrderQueries(store).GetOrder(ctx, id)

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("GetOrder includes failed orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		o := builder.NewOrderBuilder().Failed(order.CodeOutOfStock, "Out of stock").BuildDomain()
		store.EXPECT().FindByID(ctx, o.ID()).Return(o, nil)

		view, err := queries.NewOrderQueries(store).GetOrder(ctx, o.ID())

		require.NoError(t, err)
		assert.Equal(t, "FAILED", view.Status)
		assert.Nil(t, view.RemainingStock)
	})

	t.Run("ListOrders normalizes paging", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		o := builder.NewOrderBuilder().WithBuyer(buyer).BuildDomain()
		store.EXPECT().ListConfirmedByBuyer(ctx, buyer, 10, 0).Return([]*order.Order{o}, 1, nil)

		page, err := queries.NewOrderQueries(store).ListOrders(ctx, buyer, 0, 0)

		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 10, page.Limit)
		require.Len(t, page.Items, 1)
		assert.Equal(t, buyer, page.Items[0].BuyerID)
	})

	t.Run("ListOrders requires a buyer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)

		_, err := queries.NewOrderQueries(store).ListOrders(ctx, uuid.Nil, 1, 10)

		assert.True(t, errs.Is(err, errs.ErrInvalidArgument))
	})

	t.Run("ListOrders storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		store.EXPECT().ListConfirmedByBuyer(ctx, buyer, 10, 0).Return(nil, 0, infra.WrapRepoErr("boom", errDBConnectionLost))

		_, err := queries.NewOrderQueries(store).ListOrders(ctx, buyer, 1, 10)

		assert.True(t, errs.Is(err, errs.ErrStorageFailure))
	})
}
