//go:build unit

package product_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Nathan-Yinka/vendy-stores/internal/domain/product"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewProduct(t *testing.T) {
	cases := []struct {
		name  string
		id    string
		pname string
		stock int
		errIs error
	}{
		{name: "基本成功ケース", id: "product-9", pname: "Vendyz Mug", stock: 3},
		{name: "在庫0OK", id: "product-9", pname: "Vendyz Mug", stock: 0},
		{name: "名前200文字OK", id: "product-9", pname: strings.Repeat("あ", product.MaxNameLength), stock: 1},
		{name: "空のIDNG", id: "  ", pname: "Vendyz Mug", stock: 1, errIs: product.ErrEmptyID},
		{name: "空の名前NG", id: "product-9", pname: " ", stock: 1, errIs: product.ErrEmptyName},
		{name: "名前201文字NG", id: "product-9", pname: strings.Repeat("a", product.MaxNameLength+1), stock: 1, errIs: product.ErrNameTooLong},
		{name: "負の在庫NG", id: "product-9", pname: "Vendyz Mug", stock: -1, errIs: product.ErrNegativeStock},
		{name: "在庫上限ちょうどOK", id: "product-9", pname: "Vendyz Mug", stock: product.MaxUnits},
		{name: "INTEGER列を超える在庫NG", id: "product-9", pname: "Vendyz Mug", stock: product.MaxUnits + 1, errIs: product.ErrStockTooLarge},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := product.NewProduct(c.id, c.pname, c.stock, now)

			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				require.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(c.id), p.ID())
			assert.Equal(t, c.stock, p.Stock())
			assert.Equal(t, now, p.CreatedAt())
			assert.Equal(t, now, p.UpdatedAt())
		})
	}

	t.Run("名前の前後空白は除去される", func(t *testing.T) {
		p, err := product.NewProduct("product-9", "  Vendyz Mug  ", 1, now)
		require.NoError(t, err)
		assert.Equal(t, "Vendyz Mug", p.Name())
	})
}

func TestValidateQuantity(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		errIs    error
	}{
		{name: "1はOK", quantity: 1},
		{name: "上限ちょうどOK", quantity: product.MaxUnits},
		{name: "0はNG", quantity: 0, errIs: product.ErrInvalidQuantity},
		{name: "負数はNG", quantity: -1, errIs: product.ErrInvalidQuantity},
		{name: "上限超えはNG", quantity: product.MaxUnits + 1, errIs: product.ErrQuantityTooLarge},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := product.ValidateQuantity(c.quantity)
			if c.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestValidateStock(t *testing.T) {
	require.NoError(t, product.ValidateStock(0))
	require.NoError(t, product.ValidateStock(product.MaxUnits))
	require.ErrorIs(t, product.ValidateStock(-1), product.ErrNegativeStock)
	require.ErrorIs(t, product.ValidateStock(product.MaxUnits+1), product.ErrStockTooLarge)
}

func TestReservationOutcome(t *testing.T) {
	cases := []struct {
		name     string
		outcome  product.ReservationOutcome
		code     string
		message  string
		accepted bool
	}{
		{name: "accepted", outcome: product.Accepted(4, "Vendyz Mug"), code: product.CodeOK, message: "Reserved", accepted: true},
		{name: "rejected", outcome: product.Rejected(1, "Vendyz Mug"), code: product.CodeOutOfStock, message: "Out of stock"},
		{name: "not found", outcome: product.NotFound(), code: product.CodeProductNotFound, message: "Product not found"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.code, c.outcome.Code())
			assert.Equal(t, c.message, c.outcome.Message())
			assert.Equal(t, c.accepted, c.outcome.IsAccepted())
		})
	}
}

func TestDefaultCatalog(t *testing.T) {
	want := []product.Seed{
		{ID: "product-1", Name: "Vendyz Flash Item", Stock: 1},
		{ID: "product-2", Name: "Vendyz Starter Pack", Stock: 5},
		{ID: "product-3", Name: "Vendyz Essentials Kit", Stock: 10},
	}
	if diff := cmp.Diff(want, product.DefaultCatalog()); diff != "" {
		t.Errorf("catalog mismatch (-want +got):\n%s", diff)
	}
}
