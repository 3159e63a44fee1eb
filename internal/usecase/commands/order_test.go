//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Nathan-Yinka/vendy-stores/internal/domain/order"
	"github.com/Nathan-Yinka/vendy-stores/internal/domain/product"
	"github.com/Nathan-Yinka/vendy-stores/internal/infra"
	"github.com/Nathan-Yinka/vendy-stores/internal/infra/events"
	"github.com/Nathan-Yinka/vendy-stores/internal/infra/journal"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/clock"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/errs"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase/commands"
	"github.com/Nathan-Yinka/vendy-stores/tests/common/builder"
	commandsmock "github.com/Nathan-Yinka/vendy-stores/tests/mock/commands"
	eventsmock "github.com/Nathan-Yinka/vendy-stores/tests/mock/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var assertErr = errors.New("connection reset")

type OrderCommandsTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	ledger    *commandsmock.MockOrderLedger
	inventory *commandsmock.MockInventoryGateway
	journal   *commandsmock.MockReconciliationJournal
	publisher *eventsmock.MockPublisher
	cmds      commands.OrderCommands
	buyer     uuid.UUID
}

func TestOrderCommandsSuite(t *testing.T) {
	suite.Run(t, new(OrderCommandsTestSuite))
}

func (s *OrderCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ledger = commandsmock.NewMockOrderLedger(s.ctrl)
	s.inventory = commandsmock.NewMockInventoryGateway(s.ctrl)
	s.journal = commandsmock.NewMockReconciliationJournal(s.ctrl)
	s.publisher = eventsmock.NewMockPublisher(s.ctrl)
	s.cmds = commands.NewOrderCommands(s.ledger, s.inventory, s.journal, s.publisher, subjects, clock.NewFixed(fixedNow))
	s.buyer = uuid.New()
}

func (s *OrderCommandsTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *OrderCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrderCommandsTestSuite) params(key string) commands.CreateOrderParams {
	return commands.CreateOrderParams{ProductID: "product-1", Quantity: 1, BuyerID: s.buyer, IdempotencyKey: key}
}

func (s *OrderCommandsTestSuite) TestCreateOrder_Outcomes() {
	ctx := context.Background()

	s.Run("受理されるとCONFIRMEDで保存しイベントを発行する", func() {
		s.inventory.EXPECT().ReserveStock(gomock.Any(), "product-1", 1, gomock.Any()).Return(product.Accepted(0, "Vendyz Flash Item"), nil)
		s.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o *order.Order) (bool, error) {
			s.True(o.IsConfirmed())
			s.Equal(fixedNow, o.CreatedAt())
			return true, nil
		})
		s.publisher.EXPECT().Publish(gomock.Any(), subjects.OrderCreated, gomock.AssignableToTypeOf(events.OrderCreated{}))

		res, err := s.cmds.CreateOrder(ctx, s.params(""))

		s.Require().NoError(err)
		s.Equal(order.StatusConfirmed, res.Status)
		s.Equal(order.CodeOK, res.Code)
		s.Require().NotNil(res.RemainingStock)
		s.Equal(0, *res.RemainingStock)
		s.False(res.Replayed)
	})

	s.Run("在庫不足はFAILEDで保存される", func() {
		s.inventory.EXPECT().ReserveStock(gomock.Any(), "product-1", 1, gomock.Any()).Return(product.Rejected(0, "Vendyz Flash Item"), nil)
		s.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Return(true, nil)
		s.publisher.EXPECT().Publish(gomock.Any(), subjects.OrderCreated, gomock.Any())

		res, err := s.cmds.CreateOrder(ctx, s.params(""))

		s.Require().NoError(err)
		s.Equal(order.StatusFailed, res.Status)
		s.Equal(order.CodeOutOfStock, res.Code)
		s.Equal("Out of stock", res.Message)
		s.Nil(res.RemainingStock)
	})

	s.Run("存在しない商品はPRODUCT_NOT_FOUNDで保存される", func() {
		s.inventory.EXPECT().ReserveStock(gomock.Any(), "product-1", 1, gomock.Any()).Return(product.NotFound(), nil)
		s.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Return(true, nil)
		s.publisher.EXPECT().Publish(gomock.Any(), subjects.OrderCreated, gomock.Any())

		res, err := s.cmds.CreateOrder(ctx, s.params(""))

		s.Require().NoError(err)
		s.Equal(order.CodeProductNotFound, res.Code)
	})

	s.Run("在庫サービス停止時は注文を保存しない", func() {
		s.inventory.EXPECT().ReserveStock(gomock.Any(), "product-1", 1, gomock.Any()).
			Return(product.ReservationOutcome{}, errs.Mark(assertErr, errs.ErrDependencyUnavailable))

		_, err := s.cmds.CreateOrder(ctx, s.params(""))

		s.True(errs.Is(err, errs.ErrDependencyUnavailable))
	})

	s.Run("在庫サービスの入力エラーはそのまま返す", func() {
		s.inventory.EXPECT().ReserveStock(gomock.Any(), "product-1", 1, gomock.Any()).
			Return(product.ReservationOutcome{}, errs.Mark(assertErr, errs.ErrInvalidArgument))

		_, err := s.cmds.CreateOrder(ctx, s.params(""))

		s.True(errs.Is(err, errs.ErrInvalidArgument))
		s.False(errs.Is(err, errs.ErrDependencyUnavailable))
	})

	s.Run("入力不正は在庫を呼ばない", func() {
		for _, q := range []int{0, order.MaxQuantity + 1} {
			p := s.params("")
			p.Quantity = q

			_, err := s.cmds.CreateOrder(ctx, p)

			s.True(errs.Is(err, errs.ErrInvalidArgument), "quantity %d", q)
		}
	})
}

func (s *OrderCommandsTestSuite) TestCreateOrder_CallerCancellation() {
	s.Run("予約後に呼び出し元が切断しても注文は保存される", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		s.inventory.EXPECT().ReserveStock(gomock.Any(), "product-1", 1, gomock.Any()).
			DoAndReturn(func(context.Context, string, int, string) (product.ReservationOutcome, error) {
				cancel()
				return product.Accepted(4, "Vendyz Flash Item"), nil
			})
		s.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(wctx context.Context, _ *order.Order) (bool, error) {
			s.NoError(wctx.Err())
			return true, nil
		})
		s.publisher.EXPECT().Publish(gomock.Any(), subjects.OrderCreated, gomock.Any())

		res, err := s.cmds.CreateOrder(ctx, s.params(""))

		s.Require().Error(ctx.Err())
		s.Require().NoError(err)
		s.Equal(order.StatusConfirmed, res.Status)
	})

	s.Run("切断後の保存失敗でもジャーナルは記録される", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		s.inventory.EXPECT().ReserveStock(gomock.Any(), "product-1", 1, gomock.Any()).
			DoAndReturn(func(context.Context, string, int, string) (product.ReservationOutcome, error) {
				cancel()
				return product.Accepted(4, "Vendyz Flash Item"), nil
			})
		s.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(wctx context.Context, _ *order.Order) (bool, error) {
			s.NoError(wctx.Err())
			return false, infra.WrapRepoErr("boom", assertErr)
		})
		s.journal.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(jctx context.Context, rec journal.OrphanedReservation) error {
			s.NoError(jctx.Err())
			s.Equal(journal.ReasonOrderWriteFailed, rec.Reason)
			return nil
		})

		_, err := s.cmds.CreateOrder(ctx, s.params(""))

		s.True(errs.Is(err, errs.ErrStorageFailure))
	})
}

func (s *OrderCommandsTestSuite) TestCreateOrder_Idempotency() {
	ctx := context.Background()
	const key = "retry-1"

	s.Run("既存の注文があれば在庫を呼ばずに再生する", func() {
		prior := builder.NewOrderBuilder().WithBuyer(s.buyer).WithIdempotencyKey(key).BuildDomain()
		s.ledger.EXPECT().FindByIdempotencyKey(gomock.Any(), s.buyer, key).Return(prior, nil)

		res, err := s.cmds.CreateOrder(ctx, s.params(key))

		s.Require().NoError(err)
		s.True(res.Replayed)
		s.Equal(prior.ID(), res.OrderID)
	})

	s.Run("失敗した注文も再生される", func() {
		prior := builder.NewOrderBuilder().WithBuyer(s.buyer).WithIdempotencyKey(key).
			Failed(order.CodeOutOfStock, "Out of stock").BuildDomain()
		s.ledger.EXPECT().FindByIdempotencyKey(gomock.Any(), s.buyer, key).Return(prior, nil)

		res, err := s.cmds.CreateOrder(ctx, s.params(key))

		s.Require().NoError(err)
		s.True(res.Replayed)
		s.Equal(order.StatusFailed, res.Status)
	})

	s.Run("キー検索の障害はStorageFailure", func() {
		s.ledger.EXPECT().FindByIdempotencyKey(gomock.Any(), s.buyer, key).Return(nil, infra.WrapRepoErr("boom", assertErr))

		_, err := s.cmds.CreateOrder(ctx, s.params(key))

		s.True(errs.Is(err, errs.ErrStorageFailure))
	})

	s.Run("同時実行で挿入に負けた予約はジャーナルに記録され勝者を返す", func() {
		winner := builder.NewOrderBuilder().WithBuyer(s.buyer).WithIdempotencyKey(key).BuildDomain()
		notFound := infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
		gomock.InOrder(
			s.ledger.EXPECT().FindByIdempotencyKey(gomock.Any(), s.buyer, key).Return(nil, notFound),
			s.inventory.EXPECT().ReserveStock(gomock.Any(), "product-1", 1, gomock.Any()).Return(product.Accepted(4, "Vendyz Flash Item"), nil),
			s.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Return(false, nil),
			s.journal.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec journal.OrphanedReservation) error {
				s.Equal(journal.ReasonIdempotencyRaceLost, rec.Reason)
				s.Equal("product-1", rec.ProductID)
				s.Equal(4, rec.Remaining)
				s.Contains(rec.Detail, "idempotency key taken")
				return nil
			}),
			s.ledger.EXPECT().FindByIdempotencyKey(gomock.Any(), s.buyer, key).Return(winner, nil),
		)

		res, err := s.cmds.CreateOrder(ctx, s.params(key))

		s.Require().NoError(err)
		s.True(res.Replayed)
		s.Equal(winner.ID(), res.OrderID)
	})

	s.Run("拒否された予約は挿入に負けてもジャーナルに記録しない", func() {
		winner := builder.NewOrderBuilder().WithBuyer(s.buyer).WithIdempotencyKey(key).BuildDomain()
		notFound := infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
		s.ledger.EXPECT().FindByIdempotencyKey(gomock.Any(), s.buyer, key).Return(nil, notFound)
		s.inventory.EXPECT().ReserveStock(gomock.Any(), "product-1", 1, gomock.Any()).Return(product.Rejected(0, "Vendyz Flash Item"), nil)
		s.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Return(false, nil)
		s.ledger.EXPECT().FindByIdempotencyKey(gomock.Any(), s.buyer, key).Return(winner, nil)

		res, err := s.cmds.CreateOrder(ctx, s.params(key))

		s.Require().NoError(err)
		s.Equal(winner.ID(), res.OrderID)
	})
}

func (s *OrderCommandsTestSuite) TestCreateOrder_WriteFailure() {
	ctx := context.Background()

	s.Run("予約後の保存失敗はジャーナルに記録しStorageFailure", func() {
		s.inventory.EXPECT().ReserveStock(gomock.Any(), "product-1", 1, gomock.Any()).Return(product.Accepted(2, "Vendyz Flash Item"), nil)
		s.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Return(false, infra.WrapRepoErr("boom", assertErr))
		s.journal.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec journal.OrphanedReservation) error {
			s.Equal(journal.ReasonOrderWriteFailed, rec.Reason)
			s.NotEmpty(rec.Detail)
			return nil
		})

		_, err := s.cmds.CreateOrder(ctx, s.params(""))

		s.True(errs.Is(err, errs.ErrStorageFailure))
	})

	s.Run("ジャーナル書き込み失敗でも元のエラーを返す", func() {
		s.inventory.EXPECT().ReserveStock(gomock.Any(), "product-1", 1, gomock.Any()).Return(product.Accepted(2, "Vendyz Flash Item"), nil)
		s.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Return(false, infra.WrapRepoErr("boom", assertErr))
		s.journal.EXPECT().Append(gomock.Any(), gomock.Any()).Return(assertErr)

		_, err := s.cmds.CreateOrder(ctx, s.params(""))

		s.True(errs.Is(err, errs.ErrStorageFailure))
	})

	s.Run("拒否後の保存失敗はジャーナルに記録しない", func() {
		s.inventory.EXPECT().ReserveStock(gomock.Any(), "product-1", 1, gomock.Any()).Return(product.Rejected(0, "Vendyz Flash Item"), nil)
		s.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Return(false, infra.WrapRepoErr("boom", assertErr))

		_, err := s.cmds.CreateOrder(ctx, s.params(""))

		s.True(errs.Is(err, errs.ErrStorageFailure))
	})
}
