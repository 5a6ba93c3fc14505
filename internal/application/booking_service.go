package application

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-cinema-booking/internal/domain/apperror"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/booking"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/payment"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/show"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/transaction"
	redisinfra "github.com/sanosuguru/go-cinema-booking/internal/infrastructure/redis"
	"github.com/sanosuguru/go-cinema-booking/internal/pkg/logger"
	"github.com/sanosuguru/go-cinema-booking/internal/pkg/metrics"
)

// LockOptions は上映回ロックの取得設定
type LockOptions struct {
	TTL        time.Duration
	Retries    int
	RetryDelay time.Duration
}

// BookingOptions は BookingService の設定
type BookingOptions struct {
	UnitPrice int
	Lock      LockOptions
}

// DefaultBookingOptions は単価1000、ロックTTL10秒・3回・100ms間隔を返す
func DefaultBookingOptions() BookingOptions {
	return BookingOptions{
		UnitPrice: payment.DefaultUnitPrice,
		Lock:      LockOptions{TTL: 10 * time.Second, Retries: 3, RetryDelay: 100 * time.Millisecond},
	}
}

// BookingService は座席の確保とチェックアウトを行う
type BookingService struct {
	txManager   transaction.Manager
	bookingRepo booking.Repository
	paymentRepo payment.Repository
	publisher   payment.EventPublisher
	lockManager redisinfra.LockManagerInterface
	metrics     *metrics.Metrics
	opts        BookingOptions
}

// NewBookingService は BookingService を作成する。publisher, lockManager, m は nil でもよい
func NewBookingService(
	txManager transaction.Manager,
	bookingRepo booking.Repository,
	paymentRepo payment.Repository,
	publisher payment.EventPublisher,
	lockManager redisinfra.LockManagerInterface,
	m *metrics.Metrics,
	opts BookingOptions,
) *BookingService {
	if opts.UnitPrice <= 0 {
		opts.UnitPrice = payment.DefaultUnitPrice
	}
	return &BookingService{
		txManager:   txManager,
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		publisher:   publisher,
		lockManager: lockManager,
		metrics:     m,
		opts:        opts,
	}
}

// BookSeats は座席を販売済みとして1トランザクションで登録し、新たに確保できた座席を
// リクエスト順で返す。既に販売済みの座席は他の座席の確保を妨げずに除外される
func (s *BookingService) BookSeats(ctx context.Context, key show.Key, seats []string) ([]string, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	labels, err := booking.NormalizeSeatLabels(seats)
	if err != nil {
		return nil, err
	}

	release, err := s.acquireShowLock(ctx, key)
	if err != nil {
		return nil, err
	}
	defer release()

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	accepted, err := s.insertSeats(ctx, tx, key, labels)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.metrics.ObserveSeats(len(accepted), len(labels)-len(accepted))
	logger.Info("座席を確保しました",
		zap.String("show", key.String()),
		zap.Strings("accepted", accepted),
		zap.Int("rejected", len(labels)-len(accepted)),
	)
	return accepted, nil
}

// CheckoutInput はチェックアウトの入力
type CheckoutInput struct {
	Show  show.Key
	Seats []string
	Card  payment.CardDetails
}

// CheckoutResult はチェックアウトの結果
type CheckoutResult struct {
	Payment *payment.Payment
}

// Checkout は入力検証、座席の確保、支払いの記録を1トランザクションで行う。
// 1席でも販売済みの場合は何も書き込まずに booking.UnavailableError を返す
func (s *BookingService) Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error) {
	result, err := s.checkout(ctx, input)
	s.metrics.ObserveCheckout(checkoutStatus(err))
	return result, err
}

func (s *BookingService) checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error) {
	if err := input.Card.Validate(); err != nil {
		return nil, err
	}
	if err := input.Show.Validate(); err != nil {
		return nil, err
	}
	labels, err := booking.NormalizeSeatLabels(input.Seats)
	if err != nil {
		return nil, err
	}
	p, err := payment.NewPayment(input.Show, labels, s.opts.UnitPrice, input.Card.Buyer())
	if err != nil {
		return nil, err
	}

	release, err := s.acquireShowLock(ctx, input.Show)
	if err != nil {
		return nil, err
	}
	defer release()

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	accepted, err := s.insertSeats(ctx, tx, input.Show, labels)
	if err != nil {
		return nil, err
	}
	if len(accepted) != len(labels) {
		return nil, &booking.UnavailableError{Seats: booking.Difference(labels, accepted)}
	}

	if err := s.paymentRepo.Create(ctx, tx, p); err != nil {
		return nil, err
	}
	if s.publisher != nil {
		if err := s.publisher.PublishPaymentRecorded(ctx, tx, payment.NewPaymentRecorded(p)); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.metrics.ObserveSeats(len(accepted), 0)
	s.metrics.IncPaymentsRecorded()
	logger.Info("チェックアウトが完了しました",
		zap.Int64("payment_id", p.ID),
		zap.String("show", input.Show.String()),
		zap.Strings("seats", p.Seats),
		zap.Int("amount", p.Amount),
	)
	return &CheckoutResult{Payment: p}, nil
}

func (s *BookingService) insertSeats(ctx context.Context, tx transaction.Tx, key show.Key, labels []string) ([]string, error) {
	accepted := make([]string, 0, len(labels))
	for _, seat := range labels {
		ok, err := s.bookingRepo.InsertIgnore(ctx, tx, key, seat)
		if err != nil {
			return nil, err
		}
		if ok {
			accepted = append(accepted, seat)
		}
	}
	return accepted, nil
}

// acquireShowLock は上映回のロックを取得し、解放関数を返す。
// 座席の一意性はストアの一意制約が保証するため、ロックを取得できない場合
// （他の呼び出しが保持中、または Redis 障害）はロックなしで続行する
func (s *BookingService) acquireShowLock(ctx context.Context, key show.Key) (func(), error) {
	noop := func() {}
	if s.lockManager == nil {
		return noop, nil
	}

	lock, err := s.lockManager.AcquireLockWithRetry(ctx, redisinfra.ShowLockKey(key),
		s.opts.Lock.TTL, s.opts.Lock.Retries, s.opts.Lock.RetryDelay)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errors.Is(err, redisinfra.ErrLockNotAcquired) {
			logger.Info("上映回のロックが使用中のため、ロックなしで続行します", zap.String("show", key.String()))
			return noop, nil
		}
		logger.Warn("ロック取得エラー、ロックなしで続行します", zap.String("show", key.String()), zap.Error(err))
		return noop, nil
	}

	return func() {
		if err := lock.Release(ctx); err != nil {
			logger.Warn("ロック解放エラー", zap.String("show", key.String()), zap.Error(err))
		}
	}, nil
}

func checkoutStatus(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, booking.ErrSeatsUnavailable):
		return "unavailable"
	case apperror.IsValidation(err):
		return "invalid"
	default:
		return "error"
	}
}
