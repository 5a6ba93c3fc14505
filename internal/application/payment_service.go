package application

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-cinema-booking/internal/domain/payment"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/show"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/transaction"
	"github.com/sanosuguru/go-cinema-booking/internal/pkg/logger"
	"github.com/sanosuguru/go-cinema-booking/internal/pkg/metrics"
)

// PaymentService は支払いの記録と参照を行う。
// BookSeats の後に RecordPayment を呼ぶ場合、両者は別トランザクションのため
// 支払いの記録に失敗すると座席だけが販売済みになる。一括で行う場合は Checkout を使う
type PaymentService struct {
	txManager   transaction.Manager
	paymentRepo payment.Repository
	publisher   payment.EventPublisher
	metrics     *metrics.Metrics
	unitPrice   int
}

func NewPaymentService(txManager transaction.Manager, pr payment.Repository, publisher payment.EventPublisher, m *metrics.Metrics, unitPrice int) *PaymentService {
	if unitPrice <= 0 {
		unitPrice = payment.DefaultUnitPrice
	}
	return &PaymentService{txManager: txManager, paymentRepo: pr, publisher: publisher, metrics: m, unitPrice: unitPrice}
}

// RecordPaymentInput は支払い記録の入力。カード番号は下4桁のみ受け付ける
type RecordPaymentInput struct {
	Show      show.Key
	Seats     []string
	SeatCount int
	Amount    int
	Buyer     payment.Buyer
}

// RecordPayment は支払いを追記し、採番されたIDを返す
func (s *PaymentService) RecordPayment(ctx context.Context, input RecordPaymentInput) (int64, error) {
	seats := make([]string, 0, len(input.Seats))
	for _, seat := range input.Seats {
		seats = append(seats, strings.TrimSpace(seat))
	}
	p := &payment.Payment{
		Key:       input.Show,
		Seats:     seats,
		SeatCount: input.SeatCount,
		Amount:    input.Amount,
		Buyer:     input.Buyer.Normalize(),
	}
	if err := p.Validate(s.unitPrice); err != nil {
		return 0, err
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if err := s.paymentRepo.Create(ctx, tx, p); err != nil {
		return 0, err
	}
	if s.publisher != nil {
		if err := s.publisher.PublishPaymentRecorded(ctx, tx, payment.NewPaymentRecorded(p)); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}

	s.metrics.IncPaymentsRecorded()
	logger.Info("支払いを記録しました",
		zap.Int64("payment_id", p.ID),
		zap.String("show", p.Key.String()),
		zap.Int("amount", p.Amount),
	)
	return p.ID, nil
}

// LatestPaymentFor はメールアドレスに対する最新の支払いを返す。
// 履歴がない場合は payment.ErrPaymentNotFound
func (s *PaymentService) LatestPaymentFor(ctx context.Context, email string) (*payment.Payment, error) {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return nil, payment.ErrInvalidEmail
	}
	return s.paymentRepo.LatestByEmail(ctx, email)
}
