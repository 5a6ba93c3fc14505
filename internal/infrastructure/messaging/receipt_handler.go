package messaging

import (
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-cinema-booking/internal/domain/payment"
	"github.com/sanosuguru/go-cinema-booking/internal/pkg/logger"
	"github.com/sanosuguru/go-cinema-booking/internal/pkg/metrics"
)

// ReceiptIssuer はレシートの発行先
type ReceiptIssuer interface {
	IssueReceipt(event payment.PaymentRecorded) error
}

// ReceiptHandler は支払い記録イベントを受けてレシートを発行する
type ReceiptHandler struct {
	issuer  ReceiptIssuer
	metrics *metrics.Metrics
}

// NewReceiptHandler は新しい ReceiptHandler を作成する。issuer が nil の場合はログ出力のみ行う
func NewReceiptHandler(issuer ReceiptIssuer, m *metrics.Metrics) *ReceiptHandler {
	return &ReceiptHandler{issuer: issuer, metrics: m}
}

// Handle はメッセージを処理する。エラーを返すとリトライされる
func (h *ReceiptHandler) Handle(msg *message.Message) error {
	var event payment.PaymentRecorded
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		// 壊れたメッセージはリトライしても回復しないため破棄する
		logger.Error("支払いイベントを解析できません",
			zap.String("message_id", msg.UUID),
			zap.Error(err),
		)
		return nil
	}

	if h.issuer != nil {
		if err := h.issuer.IssueReceipt(event); err != nil {
			return fmt.Errorf("レシート発行に失敗: %w", err)
		}
	}

	h.metrics.IncReceiptsIssued()
	logger.Info("レシートを発行しました",
		zap.Int64("payment_id", event.PaymentID),
		zap.String("email", event.Email),
		zap.Strings("seats", event.Seats),
		zap.Int("amount", event.Amount),
	)
	return nil
}
