package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	watermillSQL "github.com/ThreeDotsLabs/watermill-sql/v2/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/sanosuguru/go-cinema-booking/internal/domain/apperror"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/payment"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/transaction"
	"github.com/sanosuguru/go-cinema-booking/internal/infrastructure/postgres"
)

// TopicPaymentRecorded は支払い記録イベントのトピック
const TopicPaymentRecorded = "payment_recorded"

var errPublishRequiresTx = errors.New("イベントの書き込みにはトランザクションが必要です")

// OutboxPublisher は支払いと同じトランザクションでイベントをアウトボックステーブルに書き込む
type OutboxPublisher struct {
	logger watermill.LoggerAdapter
}

// NewOutboxPublisher は新しい OutboxPublisher を作成する
func NewOutboxPublisher(logger watermill.LoggerAdapter) *OutboxPublisher {
	return &OutboxPublisher{logger: logger}
}

// PublishPaymentRecorded はイベントを tx 内で書き込む。tx がロールバックされればイベントも残らない
func (p *OutboxPublisher) PublishPaymentRecorded(ctx context.Context, tx transaction.Tx, event payment.PaymentRecorded) error {
	stx := postgres.UnwrapTx(tx)
	if stx == nil {
		return errPublishRequiresTx
	}

	publisher, err := watermillSQL.NewPublisher(
		stx.Tx,
		watermillSQL.PublisherConfig{
			SchemaAdapter: watermillSQL.DefaultPostgreSQLSchema{},
		},
		p.logger,
	)
	if err != nil {
		return fmt.Errorf("アウトボックスパブリッシャーの作成に失敗: %w", err)
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("イベントの変換に失敗: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	msg.Metadata.Set("payment_id", fmt.Sprint(event.PaymentID))

	if err := publisher.Publish(TopicPaymentRecorded, msg); err != nil {
		return apperror.Storage("イベント書き込み", err)
	}
	return nil
}

var _ payment.EventPublisher = (*OutboxPublisher)(nil)
