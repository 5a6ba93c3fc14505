package payment

import (
	"context"

	"github.com/sanosuguru/go-cinema-booking/internal/domain/transaction"
)

// Repository は支払いリポジトリのインターフェース
type Repository interface {
	// Create は支払いを追記し、採番されたIDと作成日時を p に設定する
	Create(ctx context.Context, tx transaction.Tx, p *Payment) error

	// LatestByEmail はメールアドレスに対する最新（ID最大）の支払いを返す
	LatestByEmail(ctx context.Context, email string) (*Payment, error)
}

// EventPublisher は支払い記録イベントの発行者
type EventPublisher interface {
	// PublishPaymentRecorded は tx と同じトランザクションでイベントを書き込む
	PublishPaymentRecorded(ctx context.Context, tx transaction.Tx, event PaymentRecorded) error
}
