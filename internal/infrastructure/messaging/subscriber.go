package messaging

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	watermillSQL "github.com/ThreeDotsLabs/watermill-sql/v2/pkg/sql"
	"github.com/jmoiron/sqlx"
)

// NewSubscriber はアウトボックステーブルを読む購読者を作成する
func NewSubscriber(db *sqlx.DB, logger watermill.LoggerAdapter) (*watermillSQL.Subscriber, error) {
	sub, err := watermillSQL.NewSubscriber(
		db,
		watermillSQL.SubscriberConfig{
			ConsumerGroup:    "receipts",
			SchemaAdapter:    watermillSQL.DefaultPostgreSQLSchema{},
			OffsetsAdapter:   watermillSQL.DefaultPostgreSQLOffsetsAdapter{},
			InitializeSchema: true,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("サブスクライバーの作成に失敗: %w", err)
	}
	return sub, nil
}

// InitializeSchema はトピックのテーブルを作成する。
// トランザクション内のパブリッシャーはテーブルを作成しないため、起動時に呼ぶ
func InitializeSchema(sub *watermillSQL.Subscriber) error {
	if err := sub.SubscribeInitialize(TopicPaymentRecorded); err != nil {
		return fmt.Errorf("トピックの初期化に失敗: %w", err)
	}
	return nil
}
