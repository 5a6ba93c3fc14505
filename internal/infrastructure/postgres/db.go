package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-cinema-booking/internal/config"
	"github.com/sanosuguru/go-cinema-booking/internal/pkg/logger"
)

// NewConnection はPostgreSQLへの接続を作成する
func NewConnection(cfg *config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("データベース接続に失敗しました: %w", err)
	}

	// 接続プール設定
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	return db, nil
}

// OpenOrCreate は接続を開き、スキーマを target バージョンまで移行したハンドルを返す。
// 何度呼んでも同じ状態になる
func OpenOrCreate(ctx context.Context, cfg *config.DatabaseConfig, target uint) (*sqlx.DB, error) {
	db, err := NewConnection(cfg)
	if err != nil {
		return nil, err
	}
	if err := Ping(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("データベース疎通確認に失敗しました: %w", err)
	}
	if err := RunMigrations(db.DB, target); err != nil {
		db.Close()
		return nil, err
	}
	logger.Info("スキーマを準備しました", zap.Uint("schema_version", target))
	return db, nil
}

// Ping はデータベース接続を確認する
func Ping(ctx context.Context, db *sqlx.DB) error {
	return db.PingContext(ctx)
}
