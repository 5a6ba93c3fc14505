package postgres

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// LatestSchemaVersion は同梱しているマイグレーションの最新バージョン
const LatestSchemaVersion uint = 7

var (
	ErrDowngradeNotSupported = errors.New("スキーマのダウングレードはサポートしていません")
	ErrDirtySchema           = errors.New("スキーマが不完全な状態です。手動での復旧が必要です")
	ErrUnknownSchemaVersion  = errors.New("未知のスキーマバージョンです")
)

// RunMigrations は target バージョンまで前進方向のマイグレーションを適用する。
// 適用済みの場合は何もしない
func RunMigrations(db *sql.DB, target uint) error {
	if target == 0 || target > LatestSchemaVersion {
		return fmt.Errorf("%w: %d", ErrUnknownSchemaVersion, target)
	}

	m, err := newMigrate(db)
	if err != nil {
		return err
	}
	// m.Close() は db も閉じてしまうため呼ばない

	current, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		current = 0
	case err != nil:
		return fmt.Errorf("マイグレーションバージョン取得エラー: %w", err)
	}
	if dirty {
		return fmt.Errorf("%w: version=%d", ErrDirtySchema, current)
	}
	if current > target {
		return fmt.Errorf("%w: current=%d target=%d", ErrDowngradeNotSupported, current, target)
	}

	if err := m.Migrate(target); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("マイグレーション実行エラー: %w", err)
	}
	return nil
}

// SchemaVersion は適用済みのスキーマバージョンを返す。未適用なら0
func SchemaVersion(db *sql.DB) (uint, bool, error) {
	m, err := newMigrate(db)
	if err != nil {
		return 0, false, err
	}
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

func newMigrate(db *sql.DB) (*migrate.Migrate, error) {
	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return nil, fmt.Errorf("マイグレーションドライバー作成エラー: %w", err)
	}

	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("マイグレーションソース作成エラー: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("マイグレーションインスタンス作成エラー: %w", err)
	}
	return m, nil
}
