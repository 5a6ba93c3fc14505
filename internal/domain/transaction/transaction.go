package transaction

import "context"

// Tx はトランザクションを表すインターフェース
// ドメイン層がインフラ層（sqlx等）に依存しないようにするための抽象化
type Tx interface {
	Commit() error
	Rollback() error
}

// Manager はトランザクションを開始する
type Manager interface {
	Begin(ctx context.Context) (Tx, error)
}

// Locker はトランザクションの終了まで保持されるスコープ付きロックを取得する。
// 同じキーで Lock した別トランザクションは、先行トランザクションの
// コミットまたはロールバックまで待たされる。
type Locker interface {
	Lock(ctx context.Context, tx Tx, key string) error
}
