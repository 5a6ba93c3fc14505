package postgres

import (
	"context"
	"errors"

	"github.com/sanosuguru/go-cinema-booking/internal/domain/apperror"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/transaction"
)

var errLockRequiresTx = errors.New("アドバイザリロックにはトランザクションが必要です")

// AdvisoryLocker は pg_advisory_xact_lock によるトランザクションスコープのロック。
// ロックはコミットまたはロールバックで自動的に解放される
type AdvisoryLocker struct{}

// NewAdvisoryLocker は新しい AdvisoryLocker を作成する
func NewAdvisoryLocker() *AdvisoryLocker { return &AdvisoryLocker{} }

// Lock は key に対応するロックを取得するまで待つ
func (l *AdvisoryLocker) Lock(ctx context.Context, tx transaction.Tx, key string) error {
	stx := UnwrapTx(tx)
	if stx == nil {
		return errLockRequiresTx
	}
	if _, err := stx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
		return apperror.Storage("アドバイザリロック取得", err)
	}
	return nil
}

var _ transaction.Locker = (*AdvisoryLocker)(nil)
