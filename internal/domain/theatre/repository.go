package theatre

import (
	"context"

	"github.com/sanosuguru/go-cinema-booking/internal/domain/transaction"
)

// Repository は劇場リポジトリのインターフェース
// tx が nil の場合はトランザクション外で実行する
type Repository interface {
	// Count は劇場の件数を返す
	Count(ctx context.Context, tx transaction.Tx) (int, error)

	// InsertIgnore は劇場名の重複を無視して登録し、登録されたかを返す
	InsertIgnore(ctx context.Context, tx transaction.Tx, t Theatre) (bool, error)

	// ListNames は劇場名を名前順で返す
	ListNames(ctx context.Context, tx transaction.Tx) ([]string, error)
}
