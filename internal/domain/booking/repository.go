package booking

import (
	"context"

	"github.com/sanosuguru/go-cinema-booking/internal/domain/show"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/transaction"
)

// Repository は販売済み座席リポジトリのインターフェース
type Repository interface {
	// InsertIgnore は座席を販売済みとして登録する。
	// 既に販売済みの場合は何もせず false を返す（トランザクション必須）
	InsertIgnore(ctx context.Context, tx transaction.Tx, key show.Key, seat string) (bool, error)

	// ListSeats は上映回の販売済み座席をラベル順で返す
	ListSeats(ctx context.Context, key show.Key) ([]string, error)
}
