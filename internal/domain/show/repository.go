package show

import (
	"context"

	"github.com/sanosuguru/go-cinema-booking/internal/domain/transaction"
)

// Repository は上映回リポジトリのインターフェース
type Repository interface {
	// ExistsForTheatre は (映画, 日付, 劇場) の上映回が1件でもあるかを返す
	ExistsForTheatre(ctx context.Context, tx transaction.Tx, movie, date, theatre string) (bool, error)

	// InsertIgnore は自然キーの重複を無視して登録し、登録されたかを返す
	InsertIgnore(ctx context.Context, tx transaction.Tx, key Key) (bool, error)

	// ListTheatres は (映画, 日付) に上映がある劇場名を重複なしの名前順で返す
	ListTheatres(ctx context.Context, movie, date string) ([]string, error)

	// ListTimes は (映画, 日付, 劇場) の上映時刻を文字列の昇順で返す
	ListTimes(ctx context.Context, movie, date, theatre string) ([]string, error)
}
