package movie

import "context"

// Repository は映画カタログリポジトリのインターフェース
type Repository interface {
	// Create は映画を登録する。同一タイトル（大文字小文字を区別）は ErrTitleAlreadyExists
	Create(ctx context.Context, m *Movie) error

	// ExistsByTitle は大文字小文字を区別せずにタイトルの有無を返す
	ExistsByTitle(ctx context.Context, title string) (bool, error)

	// DeleteDuplicateTitles はタイトル（大文字小文字を区別しない）ごとに最小IDの行だけを残し、
	// 削除した行数を返す
	DeleteDuplicateTitles(ctx context.Context) (int64, error)
}
