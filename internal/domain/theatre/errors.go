package theatre

import "github.com/sanosuguru/go-cinema-booking/internal/domain/apperror"

// Theatre ドメインのエラー定義
var (
	ErrNameRequired  = apperror.Validation("劇場名は必須です")
	ErrRosterEmpty   = apperror.Validation("劇場一覧が空です")
	ErrDuplicateName = apperror.Validation("劇場名が重複しています")
)
