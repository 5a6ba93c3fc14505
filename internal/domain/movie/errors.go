package movie

import "github.com/sanosuguru/go-cinema-booking/internal/domain/apperror"

// Movie ドメインのエラー定義
var (
	ErrTitleRequired      = apperror.Validation("タイトルを入力してください")
	ErrLanguageRequired   = apperror.Validation("言語を入力してください")
	ErrInvalidCategory    = apperror.Validation("区分は now または upcoming で指定してください")
	ErrTitleAlreadyExists = apperror.Conflict("同じタイトルの映画が既に登録されています")
)
