package show

import "github.com/sanosuguru/go-cinema-booking/internal/domain/apperror"

// Show ドメインのエラー定義
var (
	ErrMovieRequired     = apperror.Validation("映画タイトルは必須です")
	ErrDateRequired      = apperror.Validation("日付は必須です")
	ErrInvalidDate       = apperror.Validation("日付はYYYY-MM-DD形式である必要があります")
	ErrTheatreRequired   = apperror.Validation("劇場名は必須です")
	ErrTimeRequired      = apperror.Validation("上映時刻は必須です")
	ErrTimeSlotsEmpty    = apperror.Validation("上映枠が空です")
	ErrDuplicateTimeSlot = apperror.Validation("上映枠が重複しています")
)
