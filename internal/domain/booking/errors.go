package booking

import (
	"strings"

	"github.com/sanosuguru/go-cinema-booking/internal/domain/apperror"
)

// Booking ドメインのエラー定義
var (
	ErrSeatsRequired    = apperror.Validation("座席を1席以上指定してください")
	ErrInvalidSeatLabel = apperror.Validation("座席ラベルはA〜Hの行と1〜7の列で指定してください")
	ErrSeatsUnavailable = apperror.Conflict("座席は既に販売済みです")
)

// UnavailableError は販売済みで確保できなかった座席を保持する
type UnavailableError struct {
	Seats []string
}

func (e *UnavailableError) Error() string {
	return ErrSeatsUnavailable.Error() + ": " + strings.Join(e.Seats, ", ")
}

// Unwrap は ErrSeatsUnavailable を返す
func (e *UnavailableError) Unwrap() error { return ErrSeatsUnavailable }
