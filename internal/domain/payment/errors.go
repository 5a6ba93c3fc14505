package payment

import "github.com/sanosuguru/go-cinema-booking/internal/domain/apperror"

// Payment ドメインのエラー定義
var (
	ErrPaymentNotFound    = apperror.NotFound("支払い履歴が見つかりません")
	ErrSeatCountMismatch  = apperror.Validation("座席数が座席一覧と一致しません")
	ErrAmountMismatch     = apperror.Validation("金額が座席数×単価と一致しません")
	ErrInvalidEmail       = apperror.Validation("メールアドレスには@を含めてください")
	ErrInvalidPhone       = apperror.Validation("電話番号は10桁の数字で入力してください")
	ErrInvalidCardNumber  = apperror.Validation("カード番号は16桁の数字で入力してください")
	ErrInvalidCardLast4   = apperror.Validation("カード番号の下4桁が不正です")
	ErrNameOnCardRequired = apperror.Validation("カード名義を入力してください")
	ErrExpiryRequired     = apperror.Validation("有効期限を入力してください")
	ErrInvalidExpiryMonth = apperror.Validation("有効期限の月は01〜12で入力してください")
	ErrInvalidCVV         = apperror.Validation("CVVは3桁の数字で入力してください")
	ErrInvalidUnitPrice   = apperror.Validation("単価は1以上である必要があります")
)
