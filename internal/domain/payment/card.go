package payment

import (
	"strconv"
	"strings"
)

// CardDetails はチェックアウト時に入力される支払い情報。
// 保存されるのは Buyer() で取り出す項目だけで、カード番号全体とCVVは保持しない
type CardDetails struct {
	Email       string
	Phone       string
	CardNumber  string
	NameOnCard  string
	ExpiryMonth string
	ExpiryYear  string
	CVV         string
}

// Validate は入力を先頭の項目から順に検証し、最初の不備を返す
func (c CardDetails) Validate() error {
	email := strings.TrimSpace(c.Email)
	if email == "" || !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	if !isDigits(strings.TrimSpace(c.Phone), 10) {
		return ErrInvalidPhone
	}
	if !isDigits(strings.TrimSpace(c.CardNumber), 16) {
		return ErrInvalidCardNumber
	}
	if strings.TrimSpace(c.NameOnCard) == "" {
		return ErrNameOnCardRequired
	}
	mm := strings.TrimSpace(c.ExpiryMonth)
	yy := strings.TrimSpace(c.ExpiryYear)
	if mm == "" || yy == "" {
		return ErrExpiryRequired
	}
	month, err := strconv.Atoi(mm)
	if err != nil || month < 1 || month > 12 {
		return ErrInvalidExpiryMonth
	}
	if !isDigits(strings.TrimSpace(c.CVV), 3) {
		return ErrInvalidCVV
	}
	return nil
}

// Buyer は保存対象の購入者情報を返す
func (c CardDetails) Buyer() Buyer {
	card := strings.TrimSpace(c.CardNumber)
	last4 := card
	if len(card) >= 4 {
		last4 = card[len(card)-4:]
	}
	return Buyer{Email: c.Email, Phone: c.Phone, NameOnCard: c.NameOnCard, CardLast4: last4}.Normalize()
}

// String はログ出力用の表現。カード番号とCVVは含めない
func (c CardDetails) String() string {
	return "CardDetails{Email:" + c.Email + " Card:****" + c.Buyer().CardLast4 + "}"
}
