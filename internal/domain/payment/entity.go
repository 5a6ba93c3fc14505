package payment

import (
	"strings"
	"time"

	"github.com/sanosuguru/go-cinema-booking/internal/domain/booking"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/show"
)

// DefaultUnitPrice は1席あたりの価格（価格帯なし）
const DefaultUnitPrice = 1000

// SeatsSeparator は支払いレコードに保存する座席一覧の区切り文字
const SeatsSeparator = ", "

// Buyer は支払いに記録する購入者情報。カード番号は下4桁のみ保持する
type Buyer struct {
	Email      string
	Phone      string
	NameOnCard string
	CardLast4  string
}

// Payment は支払いレコード。追記のみで、作成後は変更・削除されない
type Payment struct {
	ID int64
	show.Key
	Seats     []string
	SeatCount int
	Amount    int
	Buyer
	CreatedAt time.Time
}

// ComputeAmount は座席数と単価から金額を計算する
func ComputeAmount(seatCount, unitPrice int) int {
	return seatCount * unitPrice
}

// NewPayment は座席数と金額を計算して支払いを作成する
func NewPayment(key show.Key, seats []string, unitPrice int, buyer Buyer) (*Payment, error) {
	p := &Payment{
		Key:       key,
		Seats:     seats,
		SeatCount: len(seats),
		Amount:    ComputeAmount(len(seats), unitPrice),
		Buyer:     buyer,
	}
	if err := p.Validate(unitPrice); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate は支払いの整合性を検証する
func (p *Payment) Validate(unitPrice int) error {
	if unitPrice <= 0 {
		return ErrInvalidUnitPrice
	}
	if err := p.Key.Validate(); err != nil {
		return err
	}
	if len(p.Seats) == 0 {
		return booking.ErrSeatsRequired
	}
	for _, s := range p.Seats {
		if _, _, err := booking.ParseSeatLabel(s); err != nil {
			return err
		}
	}
	if p.SeatCount != len(p.Seats) {
		return ErrSeatCountMismatch
	}
	if p.Amount != ComputeAmount(p.SeatCount, unitPrice) {
		return ErrAmountMismatch
	}
	return p.Buyer.Validate()
}

// Normalize は前後の空白を取り除いた購入者情報を返す。
// 保存値と検索キーを揃えるため、記録前に必ず通す
func (b Buyer) Normalize() Buyer {
	return Buyer{
		Email:      strings.TrimSpace(b.Email),
		Phone:      strings.TrimSpace(b.Phone),
		NameOnCard: strings.TrimSpace(b.NameOnCard),
		CardLast4:  strings.TrimSpace(b.CardLast4),
	}
}

// Validate は保存する購入者情報を検証する
func (b Buyer) Validate() error {
	if !strings.Contains(b.Email, "@") {
		return ErrInvalidEmail
	}
	if !isDigits(b.Phone, 10) {
		return ErrInvalidPhone
	}
	if !isDigits(b.CardLast4, 4) {
		return ErrInvalidCardLast4
	}
	return nil
}

// SeatsCSV は座席一覧を保存用の文字列にする
func (p *Payment) SeatsCSV() string {
	return strings.Join(p.Seats, SeatsSeparator)
}

// ParseSeatsCSV は保存された座席一覧を分解する
func ParseSeatsCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	seats := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			seats = append(seats, p)
		}
	}
	return seats
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
