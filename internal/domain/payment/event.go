package payment

import "time"

// PaymentRecorded は支払い記録時に発行されるイベント。
// 購入者の連絡先は含むがカード情報は含めない
type PaymentRecorded struct {
	PaymentID  int64     `json:"payment_id"`
	Movie      string    `json:"movie"`
	Date       string    `json:"date"`
	Theatre    string    `json:"theatre"`
	Time       string    `json:"time"`
	Seats      []string  `json:"seats"`
	Amount     int       `json:"amount"`
	Email      string    `json:"email"`
	RecordedAt time.Time `json:"recorded_at"`
}

// NewPaymentRecorded は保存済みの支払いからイベントを作成する
func NewPaymentRecorded(p *Payment) PaymentRecorded {
	return PaymentRecorded{
		PaymentID:  p.ID,
		Movie:      p.Movie,
		Date:       p.Date,
		Theatre:    p.Theatre,
		Time:       p.Time,
		Seats:      p.Seats,
		Amount:     p.Amount,
		Email:      p.Email,
		RecordedAt: p.CreatedAt,
	}
}
