package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-cinema-booking/internal/domain/apperror"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/payment"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/show"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/transaction"
)

type paymentRow struct {
	ID         int64          `db:"id"`
	Movie      string         `db:"movie"`
	Date       string         `db:"show_date"`
	Theatre    string         `db:"theatre"`
	Time       string         `db:"show_time"`
	Seats      string         `db:"seats"`
	SeatCount  int            `db:"seat_count"`
	Amount     int            `db:"amount"`
	Email      sql.NullString `db:"email"`
	Phone      sql.NullString `db:"phone"`
	NameOnCard sql.NullString `db:"name_on_card"`
	CardLast4  sql.NullString `db:"card_last4"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (r *paymentRow) toEntity() *payment.Payment {
	return &payment.Payment{
		ID:        r.ID,
		Key:       show.Key{Movie: r.Movie, Date: r.Date, Theatre: r.Theatre, Time: r.Time},
		Seats:     payment.ParseSeatsCSV(r.Seats),
		SeatCount: r.SeatCount,
		Amount:    r.Amount,
		Buyer: payment.Buyer{
			Email:      r.Email.String,
			Phone:      r.Phone.String,
			NameOnCard: r.NameOnCard.String,
			CardLast4:  r.CardLast4.String,
		},
		CreatedAt: r.CreatedAt,
	}
}

// PaymentRepository は支払いの追記と参照のみを提供する（更新・削除なし）
type PaymentRepository struct{ db *sqlx.DB }

func NewPaymentRepository(db *sqlx.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, tx transaction.Tx, p *payment.Payment) error {
	query := `INSERT INTO payments (movie, show_date, theatre, show_time, seats, seat_count, amount, email, phone, name_on_card, card_last4)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id, created_at`
	row := struct {
		ID        int64     `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}{}
	err := sqlx.GetContext(ctx, querier(r.db, tx), &row, query,
		p.Movie, p.Date, p.Theatre, p.Time, p.SeatsCSV(), p.SeatCount, p.Amount,
		p.Email, p.Phone, p.NameOnCard, p.CardLast4)
	if err != nil {
		return apperror.Storage("支払い登録", err)
	}
	p.ID = row.ID
	p.CreatedAt = row.CreatedAt
	return nil
}

func (r *PaymentRepository) LatestByEmail(ctx context.Context, email string) (*payment.Payment, error) {
	query := `SELECT id, movie, show_date, theatre, show_time, seats, seat_count, amount, email, phone, name_on_card, card_last4, created_at
		FROM payments WHERE email = $1 ORDER BY id DESC LIMIT 1`
	var row paymentRow
	if err := r.db.GetContext(ctx, &row, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, apperror.Storage("最新支払い取得", err)
	}
	return row.toEntity(), nil
}

var _ payment.Repository = (*PaymentRepository)(nil)
