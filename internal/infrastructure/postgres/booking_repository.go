package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-cinema-booking/internal/domain/apperror"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/booking"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/show"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/transaction"
)

var errBookingRequiresTx = errors.New("座席の確保にはトランザクションが必要です")

type BookingRepository struct{ db *sqlx.DB }

func NewBookingRepository(db *sqlx.DB) *BookingRepository { return &BookingRepository{db: db} }

// InsertIgnore は一意制約 (movie, show_date, theatre, show_time, seat) に当たった場合は
// 何もせず false を返す。同じ座席を並行して挿入した側は先行トランザクションの完了を待つ
func (r *BookingRepository) InsertIgnore(ctx context.Context, tx transaction.Tx, key show.Key, seat string) (bool, error) {
	stx := UnwrapTx(tx)
	if stx == nil {
		return false, errBookingRequiresTx
	}
	query := `INSERT INTO bookings (movie, show_date, theatre, show_time, seat) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (movie, show_date, theatre, show_time, seat) DO NOTHING RETURNING id`
	var id int64
	err := stx.GetContext(ctx, &id, query, key.Movie, key.Date, key.Theatre, key.Time, seat)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, apperror.Storage("座席確保", err)
	}
	return true, nil
}

func (r *BookingRepository) ListSeats(ctx context.Context, key show.Key) ([]string, error) {
	query := `SELECT seat FROM bookings WHERE movie = $1 AND show_date = $2 AND theatre = $3 AND show_time = $4 ORDER BY seat COLLATE "C"`
	seats := []string{}
	if err := r.db.SelectContext(ctx, &seats, query, key.Movie, key.Date, key.Theatre, key.Time); err != nil {
		return nil, apperror.Storage("販売済み座席取得", err)
	}
	return seats, nil
}

var _ booking.Repository = (*BookingRepository)(nil)
