package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-cinema-booking/internal/domain/apperror"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/show"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/transaction"
)

// ShowRepository は上映回の永続化を行う。
// 並び順はロケールに依存しないバイト順（COLLATE "C"）に揃える
type ShowRepository struct{ db *sqlx.DB }

func NewShowRepository(db *sqlx.DB) *ShowRepository { return &ShowRepository{db: db} }

func (r *ShowRepository) ExistsForTheatre(ctx context.Context, tx transaction.Tx, movie, date, theatre string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM shows WHERE movie = $1 AND show_date = $2 AND theatre = $3)`
	var exists bool
	if err := sqlx.GetContext(ctx, querier(r.db, tx), &exists, query, movie, date, theatre); err != nil {
		return false, apperror.Storage("上映回存在確認", err)
	}
	return exists, nil
}

func (r *ShowRepository) InsertIgnore(ctx context.Context, tx transaction.Tx, key show.Key) (bool, error) {
	query := `INSERT INTO shows (movie, show_date, theatre, show_time) VALUES ($1, $2, $3, $4)
		ON CONFLICT (movie, show_date, theatre, show_time) DO NOTHING RETURNING id`
	var id int64
	err := sqlx.GetContext(ctx, querier(r.db, tx), &id, query, key.Movie, key.Date, key.Theatre, key.Time)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, apperror.Storage("上映回登録", err)
	}
	return true, nil
}

func (r *ShowRepository) ListTheatres(ctx context.Context, movie, date string) ([]string, error) {
	query := `SELECT DISTINCT theatre FROM shows WHERE movie = $1 AND show_date = $2 ORDER BY theatre COLLATE "C"`
	names := []string{}
	if err := r.db.SelectContext(ctx, &names, query, movie, date); err != nil {
		return nil, apperror.Storage("上映劇場一覧取得", err)
	}
	return names, nil
}

func (r *ShowRepository) ListTimes(ctx context.Context, movie, date, theatre string) ([]string, error) {
	query := `SELECT show_time FROM shows WHERE movie = $1 AND show_date = $2 AND theatre = $3 ORDER BY show_time COLLATE "C"`
	times := []string{}
	if err := r.db.SelectContext(ctx, &times, query, movie, date, theatre); err != nil {
		return nil, apperror.Storage("上映時刻一覧取得", err)
	}
	return times, nil
}

var _ show.Repository = (*ShowRepository)(nil)
