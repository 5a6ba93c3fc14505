package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-cinema-booking/internal/domain/apperror"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/theatre"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/transaction"
)

type TheatreRepository struct{ db *sqlx.DB }

func NewTheatreRepository(db *sqlx.DB) *TheatreRepository { return &TheatreRepository{db: db} }

func (r *TheatreRepository) Count(ctx context.Context, tx transaction.Tx) (int, error) {
	var count int
	if err := sqlx.GetContext(ctx, querier(r.db, tx), &count, `SELECT COUNT(*) FROM theatres`); err != nil {
		return 0, apperror.Storage("劇場件数取得", err)
	}
	return count, nil
}

func (r *TheatreRepository) InsertIgnore(ctx context.Context, tx transaction.Tx, t theatre.Theatre) (bool, error) {
	query := `INSERT INTO theatres (name, location) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING RETURNING name`
	var name string
	err := sqlx.GetContext(ctx, querier(r.db, tx), &name, query, t.Name, t.Location)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, apperror.Storage("劇場登録", err)
	}
	return true, nil
}

func (r *TheatreRepository) ListNames(ctx context.Context, tx transaction.Tx) ([]string, error) {
	var names []string
	if err := sqlx.SelectContext(ctx, querier(r.db, tx), &names, `SELECT name FROM theatres ORDER BY name COLLATE "C"`); err != nil {
		return nil, apperror.Storage("劇場一覧取得", err)
	}
	return names, nil
}

var _ theatre.Repository = (*TheatreRepository)(nil)
