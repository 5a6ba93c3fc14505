package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-cinema-booking/internal/domain/apperror"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/movie"
)

type MovieRepository struct{ db *sqlx.DB }

func NewMovieRepository(db *sqlx.DB) *MovieRepository { return &MovieRepository{db: db} }

func (r *MovieRepository) Create(ctx context.Context, m *movie.Movie) error {
	query := `INSERT INTO movies (title, language, category) VALUES ($1, $2, $3) ON CONFLICT (title) DO NOTHING RETURNING id`
	err := r.db.GetContext(ctx, &m.ID, query, m.Title, m.Language, string(m.Category))
	if errors.Is(err, sql.ErrNoRows) {
		return movie.ErrTitleAlreadyExists
	}
	if err != nil {
		return apperror.Storage("映画登録", err)
	}
	return nil
}

func (r *MovieRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM movies WHERE lower(title) = lower($1))`, title)
	if err != nil {
		return false, apperror.Storage("映画存在確認", err)
	}
	return exists, nil
}

func (r *MovieRepository) DeleteDuplicateTitles(ctx context.Context) (int64, error) {
	query := `DELETE FROM movies WHERE id NOT IN (SELECT MIN(id) FROM movies GROUP BY lower(title))`
	result, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, apperror.Storage("重複タイトル削除", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, apperror.Storage("重複タイトル削除", err)
	}
	return n, nil
}

var _ movie.Repository = (*MovieRepository)(nil)
