package application

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-cinema-booking/internal/domain/movie"
	"github.com/sanosuguru/go-cinema-booking/internal/pkg/logger"
	"github.com/sanosuguru/go-cinema-booking/internal/pkg/metrics"
)

type CatalogService struct {
	movieRepo movie.Repository
	metrics   *metrics.Metrics
}

func NewCatalogService(mr movie.Repository, m *metrics.Metrics) *CatalogService {
	return &CatalogService{movieRepo: mr, metrics: m}
}

type AddMovieInput struct {
	Title    string
	Language string
	Category string
}

func (s *CatalogService) AddMovie(ctx context.Context, input AddMovieInput) (*movie.Movie, error) {
	m, err := movie.NewMovie(input.Title, input.Language, movie.Category(input.Category))
	if err != nil {
		return nil, err
	}
	if err := s.movieRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// ExistsByTitle は大文字小文字を区別せずにタイトルの有無を返す
func (s *CatalogService) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return false, movie.ErrTitleRequired
	}
	return s.movieRepo.ExistsByTitle(ctx, title)
}

// CompactDuplicateTitles はタイトル（大文字小文字を区別しない）の重複を最小IDの行に集約し、
// 削除件数を返す。2回目以降の呼び出しは0を返す
func (s *CatalogService) CompactDuplicateTitles(ctx context.Context) (int64, error) {
	removed, err := s.movieRepo.DeleteDuplicateTitles(ctx)
	if err != nil {
		return 0, err
	}
	s.metrics.AddDuplicatesRemoved(removed)
	if removed > 0 {
		logger.Info("重複タイトルを削除しました", zap.Int64("removed", removed))
	}
	return removed, nil
}
