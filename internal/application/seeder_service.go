package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-cinema-booking/internal/domain/show"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/theatre"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/transaction"
	redisinfra "github.com/sanosuguru/go-cinema-booking/internal/infrastructure/redis"
	"github.com/sanosuguru/go-cinema-booking/internal/pkg/logger"
)

const theatresLockKey = "theatres"

// SeedData はシードする参照データ（劇場一覧と上映枠）
type SeedData struct {
	Theatres  []theatre.Theatre
	TimeSlots []string
}

// DefaultSeedData は既定の劇場5館と上映枠4つを返す
func DefaultSeedData() SeedData {
	return SeedData{Theatres: theatre.DefaultRoster(), TimeSlots: show.DefaultTimeSlots()}
}

// Validate はシードデータを検証する
func (d SeedData) Validate() error {
	if err := theatre.ValidateRoster(d.Theatres); err != nil {
		return err
	}
	return show.ValidateTimeSlots(d.TimeSlots)
}

// SeederService は劇場と上映回を冪等に作成する
type SeederService struct {
	txManager   transaction.Manager
	locker      transaction.Locker
	theatreRepo theatre.Repository
	showRepo    show.Repository
	cache       redisinfra.ScheduleCacheInterface
	data        SeedData
}

func NewSeederService(
	txManager transaction.Manager,
	locker transaction.Locker,
	theatreRepo theatre.Repository,
	showRepo show.Repository,
	cache redisinfra.ScheduleCacheInterface,
	data SeedData,
) (*SeederService, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	return &SeederService{
		txManager:   txManager,
		locker:      locker,
		theatreRepo: theatreRepo,
		showRepo:    showRepo,
		cache:       cache,
		data:        data,
	}, nil
}

// SeedTheatres は劇場が1件もない場合に限り劇場一覧を登録し、登録件数を返す
func (s *SeederService) SeedTheatres(ctx context.Context) (int, error) {
	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	inserted, err := s.seedTheatres(ctx, tx)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	if inserted > 0 {
		logger.Info("劇場を登録しました", zap.Int("count", inserted))
	}
	return inserted, nil
}

func (s *SeederService) seedTheatres(ctx context.Context, tx transaction.Tx) (int, error) {
	count, err := s.theatreRepo.Count(ctx, tx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	// ロック取得後に再確認する
	if err := s.locker.Lock(ctx, tx, theatresLockKey); err != nil {
		return 0, err
	}
	count, err = s.theatreRepo.Count(ctx, tx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	inserted := 0
	for _, t := range s.data.Theatres {
		ok, err := s.theatreRepo.InsertIgnore(ctx, tx, t)
		if err != nil {
			return 0, err
		}
		if ok {
			inserted++
		}
	}
	return inserted, nil
}

// EnsureShowsForMovieDate は (映画, 日付) について、上映回が1件もない劇場に
// すべての上映枠を作成し、作成件数を返す。既に上映回がある劇場は補完しない
func (s *SeederService) EnsureShowsForMovieDate(ctx context.Context, movie, date string) (int, error) {
	if err := show.ValidateMovieDate(movie, date); err != nil {
		return 0, err
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := s.seedTheatres(ctx, tx); err != nil {
		return 0, err
	}
	if err := s.locker.Lock(ctx, tx, showsLockKey(movie, date)); err != nil {
		return 0, err
	}

	theatres, err := s.theatreRepo.ListNames(ctx, tx)
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, name := range theatres {
		exists, err := s.showRepo.ExistsForTheatre(ctx, tx, movie, date, name)
		if err != nil {
			return 0, err
		}
		if exists {
			continue
		}
		for _, slot := range s.data.TimeSlots {
			ok, err := s.showRepo.InsertIgnore(ctx, tx, show.Key{Movie: movie, Date: date, Theatre: name, Time: slot})
			if err != nil {
				return 0, err
			}
			if ok {
				inserted++
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	if inserted > 0 {
		s.invalidateSchedule(ctx, movie, date)
		logger.Info("上映回を作成しました",
			zap.String("movie", movie),
			zap.String("date", date),
			zap.Int("count", inserted),
		)
	}
	return inserted, nil
}

func (s *SeederService) invalidateSchedule(ctx context.Context, movie, date string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, movie, date); err != nil {
		logger.Warn("キャッシュ無効化エラー", zap.Error(err))
	}
}

func showsLockKey(movie, date string) string {
	return fmt.Sprintf("shows:%s|%s", movie, date)
}
