package application

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-cinema-booking/internal/domain/booking"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/show"
	redisinfra "github.com/sanosuguru/go-cinema-booking/internal/infrastructure/redis"
	"github.com/sanosuguru/go-cinema-booking/internal/pkg/logger"
)

// InventoryService は上映スケジュールと販売状況の参照を提供する
type InventoryService struct {
	showRepo    show.Repository
	bookingRepo booking.Repository
	cache       redisinfra.ScheduleCacheInterface
}

func NewInventoryService(sr show.Repository, br booking.Repository, cache redisinfra.ScheduleCacheInterface) *InventoryService {
	return &InventoryService{showRepo: sr, bookingRepo: br, cache: cache}
}

// TheatresForMovieDate は (映画, 日付) に上映がある劇場名を重複なしの名前順で返す
func (s *InventoryService) TheatresForMovieDate(ctx context.Context, movie, date string) ([]string, error) {
	if err := show.ValidateMovieDate(movie, date); err != nil {
		return nil, err
	}

	if s.cache != nil {
		theatres, err := s.cache.GetTheatres(ctx, movie, date)
		if err == nil {
			logger.Debug("キャッシュヒット", zap.String("movie", movie), zap.String("date", date))
			return theatres, nil
		}
		if !errors.Is(err, redisinfra.ErrCacheMiss) {
			logger.Warn("キャッシュ取得エラー", zap.Error(err))
		}
	}

	theatres, err := s.showRepo.ListTheatres(ctx, movie, date)
	if err != nil {
		return nil, err
	}

	// 未シードの結果はキャッシュしない
	if s.cache != nil && len(theatres) > 0 {
		if err := s.cache.SetTheatres(ctx, movie, date, theatres); err != nil {
			logger.Warn("キャッシュ保存エラー", zap.Error(err))
		}
	}
	return theatres, nil
}

// ShowTimesFor は (映画, 日付, 劇場) の上映時刻を文字列の昇順で返す
func (s *InventoryService) ShowTimesFor(ctx context.Context, movie, date, theatre string) ([]string, error) {
	if err := show.ValidateMovieDate(movie, date); err != nil {
		return nil, err
	}
	if theatre == "" {
		return nil, show.ErrTheatreRequired
	}

	if s.cache != nil {
		times, err := s.cache.GetShowTimes(ctx, movie, date, theatre)
		if err == nil {
			return times, nil
		}
		if !errors.Is(err, redisinfra.ErrCacheMiss) {
			logger.Warn("キャッシュ取得エラー", zap.Error(err))
		}
	}

	times, err := s.showRepo.ListTimes(ctx, movie, date, theatre)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && len(times) > 0 {
		if err := s.cache.SetShowTimes(ctx, movie, date, theatre, times); err != nil {
			logger.Warn("キャッシュ保存エラー", zap.Error(err))
		}
	}
	return times, nil
}

// BookedSeats は上映回の販売済み座席を返す。常にストアから読む
func (s *InventoryService) BookedSeats(ctx context.Context, key show.Key) ([]string, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	return s.bookingRepo.ListSeats(ctx, key)
}

// SeatMap は上映回の座席表を返す
func (s *InventoryService) SeatMap(ctx context.Context, key show.Key) (*booking.SeatMap, error) {
	sold, err := s.BookedSeats(ctx, key)
	if err != nil {
		return nil, err
	}
	return booking.NewSeatMap(key, sold), nil
}
