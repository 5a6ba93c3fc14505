package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("キャッシュが見つかりません")

// ScheduleCacheInterface は上映スケジュール（劇場・上映時刻）のキャッシュ。
// 上映回は作成後に変更されないため、販売済み座席は対象にしない
type ScheduleCacheInterface interface {
	GetTheatres(ctx context.Context, movie, date string) ([]string, error)
	SetTheatres(ctx context.Context, movie, date string, theatres []string) error
	GetShowTimes(ctx context.Context, movie, date, theatre string) ([]string, error)
	SetShowTimes(ctx context.Context, movie, date, theatre string, times []string) error
	Invalidate(ctx context.Context, movie, date string) error
}

// ScheduleCache は (映画, 日付) ごとに1つのハッシュへスケジュールを保存する
type ScheduleCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewScheduleCache は新しいScheduleCacheインスタンスを作成する
func NewScheduleCache(client *redis.Client, ttl time.Duration) *ScheduleCache {
	return &ScheduleCache{client: client, ttl: ttl}
}

func (c *ScheduleCache) GetTheatres(ctx context.Context, movie, date string) ([]string, error) {
	return c.get(ctx, movie, date, theatresField)
}

func (c *ScheduleCache) SetTheatres(ctx context.Context, movie, date string, theatres []string) error {
	return c.set(ctx, movie, date, theatresField, theatres)
}

func (c *ScheduleCache) GetShowTimes(ctx context.Context, movie, date, theatre string) ([]string, error) {
	return c.get(ctx, movie, date, timesField(theatre))
}

func (c *ScheduleCache) SetShowTimes(ctx context.Context, movie, date, theatre string, times []string) error {
	return c.set(ctx, movie, date, timesField(theatre), times)
}

// Invalidate は (映画, 日付) のキャッシュを無効化する
func (c *ScheduleCache) Invalidate(ctx context.Context, movie, date string) error {
	if err := c.client.Del(ctx, scheduleKey(movie, date)).Err(); err != nil {
		return fmt.Errorf("キャッシュ無効化に失敗: %w", err)
	}
	return nil
}

func (c *ScheduleCache) get(ctx context.Context, movie, date, field string) ([]string, error) {
	raw, err := c.client.HGet(ctx, scheduleKey(movie, date), field).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("キャッシュ取得に失敗: %w", err)
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("キャッシュの復元に失敗: %w", err)
	}
	return values, nil
}

func (c *ScheduleCache) set(ctx context.Context, movie, date, field string, values []string) error {
	raw, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("キャッシュの変換に失敗: %w", err)
	}
	key := scheduleKey(movie, date)
	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, field, raw)
		if c.ttl > 0 {
			pipe.Expire(ctx, key, c.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("キャッシュ保存に失敗: %w", err)
	}
	return nil
}

const theatresField = "theatres"

func timesField(theatre string) string {
	return "times:" + theatre
}

func scheduleKey(movie, date string) string {
	return fmt.Sprintf("schedule:%s|%s", movie, date)
}

var _ ScheduleCacheInterface = (*ScheduleCache)(nil)
