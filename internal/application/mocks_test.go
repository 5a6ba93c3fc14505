package application

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sanosuguru/go-cinema-booking/internal/domain/movie"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/payment"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/show"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/theatre"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/transaction"
	redisinfra "github.com/sanosuguru/go-cinema-booking/internal/infrastructure/redis"
)

// === Mock implementations ===

// MockTxManager implements transaction.Manager
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) Begin(ctx context.Context) (transaction.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(transaction.Tx), args.Error(1)
}

// MockTx implements transaction.Tx
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTx) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

// MockLocker implements transaction.Locker
type MockLocker struct {
	mock.Mock
}

func (m *MockLocker) Lock(ctx context.Context, tx transaction.Tx, key string) error {
	args := m.Called(ctx, tx, key)
	return args.Error(0)
}

// MockTheatreRepository implements theatre.Repository
type MockTheatreRepository struct {
	mock.Mock
}

func (m *MockTheatreRepository) Count(ctx context.Context, tx transaction.Tx) (int, error) {
	args := m.Called(ctx, tx)
	return args.Int(0), args.Error(1)
}

func (m *MockTheatreRepository) InsertIgnore(ctx context.Context, tx transaction.Tx, t theatre.Theatre) (bool, error) {
	args := m.Called(ctx, tx, t)
	return args.Bool(0), args.Error(1)
}

func (m *MockTheatreRepository) ListNames(ctx context.Context, tx transaction.Tx) ([]string, error) {
	args := m.Called(ctx, tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockShowRepository implements show.Repository
type MockShowRepository struct {
	mock.Mock
}

func (m *MockShowRepository) ExistsForTheatre(ctx context.Context, tx transaction.Tx, movie, date, theatre string) (bool, error) {
	args := m.Called(ctx, tx, movie, date, theatre)
	return args.Bool(0), args.Error(1)
}

func (m *MockShowRepository) InsertIgnore(ctx context.Context, tx transaction.Tx, key show.Key) (bool, error) {
	args := m.Called(ctx, tx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockShowRepository) ListTheatres(ctx context.Context, movie, date string) ([]string, error) {
	args := m.Called(ctx, movie, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockShowRepository) ListTimes(ctx context.Context, movie, date, theatre string) ([]string, error) {
	args := m.Called(ctx, movie, date, theatre)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockBookingRepository implements booking.Repository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) InsertIgnore(ctx context.Context, tx transaction.Tx, key show.Key, seat string) (bool, error) {
	args := m.Called(ctx, tx, key, seat)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) ListSeats(ctx context.Context, key show.Key) ([]string, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockPaymentRepository implements payment.Repository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, tx transaction.Tx, p *payment.Payment) error {
	args := m.Called(ctx, tx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) LatestByEmail(ctx context.Context, email string) (*payment.Payment, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

// MockEventPublisher implements payment.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishPaymentRecorded(ctx context.Context, tx transaction.Tx, event payment.PaymentRecorded) error {
	args := m.Called(ctx, tx, event)
	return args.Error(0)
}

// MockMovieRepository implements movie.Repository
type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) Create(ctx context.Context, mv *movie.Movie) error {
	args := m.Called(ctx, mv)
	return args.Error(0)
}

func (m *MockMovieRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	args := m.Called(ctx, title)
	return args.Bool(0), args.Error(1)
}

func (m *MockMovieRepository) DeleteDuplicateTitles(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockLockManager implements redisinfra.LockManagerInterface
type MockLockManager struct {
	mock.Mock
}

func (m *MockLockManager) AcquireLock(ctx context.Context, key string, ttl time.Duration) (redisinfra.Lock, error) {
	args := m.Called(ctx, key, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(redisinfra.Lock), args.Error(1)
}

func (m *MockLockManager) AcquireLockWithRetry(ctx context.Context, key string, ttl time.Duration, maxRetries int, retryDelay time.Duration) (redisinfra.Lock, error) {
	args := m.Called(ctx, key, ttl, maxRetries, retryDelay)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(redisinfra.Lock), args.Error(1)
}

// MockLock implements redisinfra.Lock
type MockLock struct {
	mock.Mock
}

func (m *MockLock) Release(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLock) Extend(ctx context.Context, ttl time.Duration) error {
	args := m.Called(ctx, ttl)
	return args.Error(0)
}

// MockScheduleCache implements redisinfra.ScheduleCacheInterface
type MockScheduleCache struct {
	mock.Mock
}

func (m *MockScheduleCache) GetTheatres(ctx context.Context, movie, date string) ([]string, error) {
	args := m.Called(ctx, movie, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockScheduleCache) SetTheatres(ctx context.Context, movie, date string, theatres []string) error {
	args := m.Called(ctx, movie, date, theatres)
	return args.Error(0)
}

func (m *MockScheduleCache) GetShowTimes(ctx context.Context, movie, date, theatre string) ([]string, error) {
	args := m.Called(ctx, movie, date, theatre)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockScheduleCache) SetShowTimes(ctx context.Context, movie, date, theatre string, times []string) error {
	args := m.Called(ctx, movie, date, theatre, times)
	return args.Error(0)
}

func (m *MockScheduleCache) Invalidate(ctx context.Context, movie, date string) error {
	args := m.Called(ctx, movie, date)
	return args.Error(0)
}
