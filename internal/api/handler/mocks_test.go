package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sanosuguru/go-cinema-booking/internal/application"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/booking"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/movie"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/payment"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/show"
)

// MockSeederService はSeederServiceInterfaceのモック
type MockSeederService struct {
	mock.Mock
}

func (m *MockSeederService) EnsureShowsForMovieDate(ctx context.Context, movie, date string) (int, error) {
	args := m.Called(ctx, movie, date)
	return args.Int(0), args.Error(1)
}

// MockInventoryService はInventoryServiceInterfaceのモック
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) TheatresForMovieDate(ctx context.Context, movie, date string) ([]string, error) {
	args := m.Called(ctx, movie, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockInventoryService) ShowTimesFor(ctx context.Context, movie, date, theatre string) ([]string, error) {
	args := m.Called(ctx, movie, date, theatre)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockInventoryService) SeatMap(ctx context.Context, key show.Key) (*booking.SeatMap, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.SeatMap), args.Error(1)
}

// MockBookingService はBookingServiceInterfaceのモック
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) BookSeats(ctx context.Context, key show.Key, seats []string) ([]string, error) {
	args := m.Called(ctx, key, seats)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBookingService) Checkout(ctx context.Context, input application.CheckoutInput) (*application.CheckoutResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.CheckoutResult), args.Error(1)
}

// MockPaymentService はPaymentServiceInterfaceのモック
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) RecordPayment(ctx context.Context, input application.RecordPaymentInput) (int64, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentService) LatestPaymentFor(ctx context.Context, email string) (*payment.Payment, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

// MockCatalogService はCatalogServiceInterfaceのモック
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) AddMovie(ctx context.Context, input application.AddMovieInput) (*movie.Movie, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*movie.Movie), args.Error(1)
}

func (m *MockCatalogService) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	args := m.Called(ctx, title)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogService) CompactDuplicateTitles(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
