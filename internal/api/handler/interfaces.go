package handler

import (
	"context"

	"github.com/sanosuguru/go-cinema-booking/internal/application"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/booking"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/movie"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/payment"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/show"
)

// SeederServiceInterface は上映回シードのインターフェース
type SeederServiceInterface interface {
	EnsureShowsForMovieDate(ctx context.Context, movie, date string) (int, error)
}

// InventoryServiceInterface はスケジュール・販売状況参照のインターフェース
type InventoryServiceInterface interface {
	TheatresForMovieDate(ctx context.Context, movie, date string) ([]string, error)
	ShowTimesFor(ctx context.Context, movie, date, theatre string) ([]string, error)
	SeatMap(ctx context.Context, key show.Key) (*booking.SeatMap, error)
}

// BookingServiceInterface は座席確保のインターフェース
type BookingServiceInterface interface {
	BookSeats(ctx context.Context, key show.Key, seats []string) ([]string, error)
	Checkout(ctx context.Context, input application.CheckoutInput) (*application.CheckoutResult, error)
}

// PaymentServiceInterface は支払いのインターフェース
type PaymentServiceInterface interface {
	RecordPayment(ctx context.Context, input application.RecordPaymentInput) (int64, error)
	LatestPaymentFor(ctx context.Context, email string) (*payment.Payment, error)
}

// CatalogServiceInterface は映画カタログのインターフェース
type CatalogServiceInterface interface {
	AddMovie(ctx context.Context, input application.AddMovieInput) (*movie.Movie, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	CompactDuplicateTitles(ctx context.Context) (int64, error)
}
