package handler

import "github.com/labstack/echo/v4"

// Handlers はルーティング対象のハンドラー一式
type Handlers struct {
	Health   *HealthHandler
	Schedule *ScheduleHandler
	Seat     *SeatHandler
	Booking  *BookingHandler
	Payment  *PaymentHandler
	Catalog  *CatalogHandler
}

// RegisterRoutes は /health と /api/v1 配下のルートを登録する
func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/health", h.Health.Check)

	v1 := e.Group("/api/v1")
	v1.GET("/health", h.Health.Check)

	v1.POST("/schedules", h.Schedule.Ensure)
	v1.GET("/theatres", h.Schedule.Theatres)
	v1.GET("/showtimes", h.Schedule.ShowTimes)

	v1.GET("/seats", h.Seat.GetByShow)
	v1.POST("/bookings", h.Booking.Book)
	v1.POST("/checkout", h.Booking.Checkout)

	v1.POST("/payments", h.Payment.Record)
	v1.GET("/payments/latest", h.Payment.Latest)

	v1.POST("/catalog/movies", h.Catalog.AddMovie)
	v1.GET("/catalog/movies/exists", h.Catalog.Exists)
	v1.POST("/catalog/compact", h.Catalog.Compact)
}
