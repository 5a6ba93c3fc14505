package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-cinema-booking/internal/application"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/booking"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/payment"
)

type BookingHandler struct {
	service BookingServiceInterface
}

func NewBookingHandler(s BookingServiceInterface) *BookingHandler {
	return &BookingHandler{service: s}
}

type BookSeatsRequest struct {
	ShowRequest
	Seats []string `json:"seats" validate:"required,min=1,dive,seat" example:"B3,B4"`
}

type BookSeatsResponse struct {
	Show     ShowResponse `json:"show"`
	Accepted []string     `json:"accepted"`
	Rejected []string     `json:"rejected"`
}

// CheckoutRequest はチェックアウトのリクエスト。カード番号とCVVは検証にのみ使い保存しない
type CheckoutRequest struct {
	ShowRequest
	Seats       []string `json:"seats" validate:"required,min=1,dive,seat" example:"B3,B4"`
	Email       string   `json:"email" example:"rajesh@example.com"`
	Phone       string   `json:"phone" example:"0771234567"`
	CardNumber  string   `json:"card_number" example:"4111111111111234"`
	NameOnCard  string   `json:"name_on_card" example:"Rajesh"`
	ExpiryMonth string   `json:"expiry_month" example:"12"`
	ExpiryYear  string   `json:"expiry_year" example:"27"`
	CVV         string   `json:"cvv" example:"123"`
}

type PaymentResponse struct {
	ID         int64        `json:"id"`
	Show       ShowResponse `json:"show"`
	Seats      string       `json:"seats" example:"B3, B4"`
	SeatCount  int          `json:"seat_count"`
	Amount     int          `json:"amount"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	NameOnCard string       `json:"name_on_card"`
	CardLast4  string       `json:"card_last4"`
	CreatedAt  time.Time    `json:"created_at"`
}

func toPaymentResponse(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID: p.ID, Show: toShowResponse(p.Key),
		Seats: p.SeatsCSV(), SeatCount: p.SeatCount, Amount: p.Amount,
		Email: p.Email, Phone: p.Phone, NameOnCard: p.NameOnCard, CardLast4: p.CardLast4,
		CreatedAt: p.CreatedAt,
	}
}

// Book godoc
// @Summary 座席を確保
// @Description 指定座席を販売済みにします。既に販売済みの座席は rejected に入り、他の座席の確保は妨げません
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body BookSeatsRequest true "上映回と座席"
// @Success 200 {object} BookSeatsResponse
// @Failure 400 {object} api.ErrorResponse
// @Router /bookings [post]
func (h *BookingHandler) Book(c echo.Context) error {
	var req BookSeatsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	accepted, err := h.service.BookSeats(c.Request().Context(), req.key(), req.Seats)
	if err != nil {
		return err
	}
	requested, err := booking.NormalizeSeatLabels(req.Seats)
	if err != nil {
		return err
	}
	rejected := booking.Difference(requested, accepted)
	if rejected == nil {
		rejected = []string{}
	}
	return c.JSON(http.StatusOK, BookSeatsResponse{
		Show:     toShowResponse(req.key()),
		Accepted: accepted,
		Rejected: rejected,
	})
}

// Checkout godoc
// @Summary チェックアウト
// @Description 入力検証・座席確保・支払い記録を一括で行います。1席でも販売済みなら何も記録しません
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body CheckoutRequest true "上映回・座席・支払い情報"
// @Success 201 {object} PaymentResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 409 {object} api.ErrorResponse "販売済みの座席を含む"
// @Router /checkout [post]
func (h *BookingHandler) Checkout(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	result, err := h.service.Checkout(c.Request().Context(), application.CheckoutInput{
		Show:  req.key(),
		Seats: req.Seats,
		Card: payment.CardDetails{
			Email: req.Email, Phone: req.Phone, CardNumber: req.CardNumber,
			NameOnCard: req.NameOnCard, ExpiryMonth: req.ExpiryMonth, ExpiryYear: req.ExpiryYear,
			CVV: req.CVV,
		},
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toPaymentResponse(result.Payment))
}
