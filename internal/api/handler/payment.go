package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-cinema-booking/internal/application"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/payment"
)

type PaymentHandler struct {
	service PaymentServiceInterface
}

func NewPaymentHandler(s PaymentServiceInterface) *PaymentHandler {
	return &PaymentHandler{service: s}
}

// RecordPaymentRequest は確保済み座席の支払いを記録するリクエスト。カード番号は下4桁のみ受け付ける
type RecordPaymentRequest struct {
	ShowRequest
	Seats      []string `json:"seats" validate:"required,min=1,dive,seat" example:"B3,B4"`
	SeatCount  int      `json:"seat_count" validate:"required,min=1" example:"2"`
	Amount     int      `json:"amount" validate:"required,min=1" example:"2000"`
	Email      string   `json:"email" validate:"required" example:"rajesh@example.com"`
	Phone      string   `json:"phone" example:"0771234567"`
	NameOnCard string   `json:"name_on_card" example:"Rajesh"`
	CardLast4  string   `json:"card_last4" validate:"required,len=4,numeric" example:"1234"`
}

type RecordPaymentResponse struct {
	ID int64 `json:"id"`
}

type LatestPaymentRequest struct {
	Email string `query:"email" validate:"required"`
}

// Record godoc
// @Summary 支払いを記録
// @Description 確保済み座席の支払いを追記します
// @Tags payments
// @Accept json
// @Produce json
// @Param request body RecordPaymentRequest true "支払い情報"
// @Success 201 {object} RecordPaymentResponse
// @Failure 400 {object} api.ErrorResponse
// @Router /payments [post]
func (h *PaymentHandler) Record(c echo.Context) error {
	var req RecordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	id, err := h.service.RecordPayment(c.Request().Context(), application.RecordPaymentInput{
		Show:      req.key(),
		Seats:     req.Seats,
		SeatCount: req.SeatCount,
		Amount:    req.Amount,
		Buyer: payment.Buyer{
			Email: req.Email, Phone: req.Phone, NameOnCard: req.NameOnCard, CardLast4: req.CardLast4,
		},
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, RecordPaymentResponse{ID: id})
}

// Latest godoc
// @Summary 最新の支払い
// @Description メールアドレスに対する最新の支払いを返します
// @Tags payments
// @Produce json
// @Param email query string true "メールアドレス"
// @Success 200 {object} PaymentResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /payments/latest [get]
func (h *PaymentHandler) Latest(c echo.Context) error {
	var req LatestPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	p, err := h.service.LatestPaymentFor(c.Request().Context(), req.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPaymentResponse(p))
}
