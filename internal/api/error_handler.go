package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-cinema-booking/internal/domain/apperror"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/booking"
	"github.com/sanosuguru/go-cinema-booking/internal/pkg/logger"
)

// ErrorResponse はエラーレスポンスの統一フォーマット
type ErrorResponse struct {
	Error   string   `json:"error"`
	Code    int      `json:"code,omitempty"`
	Details string   `json:"details,omitempty"`
	Seats   []string `json:"seats,omitempty"`
}

// StatusCode はエラーに対応するHTTPステータスを返す
func StatusCode(err error) int {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he.Code
	case errors.Is(err, apperror.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrStorage):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// CustomHTTPErrorHandler はカスタムエラーハンドラー
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := StatusCode(err)
	resp := ErrorResponse{Code: code}

	var he *echo.HTTPError
	var domainErr *apperror.Error
	var unavailable *booking.UnavailableError
	switch {
	case errors.As(err, &he):
		if m, ok := he.Message.(string); ok {
			resp.Error = m
		} else {
			resp.Error = http.StatusText(code)
		}
	case errors.As(err, &unavailable):
		resp.Error = booking.ErrSeatsUnavailable.Error()
		resp.Seats = unavailable.Seats
	case errors.As(err, &domainErr):
		resp.Error = domainErr.Msg
	case apperror.IsStorage(err):
		resp.Error = "ストレージが利用できません"
	default:
		resp.Error = "内部サーバーエラー"
	}

	// エラーログを出力（5xx エラーの場合）
	if code >= 500 {
		logger.Error("サーバーエラー",
			zap.Int("status", code),
			zap.String("path", c.Request().URL.Path),
			zap.Error(err),
		)
	}

	// JSONレスポンスを返す
	if err := c.JSON(code, resp); err != nil {
		logger.Error("エラーレスポンス送信失敗", zap.Error(err))
	}
}
