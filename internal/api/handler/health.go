package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger はヘルスチェック対象の依存先
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler はヘルスチェックハンドラー
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler はHealthHandlerを作成する。db が nil の場合は接続確認を行わない
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthResponse はヘルスチェックのレスポンス
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Check はヘルスチェックを行う
// @Summary ヘルスチェック
// @Description アプリケーションとデータベースの健全性を確認する
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c echo.Context) error {
	resp := HealthResponse{Status: "ok", Timestamp: time.Now().Format(time.RFC3339)}
	if h.db == nil {
		return c.JSON(http.StatusOK, resp)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	if err := h.db.PingContext(ctx); err != nil {
		resp.Status = "unavailable"
		resp.Database = "down"
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	resp.Database = "up"
	return c.JSON(http.StatusOK, resp)
}
