package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-cinema-booking/internal/api"
	"github.com/sanosuguru/go-cinema-booking/internal/pkg/metrics"
)

// ルートに一致しないリクエストのpathラベル
const unmatchedRoute = "unmatched"

// PrometheusMiddleware はHTTPメトリクスを収集するミドルウェア。/metrics 自体は計測しない
func PrometheusMiddleware(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().URL.Path == "/metrics" {
				return next(c)
			}
			start := time.Now()

			err := next(c)

			duration := time.Since(start).Seconds()
			status := c.Response().Status
			if err != nil {
				// エラーハンドラーより前に実行されるため、ドメインエラーの種別から算出する
				status = api.StatusCode(err)
			}

			// 上映回や座席はクエリで渡すため、ラベルはルート定義のパスに限る
			path := c.Path()
			if path == "" || status == http.StatusNotFound && path == "/*" {
				path = unmatchedRoute
			}

			method := c.Request().Method
			m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)

			return err
		}
	}
}
