package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics はアプリケーションのメトリクスを管理する
type Metrics struct {
	// HTTPリクエストの総数（method, path, status_code）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPリクエストのレイテンシ（method, path）
	HTTPRequestDuration *prometheus.HistogramVec

	// 座席確保の結果（result: accepted, rejected）
	SeatsBookedTotal *prometheus.CounterVec

	// チェックアウトの結果（status: success, unavailable, invalid, error）
	CheckoutsTotal *prometheus.CounterVec

	// 記録された支払いの総数
	PaymentsRecordedTotal prometheus.Counter

	// 発行されたレシートの総数
	ReceiptsIssuedTotal prometheus.Counter

	// 分散ロックの操作時間（operation: acquire/release, status: success/failed）
	DistributedLockDuration *prometheus.HistogramVec

	// 重複タイトル整理で削除された行の総数
	CatalogDuplicatesRemovedTotal prometheus.Counter
}

// New は新しいMetricsインスタンスを作成し、デフォルトレジストリに登録する
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry は指定したレジストリにメトリクスを登録する
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		SeatsBookedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seats_booked_total",
				Help: "Total number of seat booking attempts by result",
			},
			[]string{"result"},
		),
		CheckoutsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkouts_total",
				Help: "Total number of checkout attempts by status",
			},
			[]string{"status"},
		),
		PaymentsRecordedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "payments_recorded_total",
				Help: "Total number of recorded payments",
			},
		),
		ReceiptsIssuedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "receipts_issued_total",
				Help: "Total number of receipts issued from payment events",
			},
		),
		DistributedLockDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "distributed_lock_duration_seconds",
				Help:    "Time spent on distributed lock operations",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"operation", "status"},
		),
		CatalogDuplicatesRemovedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "catalog_duplicates_removed_total",
				Help: "Total number of duplicate movie rows removed",
			},
		),
	}

	// レジストリに登録
	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.SeatsBookedTotal,
		m.CheckoutsTotal,
		m.PaymentsRecordedTotal,
		m.ReceiptsIssuedTotal,
		m.DistributedLockDuration,
		m.CatalogDuplicatesRemovedTotal,
	)

	return m
}

// デフォルトのメトリクスインスタンス
var defaultMetrics *Metrics

// Init はデフォルトのメトリクスインスタンスを初期化する
func Init() *Metrics {
	defaultMetrics = New()
	return defaultMetrics
}

// Get はデフォルトのメトリクスインスタンスを返す。Init 前は nil
func Get() *Metrics {
	return defaultMetrics
}

// 以下のヘルパーは m が nil の場合は何もしない

// ObserveSeats は確保できた座席数と拒否された座席数を記録する
func (m *Metrics) ObserveSeats(accepted, rejected int) {
	if m == nil {
		return
	}
	m.SeatsBookedTotal.WithLabelValues("accepted").Add(float64(accepted))
	m.SeatsBookedTotal.WithLabelValues("rejected").Add(float64(rejected))
}

// ObserveCheckout はチェックアウトの結果を記録する
func (m *Metrics) ObserveCheckout(status string) {
	if m == nil {
		return
	}
	m.CheckoutsTotal.WithLabelValues(status).Inc()
}

// IncPaymentsRecorded は支払い記録数を加算する
func (m *Metrics) IncPaymentsRecorded() {
	if m == nil {
		return
	}
	m.PaymentsRecordedTotal.Inc()
}

// IncReceiptsIssued はレシート発行数を加算する
func (m *Metrics) IncReceiptsIssued() {
	if m == nil {
		return
	}
	m.ReceiptsIssuedTotal.Inc()
}

// ObserveLock は分散ロック操作の所要時間を記録する
func (m *Metrics) ObserveLock(operation, status string, started time.Time) {
	if m == nil {
		return
	}
	m.DistributedLockDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

// AddDuplicatesRemoved は重複タイトル整理の削除件数を加算する
func (m *Metrics) AddDuplicatesRemoved(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.CatalogDuplicatesRemovedTotal.Add(float64(n))
}
