package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func showQuery(theatre, time string) string {
	v := url.Values{}
	v.Set("movie", "Avengers")
	v.Set("date", "2025-01-10")
	v.Set("theatre", theatre)
	v.Set("time", time)
	return v.Encode()
}

func showBody(theatre, time string) map[string]interface{} {
	return map[string]interface{}{
		"movie":   "Avengers",
		"date":    "2025-01-10",
		"theatre": theatre,
		"time":    time,
	}
}

func ensureSchedule(t *testing.T, server *TestServer) {
	t.Helper()
	rec := server.Request(http.MethodPost, "/api/v1/schedules", map[string]string{
		"movie": "Avengers",
		"date":  "2025-01-10",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

// TestE2E_HealthCheck はヘルスチェックをテスト
func TestE2E_HealthCheck(t *testing.T) {
	server := getTestServer(t)

	rec := server.Request(http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "up", resp["database"])
}

// TestE2E_CompleteBookingJourney は上映回作成から支払い履歴参照までをテスト
func TestE2E_CompleteBookingJourney(t *testing.T) {
	server := getTestServer(t)

	t.Run("上映回作成", func(t *testing.T) {
		rec := server.Request(http.MethodPost, "/api/v1/schedules", map[string]string{
			"movie": "Avengers",
			"date":  "2025-01-10",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, float64(20), resp["inserted"])
	})

	t.Run("2回目の作成は何も追加しない", func(t *testing.T) {
		rec := server.Request(http.MethodPost, "/api/v1/schedules", map[string]string{
			"movie": "Avengers",
			"date":  "2025-01-10",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, float64(0), resp["inserted"])
	})

	t.Run("劇場一覧", func(t *testing.T) {
		rec := server.Request(http.MethodGet, "/api/v1/theatres?movie=Avengers&date=2025-01-10", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var theatres []string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &theatres))
		assert.Equal(t, []string{"CPVR Cinema", "CineCity Cinema", "Rajah", "Regal Cinema", "Samantha Cinema"}, theatres)
	})

	t.Run("上映時刻一覧", func(t *testing.T) {
		rec := server.Request(http.MethodGet, "/api/v1/showtimes?movie=Avengers&date=2025-01-10&theatre=Rajah", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var times []string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &times))
		assert.Equal(t, []string{"01:30 PM", "06:00 PM", "09:00 PM", "10:00 AM"}, times)
	})

	t.Run("座席確保", func(t *testing.T) {
		body := showBody("Rajah", "10:00 AM")
		body["seats"] = []string{"B3", "B4"}
		rec := server.Request(http.MethodPost, "/api/v1/bookings", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp struct {
			Accepted []string `json:"accepted"`
			Rejected []string `json:"rejected"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, []string{"B3", "B4"}, resp.Accepted)
		assert.Empty(t, resp.Rejected)
	})

	t.Run("確保済み座席は拒否される", func(t *testing.T) {
		body := showBody("Rajah", "10:00 AM")
		body["seats"] = []string{"B4", "B5"}
		rec := server.Request(http.MethodPost, "/api/v1/bookings", body)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Accepted []string `json:"accepted"`
			Rejected []string `json:"rejected"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, []string{"B5"}, resp.Accepted)
		assert.Equal(t, []string{"B4"}, resp.Rejected)
	})

	t.Run("座席表", func(t *testing.T) {
		rec := server.Request(http.MethodGet, "/api/v1/seats?"+showQuery("Rajah", "10:00 AM"), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Booked    []string `json:"booked"`
			SoldCount int      `json:"sold_count"`
			Available int      `json:"available"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.ElementsMatch(t, []string{"B3", "B4", "B5"}, resp.Booked)
		assert.Equal(t, 3, resp.SoldCount)
		assert.Equal(t, 53, resp.Available)
	})

	t.Run("支払い記録", func(t *testing.T) {
		body := showBody("Rajah", "10:00 AM")
		body["seats"] = []string{"B3", "B4"}
		body["seat_count"] = 2
		body["amount"] = 2000
		body["email"] = "rajesh@example.com"
		body["phone"] = "0771234567"
		body["name_on_card"] = "Rajesh"
		body["card_last4"] = "1234"
		rec := server.Request(http.MethodPost, "/api/v1/payments", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("最新の支払い", func(t *testing.T) {
		rec := server.Request(http.MethodGet, "/api/v1/payments/latest?email=rajesh@example.com", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "B3, B4", resp["seats"])
		assert.Equal(t, float64(2000), resp["amount"])
		assert.Equal(t, "1234", resp["card_last4"])
	})

	t.Run("支払いがないメールアドレスは404", func(t *testing.T) {
		rec := server.Request(http.MethodGet, "/api/v1/payments/latest?email=nobody@example.com", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

// TestE2E_Checkout はカード決済付きの一括確保をテスト
func TestE2E_Checkout(t *testing.T) {
	server := getTestServer(t)
	ensureSchedule(t, server)

	checkout := func(seats ...string) map[string]interface{} {
		body := showBody("Regal Cinema", "06:00 PM")
		body["seats"] = seats
		body["email"] = "rajesh@example.com"
		body["phone"] = "0771234567"
		body["card_number"] = "4111111111111234"
		body["name_on_card"] = "Rajesh"
		body["expiry_month"] = "12"
		body["expiry_year"] = "27"
		body["cvv"] = "123"
		return body
	}

	t.Run("成功すると支払いが返る", func(t *testing.T) {
		rec := server.Request(http.MethodPost, "/api/v1/checkout", checkout("A1", "A2"))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "A1, A2", resp["seats"])
		assert.Equal(t, float64(2000), resp["amount"])
		assert.Equal(t, "1234", resp["card_last4"])
		assert.NotContains(t, rec.Body.String(), "4111111111111234")
	})

	t.Run("一部が確保済みなら何も確保しない", func(t *testing.T) {
		rec := server.Request(http.MethodPost, "/api/v1/checkout", checkout("A2", "A3"))
		require.Equal(t, http.StatusConflict, rec.Code)

		var resp struct {
			Seats []string `json:"seats"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, []string{"A2"}, resp.Seats)

		seatsRec := server.Request(http.MethodGet, "/api/v1/seats?"+showQuery("Regal Cinema", "06:00 PM"), nil)
		require.Equal(t, http.StatusOK, seatsRec.Code)
		var seatMap struct {
			Booked []string `json:"booked"`
		}
		require.NoError(t, json.Unmarshal(seatsRec.Body.Bytes(), &seatMap))
		assert.ElementsMatch(t, []string{"A1", "A2"}, seatMap.Booked)
	})

	t.Run("カード番号が不正なら400", func(t *testing.T) {
		body := checkout("C1")
		body["card_number"] = "1234"
		rec := server.Request(http.MethodPost, "/api/v1/checkout", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

// TestE2E_ConcurrentBooking は同じ座席への同時リクエストで勝者が1人だけであることをテスト
func TestE2E_ConcurrentBooking(t *testing.T) {
	server := getTestServer(t)
	ensureSchedule(t, server)

	const workers = 10
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		winners  int
		statuses = make(map[int]int)
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			body := showBody("CPVR Cinema", "09:00 PM")
			body["seats"] = []string{"E5"}
			rec := server.Request(http.MethodPost, "/api/v1/bookings", body)

			mu.Lock()
			defer mu.Unlock()
			statuses[rec.Code]++
			if rec.Code != http.StatusOK {
				return
			}
			var resp struct {
				Accepted []string `json:"accepted"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err == nil && len(resp.Accepted) == 1 {
				winners++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, winners, fmt.Sprintf("statuses: %v", statuses))
}

// TestE2E_EmptySchedule は上映回作成前の一覧が空配列で返ることをテスト
func TestE2E_EmptySchedule(t *testing.T) {
	server := getTestServer(t)

	rec := server.Request(http.MethodGet, "/api/v1/theatres?movie=Leo&date=2025-02-01", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = server.Request(http.MethodGet, "/api/v1/showtimes?movie=Leo&date=2025-02-01&theatre=Rajah", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

// TestE2E_Validation は入力エラーのレスポンスをテスト
func TestE2E_Validation(t *testing.T) {
	server := getTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
	}{
		{"日付形式が不正", http.MethodPost, "/api/v1/schedules", map[string]string{"movie": "Avengers", "date": "10/01/2025"}},
		{"映画が空", http.MethodGet, "/api/v1/theatres?date=2025-01-10", nil},
		{"座席ラベルが範囲外", http.MethodPost, "/api/v1/bookings", func() map[string]interface{} {
			b := showBody("Rajah", "10:00 AM")
			b["seats"] = []string{"Z9"}
			return b
		}()},
		{"座席が空", http.MethodPost, "/api/v1/bookings", showBody("Rajah", "10:00 AM")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := server.Request(tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

// TestE2E_Catalog はカタログ操作をテスト
func TestE2E_Catalog(t *testing.T) {
	server := getTestServer(t)

	for _, title := range []string{"Avengers", "AVENGERS"} {
		rec := server.Request(http.MethodPost, "/api/v1/catalog/movies", map[string]string{
			"title":    title,
			"language": "English",
			"category": "now",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := server.Request(http.MethodPost, "/api/v1/catalog/movies", map[string]string{
		"title":    "Avengers",
		"language": "English",
		"category": "now",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = server.Request(http.MethodGet, "/api/v1/catalog/movies/exists?title=avengers", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var exists struct {
		Exists bool `json:"exists"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &exists))
	assert.True(t, exists.Exists)

	rec = server.Request(http.MethodPost, "/api/v1/catalog/compact", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var compact struct {
		Removed int64 `json:"removed"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &compact))
	assert.Equal(t, int64(1), compact.Removed)
}
