package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-cinema-booking/internal/domain/booking"
)

type SeatHandler struct {
	inventory InventoryServiceInterface
}

func NewSeatHandler(inventory InventoryServiceInterface) *SeatHandler {
	return &SeatHandler{inventory: inventory}
}

type SeatRowResponse struct {
	Row   string   `json:"row"`
	Seats []string `json:"seats"`
	Sold  []bool   `json:"sold"`
}

type SeatMapResponse struct {
	Show      ShowResponse      `json:"show"`
	Booked    []string          `json:"booked"`
	SoldCount int               `json:"sold_count"`
	Available int               `json:"available"`
	Rows      []SeatRowResponse `json:"rows"`
}

func toSeatMapResponse(m *booking.SeatMap) SeatMapResponse {
	resp := SeatMapResponse{
		Show:      toShowResponse(m.Show),
		Booked:    make([]string, 0, m.SoldCount),
		SoldCount: m.SoldCount,
		Available: m.Available(),
		Rows:      make([]SeatRowResponse, 0, len(m.Rows)),
	}
	for _, row := range m.Rows {
		r := SeatRowResponse{Row: row.Row, Seats: make([]string, 0, len(row.Seats)), Sold: make([]bool, 0, len(row.Seats))}
		for _, cell := range row.Seats {
			r.Seats = append(r.Seats, cell.Label)
			r.Sold = append(r.Sold, cell.Sold)
			if cell.Sold {
				resp.Booked = append(resp.Booked, cell.Label)
			}
		}
		resp.Rows = append(resp.Rows, r)
	}
	return resp
}

// GetByShow godoc
// @Summary 座席表を取得
// @Description 上映回の販売済み座席と座席表を返します。常に最新の状態を返します
// @Tags seats
// @Produce json
// @Param movie query string true "映画タイトル"
// @Param date query string true "日付 (YYYY-MM-DD)"
// @Param theatre query string true "劇場名"
// @Param time query string true "上映時刻"
// @Success 200 {object} SeatMapResponse
// @Router /seats [get]
func (h *SeatHandler) GetByShow(c echo.Context) error {
	var req ShowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	m, err := h.inventory.SeatMap(c.Request().Context(), req.key())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSeatMapResponse(m))
}
