package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type ScheduleHandler struct {
	seeder    SeederServiceInterface
	inventory InventoryServiceInterface
}

func NewScheduleHandler(seeder SeederServiceInterface, inventory InventoryServiceInterface) *ScheduleHandler {
	return &ScheduleHandler{seeder: seeder, inventory: inventory}
}

type EnsureScheduleRequest struct {
	Movie string `json:"movie" validate:"required" example:"Avengers"`
	Date  string `json:"date" validate:"required,datetime=2006-01-02" example:"2025-01-10"`
}

type EnsureScheduleResponse struct {
	Movie    string `json:"movie"`
	Date     string `json:"date"`
	Inserted int    `json:"inserted"`
}

type TheatresRequest struct {
	Movie string `query:"movie" validate:"required"`
	Date  string `query:"date" validate:"required,datetime=2006-01-02"`
}

type ShowTimesRequest struct {
	Movie   string `query:"movie" validate:"required"`
	Date    string `query:"date" validate:"required,datetime=2006-01-02"`
	Theatre string `query:"theatre" validate:"required"`
}

// Ensure godoc
// @Summary 上映回を作成
// @Description (映画, 日付) の上映回を全劇場・全上映枠に作成します（冪等）
// @Tags schedules
// @Accept json
// @Produce json
// @Param request body EnsureScheduleRequest true "映画と日付"
// @Success 200 {object} EnsureScheduleResponse
// @Failure 400 {object} api.ErrorResponse
// @Router /schedules [post]
func (h *ScheduleHandler) Ensure(c echo.Context) error {
	var req EnsureScheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	inserted, err := h.seeder.EnsureShowsForMovieDate(c.Request().Context(), req.Movie, req.Date)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, EnsureScheduleResponse{Movie: req.Movie, Date: req.Date, Inserted: inserted})
}

// Theatres godoc
// @Summary 上映劇場一覧
// @Tags schedules
// @Produce json
// @Param movie query string true "映画タイトル"
// @Param date query string true "日付 (YYYY-MM-DD)"
// @Success 200 {array} string
// @Router /theatres [get]
func (h *ScheduleHandler) Theatres(c echo.Context) error {
	var req TheatresRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	theatres, err := h.inventory.TheatresForMovieDate(c.Request().Context(), req.Movie, req.Date)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, theatres)
}

// ShowTimes godoc
// @Summary 上映時刻一覧
// @Tags schedules
// @Produce json
// @Param movie query string true "映画タイトル"
// @Param date query string true "日付 (YYYY-MM-DD)"
// @Param theatre query string true "劇場名"
// @Success 200 {array} string
// @Router /showtimes [get]
func (h *ScheduleHandler) ShowTimes(c echo.Context) error {
	var req ShowTimesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	times, err := h.inventory.ShowTimesFor(c.Request().Context(), req.Movie, req.Date, req.Theatre)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, times)
}
