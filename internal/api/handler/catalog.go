package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-cinema-booking/internal/application"
	"github.com/sanosuguru/go-cinema-booking/internal/domain/movie"
)

type CatalogHandler struct {
	service CatalogServiceInterface
}

func NewCatalogHandler(s CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: s}
}

type AddMovieRequest struct {
	Title    string `json:"title" validate:"required" example:"Avengers"`
	Language string `json:"language" validate:"required" example:"English"`
	Category string `json:"category" validate:"required" example:"now"`
}

type MovieResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Language string `json:"language"`
	Category string `json:"category"`
}

func toMovieResponse(m *movie.Movie) MovieResponse {
	return MovieResponse{ID: m.ID, Title: m.Title, Language: m.Language, Category: string(m.Category)}
}

type MovieExistsRequest struct {
	Title string `query:"title" validate:"required"`
}

type MovieExistsResponse struct {
	Title  string `json:"title"`
	Exists bool   `json:"exists"`
}

type CompactResponse struct {
	Removed int64 `json:"removed"`
}

// AddMovie godoc
// @Summary 映画を登録
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body AddMovieRequest true "映画情報"
// @Success 201 {object} MovieResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 409 {object} api.ErrorResponse "同一タイトルが登録済み"
// @Router /catalog/movies [post]
func (h *CatalogHandler) AddMovie(c echo.Context) error {
	var req AddMovieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	m, err := h.service.AddMovie(c.Request().Context(), application.AddMovieInput{
		Title: req.Title, Language: req.Language, Category: req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toMovieResponse(m))
}

// Exists godoc
// @Summary タイトルの有無（大文字小文字を区別しない）
// @Tags catalog
// @Produce json
// @Param title query string true "タイトル"
// @Success 200 {object} MovieExistsResponse
// @Router /catalog/movies/exists [get]
func (h *CatalogHandler) Exists(c echo.Context) error {
	var req MovieExistsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	exists, err := h.service.ExistsByTitle(c.Request().Context(), req.Title)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MovieExistsResponse{Title: req.Title, Exists: exists})
}

// Compact godoc
// @Summary 重複タイトルを整理
// @Description タイトル（大文字小文字を区別しない）ごとに最小IDの行だけを残します
// @Tags catalog
// @Produce json
// @Success 200 {object} CompactResponse
// @Router /catalog/compact [post]
func (h *CatalogHandler) Compact(c echo.Context) error {
	removed, err := h.service.CompactDuplicateTitles(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, CompactResponse{Removed: removed})
}
