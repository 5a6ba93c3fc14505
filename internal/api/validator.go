package api

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var seatLabelPattern = regexp.MustCompile(`^[A-H][1-7]$`)

// CustomValidator はEcho用のカスタムバリデーター
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator は新しいバリデーターを作成する。
// 座席ラベル用に seat タグ（A〜H の行と 1〜7 の列）を登録する
func NewValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("seat", func(fl validator.FieldLevel) bool {
		return seatLabelPattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	return &CustomValidator{validator: v}
}

// Validate はリクエストのバリデーションを実行する
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
