// Package apperror はドメイン横断のエラー種別を定義する。
// 各ドメインの番兵エラーはいずれかの種別をラップし、
// 上位層は errors.Is で種別を判定する。
package apperror

import (
	"errors"
	"fmt"
)

// エラー種別
var (
	// ErrValidation は書き込み前に検出される入力不備
	ErrValidation = errors.New("入力値が不正です")
	// ErrNotFound は対象が存在しない
	ErrNotFound = errors.New("対象が見つかりません")
	// ErrConflict は他の操作との競合
	ErrConflict = errors.New("競合が発生しました")
	// ErrStorage は接続・トランザクションなどストレージ層の失敗
	ErrStorage = errors.New("ストレージ操作に失敗しました")
)

// Error は種別付きのドメインエラー
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Unwrap は種別を返す
func (e *Error) Unwrap() error { return e.Kind }

// Validation は入力検証エラーを作成する
func Validation(msg string) error { return &Error{Kind: ErrValidation, Msg: msg} }

// NotFound は存在しないことを表すエラーを作成する
func NotFound(msg string) error { return &Error{Kind: ErrNotFound, Msg: msg} }

// Conflict は競合エラーを作成する
func Conflict(msg string) error { return &Error{Kind: ErrConflict, Msg: msg} }

// Storage はドライバーのエラーをストレージ種別でラップする
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}

// IsValidation は入力検証エラーかを返す
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsStorage はストレージエラーかを返す
func IsStorage(err error) bool { return errors.Is(err, ErrStorage) }
