package booking

import (
	"strconv"
	"strings"
)

// 座席グリッド（全劇場共通、8行×7列）
const (
	RowLetters = "ABCDEFGH"
	Columns    = 7
)

// ParseSeatLabel は "C4" のような座席ラベルを行と列に分解する
func ParseSeatLabel(label string) (row byte, col int, err error) {
	if len(label) != 2 {
		return 0, 0, ErrInvalidSeatLabel
	}
	row = label[0]
	if strings.IndexByte(RowLetters, row) < 0 {
		return 0, 0, ErrInvalidSeatLabel
	}
	if label[1] < '1' || label[1] > '0'+Columns {
		return 0, 0, ErrInvalidSeatLabel
	}
	col = int(label[1] - '0')
	return row, col, nil
}

// SeatLabel は行と列から座席ラベルを組み立てる
func SeatLabel(row byte, col int) string {
	return string(row) + strconv.Itoa(col)
}

// NormalizeSeatLabels は座席ラベルを検証し、入力順を保ったまま重複を取り除く
func NormalizeSeatLabels(labels []string) ([]string, error) {
	if len(labels) == 0 {
		return nil, ErrSeatsRequired
	}
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if _, _, err := ParseSeatLabel(l); err != nil {
			return nil, err
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out, nil
}

// Difference は requested のうち accepted に含まれないものを入力順で返す
func Difference(requested, accepted []string) []string {
	ok := make(map[string]struct{}, len(accepted))
	for _, a := range accepted {
		ok[a] = struct{}{}
	}
	var rest []string
	for _, r := range requested {
		if _, found := ok[r]; !found {
			rest = append(rest, r)
		}
	}
	return rest
}
