package booking

import "github.com/sanosuguru/go-cinema-booking/internal/domain/show"

// SeatCell は座席表の1セル
type SeatCell struct {
	Label string
	Sold  bool
}

// SeatRow は座席表の1行
type SeatRow struct {
	Row   string
	Seats []SeatCell
}

// SeatMap は上映回の座席表
type SeatMap struct {
	Show      show.Key
	Rows      []SeatRow
	SoldCount int
}

// NewSeatMap は販売済み座席から座席表を組み立てる。
// グリッド外のラベルは無視する
func NewSeatMap(key show.Key, sold []string) *SeatMap {
	soldSet := make(map[string]struct{}, len(sold))
	for _, s := range sold {
		soldSet[s] = struct{}{}
	}
	m := &SeatMap{Show: key, Rows: make([]SeatRow, 0, len(RowLetters))}
	for i := 0; i < len(RowLetters); i++ {
		row := SeatRow{Row: string(RowLetters[i]), Seats: make([]SeatCell, 0, Columns)}
		for c := 1; c <= Columns; c++ {
			label := SeatLabel(RowLetters[i], c)
			_, isSold := soldSet[label]
			if isSold {
				m.SoldCount++
			}
			row.Seats = append(row.Seats, SeatCell{Label: label, Sold: isSold})
		}
		m.Rows = append(m.Rows, row)
	}
	return m
}

// Available は空席数を返す
func (m *SeatMap) Available() int {
	return len(RowLetters)*Columns - m.SoldCount
}
