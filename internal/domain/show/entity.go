package show

import (
	"strings"
	"time"
)

// DateLayout は日付キーの書式（ISO 8601）
const DateLayout = "2006-01-02"

// DefaultTimeSlots は各劇場に作成する上映枠（順序付き）。
// 表示順は文字列の昇順になるため、書式を揃えておく必要がある
func DefaultTimeSlots() []string {
	return []string{"10:00 AM", "01:30 PM", "06:00 PM", "09:00 PM"}
}

// Key は上映回（映画・日付・劇場・時刻）を一意に識別する
type Key struct {
	Movie   string
	Date    string
	Theatre string
	Time    string
}

// Validate はキーの各要素を検証する
func (k Key) Validate() error {
	if err := ValidateMovieDate(k.Movie, k.Date); err != nil {
		return err
	}
	if strings.TrimSpace(k.Theatre) == "" {
		return ErrTheatreRequired
	}
	if strings.TrimSpace(k.Time) == "" {
		return ErrTimeRequired
	}
	return nil
}

// String はロックやログで使うキー表現を返す
func (k Key) String() string {
	return k.Movie + "|" + k.Date + "|" + k.Theatre + "|" + k.Time
}

// ValidateMovieDate は映画タイトルと日付を検証する
func ValidateMovieDate(movie, date string) error {
	if strings.TrimSpace(movie) == "" {
		return ErrMovieRequired
	}
	return ValidateDate(date)
}

// ValidateDate は日付が YYYY-MM-DD 形式かを検証する
func ValidateDate(date string) error {
	if date == "" {
		return ErrDateRequired
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// ValidateTimeSlots はシード用の上映枠一覧を検証する
func ValidateTimeSlots(slots []string) error {
	if len(slots) == 0 {
		return ErrTimeSlotsEmpty
	}
	seen := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		if strings.TrimSpace(s) == "" {
			return ErrTimeRequired
		}
		if _, ok := seen[s]; ok {
			return ErrDuplicateTimeSlot
		}
		seen[s] = struct{}{}
	}
	return nil
}
