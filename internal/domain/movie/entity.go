package movie

import "strings"

// Category は映画の公開区分
type Category string

const (
	CategoryNow      Category = "now"
	CategoryUpcoming Category = "upcoming"
)

// IsValid は区分が定義済みの値かを返す
func (c Category) IsValid() bool {
	return c == CategoryNow || c == CategoryUpcoming
}

// Movie はカタログ上の映画。タイトルで予約と紐づく
type Movie struct {
	ID       int64
	Title    string
	Language string
	Category Category
}

// NewMovie は入力を整えて映画を作成する
func NewMovie(title, language string, category Category) (*Movie, error) {
	m := &Movie{
		Title:    strings.TrimSpace(title),
		Language: strings.TrimSpace(language),
		Category: Category(strings.ToLower(strings.TrimSpace(string(category)))),
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate は映画の必須項目を検証する
func (m *Movie) Validate() error {
	if m.Title == "" {
		return ErrTitleRequired
	}
	if m.Language == "" {
		return ErrLanguageRequired
	}
	if !m.Category.IsValid() {
		return ErrInvalidCategory
	}
	return nil
}
