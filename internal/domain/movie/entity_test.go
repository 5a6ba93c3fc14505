package movie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMovie(t *testing.T) {
	t.Run("入力を整えて作成する", func(t *testing.T) {
		m, err := NewMovie(" Thor ", "English", "NOW")
		require.NoError(t, err)
		assert.Equal(t, "Thor", m.Title)
		assert.Equal(t, CategoryNow, m.Category)
	})

	tests := []struct {
		name        string
		title       string
		language    string
		category    Category
		expectedErr error
	}{
		{"タイトルなし", "", "English", CategoryNow, ErrTitleRequired},
		{"言語なし", "Thor", " ", CategoryUpcoming, ErrLanguageRequired},
		{"区分不正", "Thor", "English", "archived", ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMovie(tt.title, tt.language, tt.category)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
