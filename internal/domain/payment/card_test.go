package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCard() CardDetails {
	return CardDetails{
		Email:       "a@x.com",
		Phone:       "0771234567",
		CardNumber:  "4111111111114242",
		NameOnCard:  "A Perera",
		ExpiryMonth: "08",
		ExpiryYear:  "27",
		CVV:         "123",
	}
}

func TestCardDetails_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *CardDetails)
		expectedErr error
	}{
		{"正常", func(c *CardDetails) {}, nil},
		{"メールが空", func(c *CardDetails) { c.Email = "" }, ErrInvalidEmail},
		{"メールに@がない", func(c *CardDetails) { c.Email = "ax.com" }, ErrInvalidEmail},
		{"電話番号が9桁", func(c *CardDetails) { c.Phone = "077123456" }, ErrInvalidPhone},
		{"電話番号に文字", func(c *CardDetails) { c.Phone = "07712345ab" }, ErrInvalidPhone},
		{"カード番号が15桁", func(c *CardDetails) { c.CardNumber = "411111111111424" }, ErrInvalidCardNumber},
		{"名義なし", func(c *CardDetails) { c.NameOnCard = " " }, ErrNameOnCardRequired},
		{"有効期限の年なし", func(c *CardDetails) { c.ExpiryYear = "" }, ErrExpiryRequired},
		{"有効期限の月が13", func(c *CardDetails) { c.ExpiryMonth = "13" }, ErrInvalidExpiryMonth},
		{"有効期限の月が0", func(c *CardDetails) { c.ExpiryMonth = "00" }, ErrInvalidExpiryMonth},
		{"CVVが4桁", func(c *CardDetails) { c.CVV = "1234" }, ErrInvalidCVV},
		{"最初の不備が返る", func(c *CardDetails) { c.Phone = ""; c.CVV = "" }, ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCard()
			tt.mutate(&c)
			err := c.Validate()
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCardDetails_Buyer(t *testing.T) {
	b := validCard().Buyer()

	assert.Equal(t, "4242", b.CardLast4)
	assert.Equal(t, "a@x.com", b.Email)
	assert.Equal(t, "A Perera", b.NameOnCard)
}

func TestCardDetails_String(t *testing.T) {
	s := validCard().String()

	assert.NotContains(t, s, "4111111111114242")
	assert.NotContains(t, s, "123")
	assert.Contains(t, s, "****4242")
}
