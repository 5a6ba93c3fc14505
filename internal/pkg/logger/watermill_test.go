package logger

import (
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWatermillAdapter(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	adapter := NewWatermillAdapter(zap.New(core))

	adapter.Info("subscribed", watermill.LogFields{"topic": "payment_recorded"})
	adapter.Error("handler failed", errors.New("boom"), nil)
	adapter.Trace("polling", nil)
	adapter.With(watermill.LogFields{"handler": "issue_receipt"}).Debug("handled", nil)

	entries := logs.All()
	require.Len(t, entries, 4)

	assert.Equal(t, "subscribed", entries[0].Message)
	assert.Equal(t, "payment_recorded", entries[0].ContextMap()["topic"])
	assert.Equal(t, "watermill", entries[0].ContextMap()["component"])

	assert.Equal(t, zap.ErrorLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])

	assert.Equal(t, zap.DebugLevel, entries[2].Level)
	assert.Equal(t, true, entries[2].ContextMap()["trace"])

	assert.Equal(t, "issue_receipt", entries[3].ContextMap()["handler"])
}

func TestNewWatermillAdapter_DefaultLogger(t *testing.T) {
	adapter := NewWatermillAdapter(nil)
	require.NotNil(t, adapter)

	assert.NotPanics(t, func() {
		adapter.Info("test", nil)
	})
}
