package logger

import (
	"github.com/ThreeDotsLabs/watermill"
	"go.uber.org/zap"
)

// WatermillAdapter は watermill のログを zap に流す
type WatermillAdapter struct {
	l *zap.Logger
}

// NewWatermillAdapter は l（nil の場合はパッケージのロガー）を使うアダプターを作成する
func NewWatermillAdapter(l *zap.Logger) *WatermillAdapter {
	if l == nil {
		l = Get()
	}
	return &WatermillAdapter{l: l.With(zap.String("component", "watermill"))}
}

func (a *WatermillAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.l.Error(msg, append(toZapFields(fields), zap.Error(err))...)
}

func (a *WatermillAdapter) Info(msg string, fields watermill.LogFields) {
	a.l.Info(msg, toZapFields(fields)...)
}

func (a *WatermillAdapter) Debug(msg string, fields watermill.LogFields) {
	a.l.Debug(msg, toZapFields(fields)...)
}

// Trace は zap に対応するレベルがないため Debug で出力する
func (a *WatermillAdapter) Trace(msg string, fields watermill.LogFields) {
	a.l.Debug(msg, append(toZapFields(fields), zap.Bool("trace", true))...)
}

func (a *WatermillAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &WatermillAdapter{l: a.l.With(toZapFields(fields)...)}
}

func toZapFields(fields watermill.LogFields) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}

var _ watermill.LoggerAdapter = (*WatermillAdapter)(nil)
