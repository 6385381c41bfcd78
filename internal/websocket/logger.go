package websocket

import (
	"chatapp/pkg/logger"

	"go.uber.org/zap"
)

// Logger provides structured logging for WebSocket events
type Logger struct {
	logger *zap.Logger
}

// NewLogger creates a new WebSocket logger
func NewLogger(l *logger.Logger) *Logger {
	base := zap.L()
	if l != nil {
		base = l.Logger
	}
	return &Logger{
		logger: base.With(zap.String("component", "websocket")),
	}
}

// Info logs info level event
func (l *Logger) Info(event string, sessionID string, fields ...zap.Field) {
	allFields := append([]zap.Field{
		zap.String("event", event),
		zap.String("session_id", sessionID),
	}, fields...)
	l.logger.Info("websocket_event", allFields...)
}

// Error logs error level event
func (l *Logger) Error(event string, sessionID string, err error, fields ...zap.Field) {
	allFields := append([]zap.Field{
		zap.String("event", event),
		zap.String("session_id", sessionID),
		zap.Error(err),
	}, fields...)
	l.logger.Error("websocket_error", allFields...)
}

// Warn logs warning level event
func (l *Logger) Warn(event string, sessionID string, fields ...zap.Field) {
	allFields := append([]zap.Field{
		zap.String("event", event),
		zap.String("session_id", sessionID),
	}, fields...)
	l.logger.Warn("websocket_warning", allFields...)
}
