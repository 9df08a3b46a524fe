package sinks

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/default-user/world-engine/logging"
)

// Console writes events as structured log lines through a zap.Logger.
type Console struct {
	logger *zap.Logger
}

// NewConsole constructs a Console sink writing to w.
func NewConsole(w io.Writer) *Console {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), zapcore.DebugLevel)
	return &Console{logger: zap.New(core)}
}

// Write implements logging.Sink.
func (s *Console) Write(event logging.Event) error {
	if s.logger == nil {
		return nil
	}
	fields := []zap.Field{
		zap.Uint64("tick", event.Tick),
		zap.String("category", string(event.Category)),
		zap.String("actor", formatEntity(event.Actor)),
		zap.String("traceID", event.TraceID),
	}
	if targets := formatTargets(event.Targets); targets != "" {
		fields = append(fields, zap.String("targets", targets))
	}
	if event.Payload != nil {
		fields = append(fields, zap.Any("payload", event.Payload))
	}
	for k, v := range event.Extra {
		fields = append(fields, zap.Any(k, v))
	}

	msg := string(event.Type)
	switch event.Severity {
	case logging.SeverityDebug:
		s.logger.Debug(msg, fields...)
	case logging.SeverityInfo:
		s.logger.Info(msg, fields...)
	case logging.SeverityWarn:
		s.logger.Warn(msg, fields...)
	default:
		s.logger.Error(msg, fields...)
	}
	return nil
}

// Close implements logging.Sink.
func (s *Console) Close(context.Context) error {
	return s.logger.Sync()
}

func formatEntity(ref logging.EntityRef) string {
	if ref.ID == "" {
		return string(ref.Kind)
	}
	if ref.Kind == "" {
		return ref.ID
	}
	return fmt.Sprintf("%s:%s", ref.Kind, ref.ID)
}

func formatTargets(targets []logging.EntityRef) string {
	if len(targets) == 0 {
		return ""
	}
	parts := make([]string, 0, len(targets))
	for _, target := range targets {
		parts = append(parts, formatEntity(target))
	}
	return strings.Join(parts, ",")
}
