package weather

import (
	"context"
	"log/slog"
)

const (
	OpGeocode = "geocode"
	OpCurrent = "current"
	OpFetch   = "fetch"
)

// CallEvent records metadata about one provider call.
type CallEvent struct {
	Operation string
	Pincode   string
	Location  string
	LatencyMs int64
	Cached    bool
	Success   bool
	ErrorCode string
}

// Observer receives events about weather calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to a slog.Logger.
type LogObserver struct {
	logger *slog.Logger
}

func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	level := slog.LevelInfo
	attrs := []slog.Attr{
		slog.String("operation", event.Operation),
		slog.String("pincode", event.Pincode),
		slog.Int64("latency_ms", event.LatencyMs),
		slog.Bool("cached", event.Cached),
		slog.Bool("success", event.Success),
	}
	if event.Location != "" {
		attrs = append(attrs, slog.String("location", event.Location))
	}
	if !event.Success {
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error_code", event.ErrorCode))
	}
	o.logger.LogAttrs(context.Background(), level, "weather_call", attrs...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
