package editor

import (
	"context"
	"io"
	"log/slog"
)

// Event names reported to an Observer.
const (
	EventGridDrawn       = "grid_drawn"
	EventCardSpawned     = "card_spawned"
	EventCardMoved       = "card_moved"
	EventCardDeleted     = "card_deleted"
	EventCardRemoved     = "card_removed"
	EventDropIgnored     = "drop_ignored"
	EventTemplateApplied = "template_applied"
	EventJourneyCleared  = "journey_cleared"
	EventSessionDisposed = "session_disposed"
)

// Event captures one editor state change.
type Event struct {
	Name   string
	CardID string
	Fields map[string]any
}

// Observer receives editor events for logging.
type Observer interface {
	ObserveEditor(ctx context.Context, event Event)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveEditor(context.Context, Event) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes editor events to w as slog text records at or above
// level. A nil writer yields a NoopObserver.
func NewLogObserver(w io.Writer, level slog.Level) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

func (o *logObserver) ObserveEditor(ctx context.Context, event Event) {
	attrs := make([]any, 0, 2+len(event.Fields)*2)
	if event.CardID != "" {
		attrs = append(attrs, "card_id", event.CardID)
	}
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	switch event.Name {
	case EventDropIgnored:
		o.logger.DebugContext(ctx, event.Name, attrs...)
	default:
		o.logger.InfoContext(ctx, event.Name, attrs...)
	}
}
