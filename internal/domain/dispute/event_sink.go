package dispute

import (
	"context"
	"encoding/json"
	"time"

	"disputeresolver/pkg/logger"
)

//go:generate mockgen -source event_sink.go -destination mock_event_sink.go -package dispute

// EventSink records dispute lifecycle events for audit and search.
type EventSink interface {
	CreateDisputeEvent(ctx context.Context, event NewDisputeEvent) error
	GetDisputeEvents(ctx context.Context, disputeID int64) ([]DisputeEvent, error)
}

// DisputeEvent is a stored lifecycle event.
type DisputeEvent struct {
	EventID string `json:"event_id"`
	NewDisputeEvent
}

// NewDisputeEvent is a lifecycle event before the sink assigns its ID.
type NewDisputeEvent struct {
	DisputeID int64           `json:"dispute_id"`
	Kind      DisputeEventKind `json:"kind"`
	Data      json.RawMessage `json:"data,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// DisputeEventKind classifies lifecycle events.
type DisputeEventKind string

const (
	DisputeEventFiled        DisputeEventKind = "filed"
	DisputeEventAutoApproved DisputeEventKind = "auto_approved"
)

// LogEventSink is the fallback sink used when no search backend is
// configured: events are logged and reads return nothing.
type LogEventSink struct {
	l *logger.Logger
}

// NewLogEventSink creates a logging-only event sink.
func NewLogEventSink(l *logger.Logger) *LogEventSink {
	return &LogEventSink{l: l}
}

func (s *LogEventSink) CreateDisputeEvent(_ context.Context, event NewDisputeEvent) error {
	s.l.Info("dispute event: dispute_id=%d kind=%s", event.DisputeID, event.Kind)
	return nil
}

func (s *LogEventSink) GetDisputeEvents(context.Context, int64) ([]DisputeEvent, error) {
	return nil, nil
}
