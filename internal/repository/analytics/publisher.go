// Package analytics delivers search events to the external analytics
// collaborator over NATS. Delivery is fire-and-forget; queueing and
// backpressure policy belong to the collaborator.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/kailas-cloud/unisearch/internal/domain/search/event"
)

// Publisher emits search events to a NATS subject.
type Publisher struct {
	conn    *nats.Conn
	subject string
}

// New connects to NATS and creates a publisher.
func New(url, subject string) (*Publisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("unisearch"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return &Publisher{conn: conn, subject: subject}, nil
}

// Emit publishes one search event. The orchestrator swallows any error.
func (p *Publisher) Emit(_ context.Context, ev event.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", p.subject, err)
	}
	return nil
}

// HealthCheck reports the connection state.
func (p *Publisher) HealthCheck(_ context.Context) error {
	if !p.conn.IsConnected() {
		return fmt.Errorf("nats not connected: %s", p.conn.Status())
	}
	return nil
}

// Close drains and closes the connection.
func (p *Publisher) Close() {
	_ = p.conn.Drain()
}

// NopEmitter logs events at debug level instead of publishing. Used when no
// analytics endpoint is configured.
type NopEmitter struct {
	logger *zap.Logger
}

// NewNop creates a logging-only emitter.
func NewNop(logger *zap.Logger) *NopEmitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NopEmitter{logger: logger}
}

// Emit logs the event and drops it.
func (n *NopEmitter) Emit(_ context.Context, ev event.Event) error {
	n.logger.Debug("search event dropped (analytics disabled)",
		zap.String("event_id", ev.ID),
		zap.Int("result_count", ev.ResultCount),
	)
	return nil
}
