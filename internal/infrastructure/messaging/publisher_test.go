package messaging

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogPublisher(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	p := NewLogPublisher(zap.New(core))

	if err := p.Publish(context.Background(), "laundry.dayrun.completed", []byte(`{"run_date":"2026-10-16"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := logs.FilterField(zap.String("subject", "laundry.dayrun.completed")).All()
	if len(entries) != 1 {
		t.Fatalf("expected one logged event, got %d", len(entries))
	}
}

func TestNewNATSPublisher_Unreachable(t *testing.T) {
	if _, err := NewNATSPublisher("nats://127.0.0.1:1", nil); err == nil {
		t.Fatalf("expected connection error")
	}
}
