package messaging

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"laundry_dispatch/internal/usecase/interfaces"
)

// NATSPublisher publishes domain events as core NATS messages.
type NATSPublisher struct {
	conn   *nats.Conn
	logger *zap.Logger
}

var _ interfaces.IEventPublisher = (*NATSPublisher)(nil)

func NewNATSPublisher(url string, logger *zap.Logger) (*NATSPublisher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	conn, err := nats.Connect(url,
		nats.Name("laundry-dispatch"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("[events][nats] disconnected", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("[events][nats] reconnected", zap.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	logger.Info("[events][nats] connected", zap.String("url", conn.ConnectedUrl()))
	return &NATSPublisher{conn: conn, logger: logger}, nil
}

func (p *NATSPublisher) Publish(_ context.Context, subject string, payload []byte) error {
	if err := p.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	p.logger.Debug("[events][nats] published", zap.String("subject", subject), zap.Int("bytes", len(payload)))
	return nil
}

// Close flushes pending messages before closing the connection.
func (p *NATSPublisher) Close() error {
	err := p.conn.Drain()
	if err != nil {
		p.conn.Close()
	}
	return err
}

// LogPublisher writes events to the logger. It is used when no NATS url is configured
// and by the planner CLI.
type LogPublisher struct {
	logger *zap.Logger
}

var _ interfaces.IEventPublisher = (*LogPublisher)(nil)

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, subject string, payload []byte) error {
	p.logger.Info("[events][log] event", zap.String("subject", subject), zap.ByteString("payload", payload))
	return nil
}

func (p *LogPublisher) Close() error { return nil }
