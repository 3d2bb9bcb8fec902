package telemetry

import (
	"context"
	"log/slog"

	"tracker/config"
	"tracker/internal/domain/service"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

const natsPendingMessages = 256

type natsSource struct {
	conn    *nats.Conn
	subject string
	queue   string
	logger  *slog.Logger
}

// NewNATSSource connects to NATS; the subscription is created by Consume
func NewNATSSource(cfg config.NATSConfig, name string, logger *slog.Logger) (service.TelemetrySource, error) {
	conn, err := nats.Connect(cfg.URL,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("NATS disconnected", slog.Any("error", err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", slog.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to nats at %s", cfg.URL)
	}

	return &natsSource{
		conn:    conn,
		subject: cfg.Subject,
		queue:   cfg.Queue,
		logger:  logger,
	}, nil
}

// Consume subscribes to the configured subject, joining the queue group when set
func (s *natsSource) Consume(ctx context.Context, handler service.TelemetryHandler) error {
	msgs := make(chan *nats.Msg, natsPendingMessages)

	var sub *nats.Subscription
	var err error
	if s.queue != "" {
		sub, err = s.conn.ChanQueueSubscribe(s.subject, s.queue, msgs)
	} else {
		sub, err = s.conn.ChanSubscribe(s.subject, msgs)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to subscribe to %s", s.subject)
	}
	defer func() {
		if err := sub.Unsubscribe(); err != nil && !errors.Is(err, nats.ErrConnectionClosed) {
			s.logger.Warn("Failed to unsubscribe", slog.String("subject", s.subject), slog.Any("error", err))
		}
	}()

	s.logger.Info("Consuming NATS telemetry", slog.String("subject", s.subject))

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg := <-msgs:
			if err := handler(ctx, fromNATSMessage(msg)); err != nil {
				s.logger.Warn("Telemetry message rejected",
					slog.String("subject", msg.Subject),
					slog.Any("error", err),
				)
			}
		}
	}
}

// Close drains pending messages before closing the connection
func (s *natsSource) Close() error {
	if s.conn == nil || s.conn.IsClosed() {
		return nil
	}
	if err := s.conn.Drain(); err != nil {
		s.conn.Close()

		return errors.WithStack(err)
	}

	return nil
}

func fromNATSMessage(msg *nats.Msg) *service.TelemetryMessage {
	out := &service.TelemetryMessage{
		Subject: msg.Subject,
		Data:    msg.Data,
	}

	if len(msg.Header) > 0 {
		out.Headers = make(map[string]string, len(msg.Header))
		for key := range msg.Header {
			out.Headers[key] = msg.Header.Get(key)
		}
		out.ID = msg.Header.Get(nats.MsgIdHdr)
	}

	return out
}
