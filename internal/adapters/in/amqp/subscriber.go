// Package amqp consumes change notifications pushed by the remote backend
// and refreshes the affected requests in the read model.
package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dashboard/internal/core/application/usecases/commands"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"github.com/rabbitmq/amqp091-go"
)

const (
	OrderUpdated   = "order-updated"
	RequestUpdated = "request-updated"
)

var ErrUnknownNotification = errors.New("unknown notification type")

// Notification is the message body published on the queue.
type Notification struct {
	Type      string `json:"type"`
	RequestID string `json:"requestId,omitempty"`
	OrderID   string `json:"orderId,omitempty"`
}

type Refresher interface {
	Handle(ctx context.Context, command commands.RefreshRequestsCommand) (int, error)
}

// Subscriber reads notifications from one durable queue. Every delivery is
// acknowledged manually; malformed or failed ones are dropped, not requeued.
// A lost broker connection is redialled with exponential backoff.
type Subscriber struct {
	url       string
	queue     string
	refresher Refresher
	logger    *slog.Logger

	dial       func(url string) (*amqp091.Connection, error)
	minBackoff time.Duration
	maxBackoff time.Duration
}

func NewSubscriber(url, queue string, refresher Refresher, logger *slog.Logger) (*Subscriber, error) {
	if url == "" {
		return nil, errs.NewValueIsRequiredError("url")
	}
	if queue == "" {
		return nil, errs.NewValueIsRequiredError("queue")
	}
	if refresher == nil {
		return nil, errs.NewValueIsRequiredError("refresher")
	}
	return &Subscriber{
		url:       url,
		queue:     queue,
		refresher: refresher,
		logger:    logger.With("component", "notification_subscriber"),

		dial:       amqp091.Dial,
		minBackoff: time.Second,
		maxBackoff: 30 * time.Second,
	}, nil
}

// Run consumes until ctx is cancelled. Broker failures are logged and
// retried; they never end Run.
func (s *Subscriber) Run(ctx context.Context) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.minBackoff
	b.MaxInterval = s.maxBackoff
	b.MaxElapsedTime = 0

	err := backoff.RetryNotify(
		func() error { return s.consume(ctx, b.Reset) },
		backoff.WithContext(b, ctx),
		func(err error, wait time.Duration) {
			s.logger.WarnContext(ctx, "Notification broker unavailable", "error", err, "retry_in", wait)
		},
	)
	if ctx.Err() != nil {
		s.logger.InfoContext(ctx, "Notification subscriber stopped")
		return nil
	}
	return err
}

// consume runs one broker session. connected is called once deliveries
// start flowing. It returns nil only when ctx is cancelled.
func (s *Subscriber) consume(ctx context.Context, connected func()) error {
	conn, err := s.dial(s.url)
	if err != nil {
		return fmt.Errorf("failed to dial: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to create channel: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(
		s.queue, // name
		true,    // durable
		false,   // delete when unused
		false,   // exclusive
		false,   // no-wait
		nil,     // arguments
	); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", s.queue, err)
	}
	if err := ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("failed to set qos: %w", err)
	}

	msgs, err := ch.Consume(
		s.queue, // queue
		"",      // consumer
		false,   // auto-ack
		false,   // exclusive
		false,   // no-local
		false,   // no-wait
		nil,     // args
	)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	connected()
	s.logger.InfoContext(ctx, "Consuming notifications", "queue", s.queue)
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return errors.New("notification channel closed")
			}
			s.handle(ctx, msg)
		}
	}
}

func (s *Subscriber) handle(ctx context.Context, msg amqp091.Delivery) {
	cmd, err := decode(msg.Body)
	if err != nil {
		s.logger.WarnContext(ctx, "Dropping malformed notification", "error", err)
		s.nack(ctx, msg)
		return
	}

	refreshed, err := s.refresher.Handle(ctx, cmd)
	if err != nil {
		s.logger.ErrorContext(ctx, "Refresh after notification failed", "error", err)
		s.nack(ctx, msg)
		return
	}

	s.logger.DebugContext(ctx, "Refreshed after notification", "requests", refreshed)
	if err := msg.Ack(false); err != nil {
		s.logger.ErrorContext(ctx, "Failed to ack notification", "error", err)
	}
}

func (s *Subscriber) nack(ctx context.Context, msg amqp091.Delivery) {
	if err := msg.Nack(false, false); err != nil {
		s.logger.ErrorContext(ctx, "Failed to nack notification", "error", err)
	}
}

// decode maps a notification to the refresh it triggers. Order updates that
// do not name their request refresh the whole list.
func decode(body []byte) (commands.RefreshRequestsCommand, error) {
	var n Notification
	if err := json.Unmarshal(body, &n); err != nil {
		return commands.RefreshRequestsCommand{}, err
	}

	switch n.Type {
	case RequestUpdated, OrderUpdated:
	default:
		return commands.RefreshRequestsCommand{}, fmt.Errorf("%w: %q", ErrUnknownNotification, n.Type)
	}

	if n.RequestID == "" {
		if n.Type == RequestUpdated {
			return commands.RefreshRequestsCommand{}, errs.NewValueIsRequiredError("requestId")
		}
		return commands.NewRefreshAllRequestsCommand(), nil
	}

	id, err := kernel.NewID(n.RequestID)
	if err != nil {
		return commands.RefreshRequestsCommand{}, err
	}
	return commands.NewRefreshRequestCommand(id)
}
