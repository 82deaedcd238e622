package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/tasks-management/reminder-engine/internal/observability/tracing"
)

type NATSPublisher struct {
	publisher message.Publisher
	logger    watermill.LoggerAdapter
}

type NATSPublisherConfig struct {
	URL string
}

func NewNATSPublisher(cfg NATSPublisherConfig) (*NATSPublisher, error) {
	logger := watermill.NewSlogLogger(slog.Default())

	publisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:         cfg.URL,
			NatsOptions: []nc.Option{nc.Timeout(10 * time.Second)},
			JetStream: nats.JetStreamConfig{
				Disabled:       false,
				AutoProvision:  true,
				ConnectOptions: nil,
				PublishOptions: nil,
				TrackMsgId:     false,
				AckAsync:       false,
				DurablePrefix:  "",
			},
			Marshaler: &nats.NATSMarshaler{},
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	return &NATSPublisher{
		publisher: publisher,
		logger:    logger,
	}, nil
}

func NewNATSPublisherWithStream(ctx context.Context, cfg NATSPublisherConfig) (*NATSPublisher, error) {
	logger := watermill.NewSlogLogger(slog.Default())

	conn, err := nc.Connect(cfg.URL, nc.Timeout(10*time.Second))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	defer conn.Close()

	js, err := jetstream.New(conn)
	if err != nil {
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	streamName := "NOTIFICATION_EVENTS"

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        streamName,
		Description: "Stream for task notification events",
		Subjects:    []string{TopicNotificationSchedule, TopicNotificationCancel},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      24 * time.Hour,
		MaxBytes:    100 * 1024 * 1024, // 100MB
		Storage:     jetstream.FileStorage,
		Replicas:    1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create stream: %w", err)
	}

	slog.Info("NATS JetStream stream configured",
		slog.String("stream", streamName),
		slog.String("subjects", TopicNotificationSchedule+","+TopicNotificationCancel),
	)

	publisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:         cfg.URL,
			NatsOptions: []nc.Option{nc.Timeout(10 * time.Second)},
			JetStream: nats.JetStreamConfig{
				Disabled:      false,
				AutoProvision: false,
			},
			Marshaler: &nats.NATSMarshaler{},
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	return &NATSPublisher{
		publisher: publisher,
		logger:    logger,
	}, nil
}

func (p *NATSPublisher) PublishNotificationSchedule(ctx context.Context, event *NotificationScheduleEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_type", "notification.schedule")
	msg.Metadata.Set("task_id", event.TaskID)
	injectTraceContext(ctx, msg)

	if err := p.publisher.Publish(TopicNotificationSchedule, msg); err != nil {
		slog.Error("failed to publish notification schedule event",
			slog.String("task_id", event.TaskID),
			slog.String("error", err.Error()),
		)

		return fmt.Errorf("failed to publish event: %w", err)
	}

	slog.Debug("published notification schedule event",
		slog.String("task_id", event.TaskID),
		slog.String("message_id", msg.UUID),
	)

	return nil
}

func (p *NATSPublisher) PublishNotificationCancel(ctx context.Context, event *NotificationCancelEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_type", "notification.cancel")
	msg.Metadata.Set("task_id", event.TaskID)
	msg.Metadata.Set("reason", event.Reason)
	injectTraceContext(ctx, msg)

	if err := p.publisher.Publish(TopicNotificationCancel, msg); err != nil {
		slog.Error("failed to publish notification cancel event",
			slog.String("task_id", event.TaskID),
			slog.String("error", err.Error()),
		)

		return fmt.Errorf("failed to publish event: %w", err)
	}

	slog.Debug("published notification cancel event",
		slog.String("task_id", event.TaskID),
		slog.String("message_id", msg.UUID),
	)

	return nil
}

func injectTraceContext(ctx context.Context, msg *message.Message) {
	carrier := make(map[string]string)
	tracing.InjectToMap(ctx, carrier)

	for k, v := range carrier {
		msg.Metadata.Set(k, v)
	}
}

func (p *NATSPublisher) Close() error {
	return p.publisher.Close()
}
