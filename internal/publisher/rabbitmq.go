package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"channel_syncer/internal/domain"
)

const (
	ActionVideoCreated  = "video.created"
	ActionChannelSynced = "channel.synced"
)

// RabbitMQ publishes sync events to a durable direct exchange. The AMQP
// channel is shared, so publishes are serialized.
type RabbitMQ struct {
	mu         sync.Mutex
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
	now        func() time.Time
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
		now:        time.Now,
	}, nil
}

// Message is the envelope of every event. Exactly one of Video and Channel is set.
type Message struct {
	Action    string                `json:"action"`
	Video     *domain.Video         `json:"video,omitempty"`
	Channel   *domain.ChannelResult `json:"channel,omitempty"`
	Timestamp time.Time             `json:"timestamp"`
}

// PublishVideo announces a video stored for the first time.
func (r *RabbitMQ) PublishVideo(ctx context.Context, video *domain.Video) error {
	msg := Message{
		Action:    ActionVideoCreated,
		Video:     video,
		Timestamp: r.now().UTC(),
	}
	if err := r.publish(ctx, msg); err != nil {
		return err
	}

	r.logger.Debug("published video", "video_id", video.ID)
	return nil
}

// PublishChannelSynced announces the summary of a completed channel pass.
func (r *RabbitMQ) PublishChannelSynced(ctx context.Context, result *domain.ChannelResult) error {
	msg := Message{
		Action:    ActionChannelSynced,
		Channel:   result,
		Timestamp: r.now().UTC(),
	}
	if err := r.publish(ctx, msg); err != nil {
		return err
	}

	r.logger.Debug("published channel summary", "channel_id", result.ChannelID)
	return nil
}

func (r *RabbitMQ) publish(ctx context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Type:         msg.Action,
			Body:         body,
			Timestamp:    msg.Timestamp,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", msg.Action, err)
	}
	return nil
}

func (r *RabbitMQ) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
