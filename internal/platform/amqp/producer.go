// Package amqp publishes events to a RabbitMQ topic exchange.
package amqp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const DefaultRoutingKey = "membership.application.submitted"

// Channel is the subset of *amqp.Channel the producer uses.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Producer publishes JSON bodies to a durable topic exchange. A failed publish
// reopens the channel once and retries.
type Producer struct {
	mu         sync.Mutex
	conn       *amqp.Connection
	channel    Channel
	open       func() (Channel, error)
	exchange   string
	routingKey string
	declared   bool
	logger     *slog.Logger
}

type Option func(*Producer)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Producer) {
		p.logger = logger
	}
}

func WithRoutingKey(key string) Option {
	return func(p *Producer) {
		p.routingKey = key
	}
}

// Dial connects to amqpURL and opens a channel.
func Dial(amqpURL, exchange string, opts ...Option) (*Producer, error) {
	cleanURL, err := sanitizeURL(amqpURL)
	if err != nil {
		return nil, err
	}
	conn, err := amqp.DialConfig(cleanURL, amqp.Config{Dial: amqp.DefaultDial(10 * time.Second)})
	if err != nil {
		return nil, fmt.Errorf("amqp: dial: %w", err)
	}
	p, err := NewWithChannelOpener(func() (Channel, error) { return conn.Channel() }, exchange, opts...)
	if err != nil {
		conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

// NewWithChannelOpener builds a producer over an arbitrary channel source.
func NewWithChannelOpener(open func() (Channel, error), exchange string, opts ...Option) (*Producer, error) {
	if exchange == "" {
		return nil, errors.New("amqp: exchange is required")
	}
	ch, err := open()
	if err != nil {
		return nil, fmt.Errorf("amqp: open channel: %w", err)
	}
	p := &Producer{
		channel:    ch,
		open:       open,
		exchange:   exchange,
		routingKey: DefaultRoutingKey,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Publish sends body with key as the message id.
func (p *Producer) Publish(ctx context.Context, key string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.publish(ctx, key, body)
	if err == nil {
		return nil
	}
	if p.logger != nil {
		p.logger.WarnContext(ctx, "amqp publish failed, reopening channel",
			"exchange", p.exchange,
			"error", err,
		)
	}
	ch, chErr := p.open()
	if chErr != nil {
		return fmt.Errorf("amqp: publish: %w", errors.Join(err, chErr))
	}
	_ = p.channel.Close()
	p.channel = ch
	p.declared = false
	if err := p.publish(ctx, key, body); err != nil {
		return fmt.Errorf("amqp: publish after reopen: %w", err)
	}
	return nil
}

func (p *Producer) publish(ctx context.Context, key string, body []byte) error {
	if !p.declared {
		if err := p.channel.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
			return err
		}
		p.declared = true
	}
	return p.channel.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    key,
		Timestamp:    time.Now(),
		Body:         body,
	})
}

func (p *Producer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

func sanitizeURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), "\"'")
	u, err := url.Parse(clean)
	if err != nil {
		return "", fmt.Errorf("amqp: parse url: %w", err)
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("amqp: scheme must be amqp:// or amqps://")
	}
	return clean, nil
}
