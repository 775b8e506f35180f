package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const (
	ViewEventExchange = "view_events"
	LikeEventExchange = "like_events"
	ViewEventQueue    = "view_event_queue"
	LikeEventQueue    = "like_event_queue"
)

type Producer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewProducer(rabbitmqURL string) (*Producer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	producer := &Producer{
		conn:    conn,
		channel: ch,
	}

	if err := producer.setupTopology(); err != nil {
		producer.Close()
		return nil, fmt.Errorf("failed to setup topology: %w", err)
	}

	return producer, nil
}

func (p *Producer) setupTopology() error {
	for _, pair := range []struct {
		exchange string
		queue    string
	}{
		{ViewEventExchange, ViewEventQueue},
		{LikeEventExchange, LikeEventQueue},
	} {
		err := p.channel.ExchangeDeclare(
			pair.exchange,
			"direct",
			true,  // durable
			false, // auto-delete
			false, // internal
			false, // no-wait
			nil,   // arguments
		)
		if err != nil {
			return fmt.Errorf("failed to declare exchange %s: %w", pair.exchange, err)
		}

		queue, err := p.channel.QueueDeclare(
			pair.queue,
			true,  // durable
			false, // auto-delete
			false, // exclusive
			false, // no-wait
			nil,
		)
		if err != nil {
			return fmt.Errorf("failed to declare queue %s: %w", pair.queue, err)
		}

		if err := p.channel.QueueBind(queue.Name, pair.queue, pair.exchange, false, nil); err != nil {
			return fmt.Errorf("failed to bind queue %s: %w", pair.queue, err)
		}
	}
	return nil
}

func (p *Producer) publish(ctx context.Context, exchange, routingKey string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return p.channel.PublishWithContext(ctx, exchange, routingKey, false, false,
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
		})
}

func (p *Producer) PublishViewEvent(ctx context.Context, event *ViewEvent) error {
	return p.publish(ctx, ViewEventExchange, ViewEventQueue, event)
}

func (p *Producer) PublishLikeEvent(ctx context.Context, event *LikeEvent) error {
	return p.publish(ctx, LikeEventExchange, LikeEventQueue, event)
}

func (p *Producer) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
