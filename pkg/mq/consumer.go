package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

type ViewEventHandler func(ctx context.Context, event *ViewEvent) error
type LikeEventHandler func(ctx context.Context, event *LikeEvent) error

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewConsumer(rabbitmqURL string) (*Consumer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	if err := ch.Qos(16, 0, false); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set qos: %w", err)
	}
	return &Consumer{conn: conn, channel: ch}, nil
}

// ConsumeViewEvents pulls view events until ctx is cancelled. Handler errors
// requeue the delivery once; a poisoned message is dropped after that.
func (c *Consumer) ConsumeViewEvents(ctx context.Context, handler ViewEventHandler) error {
	deliveries, err := c.channel.Consume(ViewEventQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to consume %s: %w", ViewEventQueue, err)
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				var event ViewEvent
				if err := json.Unmarshal(d.Body, &event); err != nil {
					hlog.CtxErrorf(ctx, "bad view event payload: %v", err)
					d.Nack(false, false)
					continue
				}
				if err := handler(ctx, &event); err != nil {
					hlog.CtxErrorf(ctx, "view event handler failed: %v", err)
					d.Nack(false, !d.Redelivered)
					continue
				}
				d.Ack(false)
			}
		}
	}()
	return nil
}

func (c *Consumer) ConsumeLikeEvents(ctx context.Context, handler LikeEventHandler) error {
	deliveries, err := c.channel.Consume(LikeEventQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to consume %s: %w", LikeEventQueue, err)
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				var event LikeEvent
				if err := json.Unmarshal(d.Body, &event); err != nil {
					hlog.CtxErrorf(ctx, "bad like event payload: %v", err)
					d.Nack(false, false)
					continue
				}
				if err := handler(ctx, &event); err != nil {
					hlog.CtxErrorf(ctx, "like event handler failed: %v", err)
					d.Nack(false, !d.Redelivered)
					continue
				}
				d.Ack(false)
			}
		}
	}()
	return nil
}

func (c *Consumer) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
