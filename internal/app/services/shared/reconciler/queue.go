package reconciler

import (
	"context"
	"encoding/json"
	"fmt"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	IntentQueueName     = "mirror_intent_queue"
	IntentDeadQueueName = "mirror_intent_dlq"
)

// IntentMessage is the payload stored in RabbitMQ. Only the intent id
// travels on the wire; the authoritative record lives in the primary
// registry's outbox collection.
type IntentMessage struct {
	IntentID    string `json:"intent_id"`
	FailedCount int    `json:"failed_count"`
}

// Channel is the subset of *amqp.Channel the queue drives after the
// declare phase.
type Channel interface {
	Get(queue string, autoAck bool) (amqp.Delivery, bool, error)
	Ack(tag uint64, multiple bool) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Queue manages the RabbitMQ queues feeding the mirror reconciler.
type Queue struct {
	ch       Channel
	log      *zap.Logger
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

// NewQueue opens a channel, declares the durable intent queue and its
// dead-letter queue, sets QoS and enables publisher confirms.
func NewQueue(conn *amqp.Connection, log *zap.Logger, prefetch int) (*Queue, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		IntentQueueName, // name
		true,            // durable
		false,           // autoDelete
		false,           // exclusive
		false,           // noWait
		nil,             // args
	)
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		IntentDeadQueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &Queue{
		ch:       ch,
		log:      log,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

// PublishIntent enqueues a fresh intent id for immediate replay.
func (q *Queue) PublishIntent(ctx context.Context, intentID string) error {
	return q.publish(ctx, IntentQueueName, IntentMessage{IntentID: intentID})
}

// Reenqueue puts a failed message back on the tail of the intent queue.
func (q *Queue) Reenqueue(ctx context.Context, msg IntentMessage) error {
	return q.publish(ctx, IntentQueueName, msg)
}

// EnqueueToDeadQueue parks a message that exhausted its retry budget.
func (q *Queue) EnqueueToDeadQueue(ctx context.Context, msg IntentMessage) error {
	return q.publish(ctx, IntentDeadQueueName, msg)
}

// QueuedItem is a fetched delivery and its decoded payload.
type QueuedItem struct {
	DeliveryTag uint64
	Message     IntentMessage
}

// FetchN retrieves up to n messages using basic.get without auto-ack.
// Poison payloads move to the dead-letter queue before the ack, so a
// broker failure mid-move redelivers rather than drops them.
func (q *Queue) FetchN(ctx context.Context, n int) ([]QueuedItem, error) {
	if n <= 0 {
		n = 1
	}
	items := make([]QueuedItem, 0, n)

	for i := 0; i < n; i++ {
		d, ok, err := q.ch.Get(IntentQueueName, false)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		var payload IntentMessage
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			if pubErr := q.publishRaw(ctx, IntentDeadQueueName, d.Body); pubErr != nil {
				q.log.Warn("dead-letter publish for malformed payload failed, leaving it unacked",
					zap.Error(pubErr))
				continue
			}
			if ackErr := q.ch.Ack(d.DeliveryTag, false); ackErr != nil {
				q.log.Warn("ack after dead-lettering malformed payload failed", zap.Error(ackErr))
			}
			continue
		}
		items = append(items, QueuedItem{DeliveryTag: d.DeliveryTag, Message: payload})
	}

	return items, nil
}

// Ack acknowledges a message by delivery tag.
func (q *Queue) Ack(deliveryTag uint64) error {
	return q.ch.Ack(deliveryTag, false)
}

func (q *Queue) publish(ctx context.Context, queue string, msg IntentMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err)
	}
	return q.publishRaw(ctx, queue, body)
}

func (q *Queue) publishRaw(ctx context.Context, queue string, body []byte) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := q.ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err)
	}

	select {
	case confirmed := <-q.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"))
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err())
	}
	return nil
}
