package broker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// BatchHandler processes a batch of deliveries. A non-nil error nacks the whole batch.
type BatchHandler func(deliveries []amqp.Delivery) error

// BatchConsumer accumulates deliveries from one queue and hands them to a handler
// when the batch is full or the batch timeout elapses.
type BatchConsumer struct {
	cfg     Config
	handler BatchHandler
	logger  *zap.Logger

	conn    *amqp.Connection
	channel *amqp.Channel
	wg      sync.WaitGroup
}

// NewBatchConsumer connects to the broker and declares the queue.
func NewBatchConsumer(cfg Config, handler BatchHandler, logger *zap.Logger) (*BatchConsumer, error) {
	if handler == nil {
		return nil, errors.New("broker: batch handler is required")
	}
	if cfg.PrefetchCount < cfg.batchSize() {
		cfg.PrefetchCount = cfg.batchSize()
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("broker: failed to connect: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("broker: failed to open channel: %w", err)
	}

	if err := ch.Qos(cfg.PrefetchCount, 0, false); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("broker: failed to set QoS: %w", err)
	}

	if _, err := ch.QueueDeclare(cfg.Queue, cfg.Durable, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("broker: failed to declare queue %s: %w", cfg.Queue, err)
	}

	return newBatchConsumer(cfg, handler, logger, conn, ch), nil
}

func newBatchConsumer(cfg Config, handler BatchHandler, logger *zap.Logger, conn *amqp.Connection, ch *amqp.Channel) *BatchConsumer {
	return &BatchConsumer{
		cfg:     cfg,
		handler: handler,
		logger:  logger.With(zap.String("queue", cfg.Queue)),
		conn:    conn,
		channel: ch,
	}
}

// Start registers the consumer and processes deliveries in the background until ctx
// is cancelled or the delivery channel closes.
func (c *BatchConsumer) Start(ctx context.Context) error {
	msgs, err := c.channel.Consume(c.cfg.Queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("broker: failed to register consumer: %w", err)
	}

	c.logger.Info("Waiting for messages",
		zap.Int("batch_size", c.cfg.batchSize()),
		zap.Duration("batch_timeout", c.cfg.batchTimeout()))

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.run(ctx, msgs)
	}()
	return nil
}

func (c *BatchConsumer) run(ctx context.Context, msgs <-chan amqp.Delivery) {
	size := c.cfg.batchSize()
	timeout := c.cfg.batchTimeout()

	batch := make([]amqp.Delivery, 0, size)
	timer := time.NewTimer(timeout)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			c.processBatch(batch)
			return

		case msg, ok := <-msgs:
			if !ok {
				c.logger.Info("Delivery channel closed")
				c.processBatch(batch)
				return
			}

			if len(batch) == 0 {
				timer.Reset(timeout)
			}
			batch = append(batch, msg)

			if len(batch) >= size {
				if !timer.Stop() {
					<-timer.C
				}
				c.processBatch(batch)
				batch = make([]amqp.Delivery, 0, size)
			}

		case <-timer.C:
			if len(batch) > 0 {
				c.processBatch(batch)
				batch = make([]amqp.Delivery, 0, size)
			}
		}
	}
}

// processBatch acks or nacks the batch with a single multiple-flag call on its last delivery.
func (c *BatchConsumer) processBatch(batch []amqp.Delivery) {
	if len(batch) == 0 {
		return
	}
	last := batch[len(batch)-1]

	if err := c.handler(batch); err != nil {
		c.logger.Error("Batch handler failed, nacking batch", zap.Int("batch_size", len(batch)), zap.Error(err))
		if nackErr := last.Nack(true, false); nackErr != nil {
			c.logger.Error("Failed to nack batch", zap.Uint64("delivery_tag", last.DeliveryTag), zap.Error(nackErr))
		}
		return
	}

	if err := last.Ack(true); err != nil {
		c.logger.Error("Failed to ack batch", zap.Uint64("delivery_tag", last.DeliveryTag), zap.Error(err))
		return
	}
	c.logger.Debug("Batch acknowledged", zap.Int("batch_size", len(batch)))
}

// Close waits for the consume loop to finish and closes the connection.
// Cancel the context given to Start first.
func (c *BatchConsumer) Close() error {
	c.wg.Wait()

	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
