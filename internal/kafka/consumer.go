package kafka

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/restodash/restodash/internal/ports"
	"github.com/restodash/restodash/pkg/metrics"
)

var _ ports.MessageConsumer = (*Consumer)(nil)

// reader is the minimal contract over kafka.Reader, substitutable in tests.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// orderIngestor parses, validates and persists one raw order event.
type orderIngestor interface {
	CreateOrderFromMessage(ctx context.Context, raw []byte) error
}

// Consumer reads order events from the topic and feeds them into the order
// service. Offsets are committed manually, giving at-least-once delivery:
// a crash between persist and commit replays the message.
type Consumer struct {
	reader         reader
	service        orderIngestor
	log            ports.Logger
	processTimeout time.Duration
	retryInitial   time.Duration
	retryMax       time.Duration
	jitterRand     *rand.Rand
	closeOnce      sync.Once
}

func NewConsumer(cfg *ConsumerConfig, service orderIngestor, log ports.Logger) *Consumer {
	reader := kafka.NewReader(cfg.readerConfig())

	pt := cfg.ProcessTimeout
	if pt <= 0 {
		pt = 5 * time.Second
	}

	rInit := cfg.RetryInitial
	if rInit <= 0 {
		rInit = 1 * time.Second
	}

	rMax := cfg.RetryMax
	if rMax <= 0 {
		rMax = 30 * time.Second
	}

	return &Consumer{
		reader:         reader,
		service:        service,
		log:            log,
		processTimeout: pt,
		retryInitial:   rInit,
		retryMax:       rMax,
		// jitter desynchronizes backoff across consumer instances
		jitterRand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run is the main loop:
// 1) fetch a message without auto-commit;
// 2) processed ok -> commit the offset;
// 3) permanently bad message -> log and commit (skip forever);
// 4) transient failure -> no commit, the message is retried.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "kafka consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	// exponential backoff with equal jitter on fetch errors
	retry := c.retryInitial

	for {
		msg, fetchErr := c.reader.FetchMessage(ctx)
		if fetchErr != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			sleep := c.withJitterEqual(retry)
			c.log.Warnf(ctx, "fetch failed: %v (will retry in %s)", fetchErr, sleep)
			if !c.sleepWithBackoff(ctx, sleep) {
				return ctx.Err()
			}
			retry = c.nextBackoff(retry)
			continue
		}

		retry = c.retryInitial
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if shouldCommit := c.handleMessage(ctx, rc.Topic, &msg); shouldCommit {
			c.commitSafely(ctx, &msg)
		} else {
			// short pause before reprocessing the same message so a broken
			// dependency is not hammered in a tight loop
			_ = c.sleepWithBackoff(ctx, c.withJitterEqual(minDuration(c.retryInitial, 500*time.Millisecond)))
		}
	}
}

// Close shuts the reader down. Called once on application stop.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}
