package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/restodash/restodash/internal/domain"
	"github.com/restodash/restodash/pkg/metrics"
	"github.com/restodash/restodash/pkg/validate"
)

// isPermanent reports whether reprocessing the message can never succeed.
// Referential failures count: the event names entities that do not exist (or
// do not belong together), and replaying it will not create them.
func isPermanent(err error) bool {
	return errors.Is(err, validate.ErrInvalidOrderEvent) ||
		errors.Is(err, domain.ErrRestaurantNotFound) ||
		errors.Is(err, domain.ErrCustomerNotFound) ||
		errors.Is(err, domain.ErrCustomerRestaurantMismatch)
}

// handleMessage processes one message and decides whether to commit its offset.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) bool {
	ctxTimeout, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.service.CreateOrderFromMessage(ctxTimeout, msg.Value)
	cancel()

	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return true
	case isPermanent(err):
		// commit so the poison message is not replayed
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "unprocessable message offset=%d: %v (skipped)", msg.Offset, err)
		return true
	default:
		// transient failure (store/network/timeout): no commit, retry later
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "process failed offset=%d: %v (will retry without commit)", msg.Offset, err)
		return false
	}
}

// commitSafely commits the offset and logs a failure instead of returning it.
func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if commitErr := c.reader.CommitMessages(ctx, *msg); commitErr != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, commitErr)
	}
}

// sleepWithBackoff waits for d or until the context is cancelled.
func (c *Consumer) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

// nextBackoff doubles the wait, capped at retryMax.
func (c *Consumer) nextBackoff(current time.Duration) time.Duration {
	current *= 2
	if current > c.retryMax {
		return c.retryMax
	}
	return current
}

// withJitterEqual keeps half the delay fixed and randomizes the other half.
func (c *Consumer) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	jitter := time.Duration(c.jitterRand.Int63n(int64(d-half) + 1))
	return half + jitter
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
