package queue

import (
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	headerRetryCount    = "x-retry-count"
	headerOriginalQueue = "x-original-queue"
	headerError         = "x-error"
)

// retryCount reads the redelivery counter. AMQP tables decode integers with
// varying widths depending on the publisher, so all of them are accepted.
func retryCount(headers amqp.Table) int {
	if headers == nil {
		return 0
	}
	switch v := headers[headerRetryCount].(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	case int16:
		return int(v)
	case int8:
		return int(v)
	}
	return 0
}

// backoff doubles the base delay for every previous attempt.
func backoff(base time.Duration, attempt int) time.Duration {
	if base <= 0 {
		base = time.Second
	}
	return base * time.Duration(1<<attempt)
}
