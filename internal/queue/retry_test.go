package queue

import (
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

func TestRetryCount(t *testing.T) {
	tests := []struct {
		name    string
		headers amqp.Table
		want    int
	}{
		{name: "nil headers", headers: nil, want: 0},
		{name: "missing header", headers: amqp.Table{"other": "x"}, want: 0},
		{name: "int32", headers: amqp.Table{headerRetryCount: int32(2)}, want: 2},
		{name: "int64", headers: amqp.Table{headerRetryCount: int64(3)}, want: 3},
		{name: "wrong type", headers: amqp.Table{headerRetryCount: "1"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retryCount(tt.headers); got != tt.want {
				t.Errorf("retryCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBackoff(t *testing.T) {
	tests := []struct {
		base    time.Duration
		attempt int
		want    time.Duration
	}{
		{base: time.Second, attempt: 0, want: time.Second},
		{base: time.Second, attempt: 1, want: 2 * time.Second},
		{base: 2 * time.Second, attempt: 2, want: 8 * time.Second},
		{base: 0, attempt: 1, want: 2 * time.Second},
	}

	for _, tt := range tests {
		if got := backoff(tt.base, tt.attempt); got != tt.want {
			t.Errorf("backoff(%v, %d) = %v, want %v", tt.base, tt.attempt, got, tt.want)
		}
	}
}

func TestQueuesIncludeDeadLetters(t *testing.T) {
	declared := map[string]bool{}
	for _, q := range Queues() {
		declared[q] = true
	}

	for _, q := range []string{QueueOfferImport, QueueOfferStatus, QueueOrderPlaced} {
		if !declared[q] {
			t.Errorf("queue %s not declared", q)
		}
		if !declared[DeadLetterQueue(q)] {
			t.Errorf("dead letter queue for %s not declared", q)
		}
	}
}
