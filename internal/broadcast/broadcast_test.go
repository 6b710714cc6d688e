package broadcast

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBroadcaster(t *testing.T) *Broadcaster {
	wp := NewWorkerPool(3)
	t.Cleanup(wp.Close)
	b := New(wp)
	b.interval = time.Millisecond
	b.sleep = func(context.Context, time.Duration) error { return nil }
	return b
}

func TestBroadcaster_Send(t *testing.T) {
	tests := []struct {
		name     string
		ids      []int64
		failFor  map[int64]error
		expected *Report
	}{
		{
			name:     "All delivered",
			ids:      []int64{1, 2, 3, 4},
			expected: &Report{Total: 4, Delivered: 4},
		},
		{
			name:     "Blocked users counted as failed",
			ids:      []int64{1, 2, 3},
			failFor:  map[int64]error{2: errors.New("Forbidden: bot was blocked by the user")},
			expected: &Report{Total: 3, Delivered: 2, Failed: 1},
		},
		{
			name:     "Nobody to send to",
			expected: &Report{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBroadcaster(t)
			var mu sync.Mutex
			var got []int64

			report, err := b.Send(context.Background(), tt.ids, func(_ context.Context, id int64) error {
				if err, ok := tt.failFor[id]; ok {
					return err
				}
				mu.Lock()
				got = append(got, id)
				mu.Unlock()
				return nil
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, report)
			assert.Len(t, got, tt.expected.Delivered)
		})
	}
}

func TestBroadcaster_RetriesOnRateLimit(t *testing.T) {
	b := newBroadcaster(t)
	var slept []time.Duration
	b.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}

	calls := 0
	report, err := b.Send(context.Background(), []int64{7}, func(context.Context, int64) error {
		calls++
		if calls == 1 {
			return &tgbotapi.Error{Code: 429, Message: "Too Many Requests", ResponseParameters: tgbotapi.ResponseParameters{RetryAfter: 2}}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []time.Duration{2 * time.Second}, slept)
	assert.Equal(t, 1, report.Delivered)
}

func TestBroadcaster_GivesUpAfterRetries(t *testing.T) {
	b := newBroadcaster(t)

	calls := 0
	report, err := b.Send(context.Background(), []int64{7}, func(context.Context, int64) error {
		calls++
		return &tgbotapi.Error{Code: 429, Message: "Too Many Requests"}
	})
	require.NoError(t, err)
	assert.Equal(t, maxRetries, calls)
	assert.Equal(t, 1, report.Failed)
}

func TestBroadcaster_Canceled(t *testing.T) {
	b := newBroadcaster(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := b.Send(ctx, []int64{1, 2, 3}, func(context.Context, int64) error {
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, report.Total)
	assert.Zero(t, report.Delivered)
}

func TestRateLimited(t *testing.T) {
	d, ok := rateLimited(errors.New("boom"), 1)
	assert.False(t, ok)
	assert.Zero(t, d)

	d, ok = rateLimited(&tgbotapi.Error{Code: 429}, 2)
	assert.True(t, ok)
	assert.Equal(t, 2*retryInterval, d)

	_, ok = rateLimited(&tgbotapi.Error{Code: 403}, 1)
	assert.False(t, ok)
}
