package broadcast

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	maxRetries    = 3
	retryInterval = time.Second
	// Telegram allows about 30 messages per second across chats.
	defaultInterval = 40 * time.Millisecond
)

// Deliver sends one message to one user.
type Deliver func(ctx context.Context, userID int64) error

type Report struct {
	Total     int
	Delivered int
	Failed    int
}

type Broadcaster struct {
	workerPool WorkerPoolI
	interval   time.Duration
	sleep      func(ctx context.Context, d time.Duration) error
}

func New(workerPool WorkerPoolI) *Broadcaster {
	return &Broadcaster{
		workerPool: workerPool,
		interval:   defaultInterval,
		sleep:      sleep,
	}
}

// Send hands every id to the worker pool, one per tick, and waits for all
// deliveries to finish.
func (b *Broadcaster) Send(ctx context.Context, ids []int64, deliver Deliver) (*Report, error) {
	var delivered, failed atomic.Int64
	var wg sync.WaitGroup
	var g errgroup.Group

	var tick <-chan time.Time
	if b.interval > 0 {
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

loop:
	for _, id := range ids {
		if tick != nil {
			select {
			case <-ctx.Done():
				break loop
			case <-tick:
			}
		}

		id := id
		wg.Add(1)
		g.Go(func() error {
			err := b.workerPool.AddTask(ctx, func() error {
				defer wg.Done()
				if err := b.deliver(ctx, id, deliver); err != nil {
					failed.Add(1)
					return err
				}
				delivered.Add(1)
				return nil
			})
			if err != nil {
				wg.Done()
				failed.Add(1)
				return err
			}
			return nil
		})
	}

	err := g.Wait()
	wg.Wait()
	if err == nil {
		err = ctx.Err()
	}

	report := &Report{
		Total:     len(ids),
		Delivered: int(delivered.Load()),
		Failed:    int(failed.Load()),
	}
	zap.L().Info("broadcast finished",
		zap.Int("total", report.Total),
		zap.Int("delivered", report.Delivered),
		zap.Int("failed", report.Failed),
	)
	return report, err
}

func (b *Broadcaster) deliver(ctx context.Context, userID int64, deliver Deliver) error {
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = deliver(ctx, userID); err == nil {
			return nil
		}
		retryAfter, ok := rateLimited(err, attempt)
		if !ok || attempt == maxRetries {
			break
		}
		zap.L().Warn("rate limit hit, retrying",
			zap.Int64("user_id", userID),
			zap.Int("attempt", attempt),
			zap.Duration("retry_after", retryAfter),
		)
		if serr := b.sleep(ctx, retryAfter); serr != nil {
			return serr
		}
	}
	return err
}

// rateLimited reports whether telegram asked us to slow down and for how long.
func rateLimited(err error, attempt int) (time.Duration, bool) {
	var apiErr *tgbotapi.Error
	if !errors.As(err, &apiErr) || apiErr.Code != 429 {
		return 0, false
	}
	if apiErr.RetryAfter > 0 {
		return time.Duration(apiErr.RetryAfter) * time.Second, true
	}
	return retryInterval * time.Duration(attempt), true
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
