package scheduler

import (
	"context"
	"time"

	"github.com/GlebRadaev/starsbot/internal/domain"
	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=scheduler.go -destination=mock_scheduler.go -package=scheduler

type BoostCleaner interface {
	ClearExpiredBoost(ctx context.Context, now time.Time) (bool, error)
}

type StatsSource interface {
	Stats(ctx context.Context) (*domain.Stats, error)
}

const (
	boostInterval = time.Minute
	statsInterval = time.Hour
)

type Scheduler struct {
	sched gocron.Scheduler
	boost BoostCleaner
	stats StatsSource
	now   func() time.Time
}

func New(boost BoostCleaner, stats StatsSource) (*Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	return &Scheduler{
		sched: sched,
		boost: boost,
		stats: stats,
		now:   time.Now,
	}, nil
}

// Start registers the periodic jobs and runs them until Shutdown.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.sched.NewJob(
		gocron.DurationJob(boostInterval),
		gocron.NewTask(func() { s.clearBoost(ctx) }),
		gocron.WithName("clear-expired-boost"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		return err
	}
	if _, err := s.sched.NewJob(
		gocron.DurationJob(statsInterval),
		gocron.NewTask(func() { s.logStats(ctx) }),
		gocron.WithName("log-stats"),
	); err != nil {
		return err
	}
	s.sched.Start()
	zap.L().Info("scheduler started", zap.Int("jobs", len(s.sched.Jobs())))
	return nil
}

func (s *Scheduler) Shutdown() error {
	return s.sched.Shutdown()
}

func (s *Scheduler) clearBoost(ctx context.Context) {
	cleared, err := s.boost.ClearExpiredBoost(ctx, s.now())
	if err != nil {
		zap.L().Error("failed to clear expired boost", zap.Error(err))
		return
	}
	if cleared {
		zap.L().Info("expired boost cleared")
	}
}

func (s *Scheduler) logStats(ctx context.Context) {
	stats, err := s.stats.Stats(ctx)
	if err != nil {
		zap.L().Error("failed to collect stats", zap.Error(err))
		return
	}
	zap.L().Info("bot stats",
		zap.Int("users", stats.TotalUsers),
		zap.Float64("stars", stats.TotalStars),
		zap.Float64("withdrawn", stats.TotalWithdrawn),
		zap.Int("pending_withdrawals", stats.PendingWithdrawals),
	)
}
