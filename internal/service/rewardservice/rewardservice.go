package rewardservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/GlebRadaev/starsbot/internal/domain"
	"github.com/GlebRadaev/starsbot/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rewardservice.go -destination=mock_rewardservice.go -package=rewardservice

type Repo interface {
	GetByID(ctx context.Context, userID int64) (*domain.User, error)
	GetForUpdate(ctx context.Context, userID int64) (*domain.User, error)
	Credit(ctx context.Context, userID int64, amount float64) error
	SetLastDaily(ctx context.Context, userID int64, at time.Time) error
	SetLastLuck(ctx context.Context, userID int64, at time.Time) error
}

type LedgerRepo interface {
	Add(ctx context.Context, tx *domain.Transaction) error
}

type GroupRepo interface {
	Claim(ctx context.Context, chatID, userID int64) (bool, error)
}

type Settings interface {
	Economy(ctx context.Context) (*domain.Economy, error)
	Multiplier(ctx context.Context) (float64, error)
}

// CooldownError is returned while a reward is not yet available again.
type CooldownError struct {
	Left time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("reward available in %s", e.Left.Round(time.Second))
}

type Reward struct {
	Amount     float64
	Base       int
	Multiplier float64
	Next       time.Time
}

type GroupReward struct {
	UserID int64
	Amount float64
}

type Service struct {
	repo      Repo
	ledger    LedgerRepo
	groups    GroupRepo
	settings  Settings
	txManager pg.TXManager
	now       func() time.Time
	randInt   func(n int) int
}

func New(repo Repo, ledger LedgerRepo, groups GroupRepo, settings Settings, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		ledger:    ledger,
		groups:    groups,
		settings:  settings,
		txManager: txManager,
		now:       time.Now,
		randInt:   rand.IntN,
	}
}

type claimKind struct {
	txType      domain.TransactionType
	description string
	last        func(u *domain.User) *time.Time
	bounds      func(e *domain.Economy) (int, int, time.Duration)
	touch       func(r Repo, ctx context.Context, userID int64, at time.Time) error
}

var (
	daily = claimKind{
		txType:      domain.TxDaily,
		description: "daily bonus",
		last:        func(u *domain.User) *time.Time { return u.LastDaily },
		bounds: func(e *domain.Economy) (int, int, time.Duration) {
			return e.DailyMin, e.DailyMax, e.DailyCooldown
		},
		touch: Repo.SetLastDaily,
	}
	luck = claimKind{
		txType:      domain.TxLuck,
		description: "luck game",
		last:        func(u *domain.User) *time.Time { return u.LastLuck },
		bounds: func(e *domain.Economy) (int, int, time.Duration) {
			return e.LuckMin, e.LuckMax, e.LuckCooldown
		},
		touch: Repo.SetLastLuck,
	}
)

func (s *Service) ClaimDaily(ctx context.Context, userID int64) (*Reward, error) {
	return s.claim(ctx, userID, daily)
}

func (s *Service) PlayLuck(ctx context.Context, userID int64) (*Reward, error) {
	return s.claim(ctx, userID, luck)
}

func left(last *time.Time, interval time.Duration, now time.Time) time.Duration {
	if last == nil {
		return 0
	}
	if next := last.Add(interval); now.Before(next) {
		return next.Sub(now)
	}
	return 0
}

func (s *Service) between(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.randInt(hi-lo+1)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *Service) claim(ctx context.Context, userID int64, kind claimKind) (*Reward, error) {
	economy, err := s.settings.Economy(ctx)
	if err != nil {
		return nil, err
	}
	multiplier, err := s.settings.Multiplier(ctx)
	if err != nil {
		return nil, err
	}
	lo, hi, interval := kind.bounds(economy)

	var reward *Reward
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.repo.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}

		now := s.now()
		if wait := left(kind.last(user), interval, now); wait > 0 {
			return &CooldownError{Left: wait}
		}

		base := s.between(lo, hi)
		amount := round2(float64(base) * multiplier)
		if amount > 0 {
			if err := s.repo.Credit(ctx, userID, amount); err != nil {
				return err
			}
			if err := s.ledger.Add(ctx, &domain.Transaction{
				UserID:      userID,
				Amount:      amount,
				Type:        kind.txType,
				Description: kind.description,
			}); err != nil {
				return err
			}
		}
		if err := kind.touch(s.repo, ctx, userID, now); err != nil {
			return err
		}
		reward = &Reward{Amount: amount, Base: base, Multiplier: multiplier, Next: now.Add(interval)}
		return nil
	})
	if err != nil {
		var cooldown *CooldownError
		if !errors.As(err, &cooldown) && !errors.Is(err, domain.ErrUserNotFound) {
			zap.L().Error("failed to grant reward", zap.Int64("user_id", userID),
				zap.String("type", string(kind.txType)), zap.Error(err))
		}
		return nil, err
	}
	return reward, nil
}

// Cooldowns reports how long the user still waits for each reward.
func (s *Service) Cooldowns(ctx context.Context, userID int64) (dailyLeft, luckLeft time.Duration, err error) {
	economy, err := s.settings.Economy(ctx)
	if err != nil {
		return 0, 0, err
	}
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	if user == nil {
		return 0, 0, domain.ErrUserNotFound
	}
	now := s.now()
	return left(user.LastDaily, economy.DailyCooldown, now), left(user.LastLuck, economy.LuckCooldown, now), nil
}

// RewardGroup pays each registered chat admin once per chat when the bot
// joins a group with enough members.
func (s *Service) RewardGroup(ctx context.Context, chatID int64, memberCount int, adminIDs []int64) ([]GroupReward, error) {
	economy, err := s.settings.Economy(ctx)
	if err != nil {
		return nil, err
	}
	if memberCount < economy.GroupMinMembers || economy.GroupReward <= 0 {
		return nil, nil
	}

	var rewarded []GroupReward
	for _, adminID := range adminIDs {
		paid := false
		err := s.txManager.Begin(ctx, func(ctx context.Context) error {
			user, err := s.repo.GetByID(ctx, adminID)
			if err != nil || user == nil {
				return err
			}
			claimed, err := s.groups.Claim(ctx, chatID, adminID)
			if err != nil || !claimed {
				return err
			}
			if err := s.repo.Credit(ctx, adminID, economy.GroupReward); err != nil {
				return err
			}
			paid = true
			return s.ledger.Add(ctx, &domain.Transaction{
				UserID:      adminID,
				Amount:      economy.GroupReward,
				Type:        domain.TxGroup,
				Description: fmt.Sprintf("group %d", chatID),
			})
		})
		if err != nil {
			zap.L().Error("failed to reward group admin", zap.Int64("chat_id", chatID),
				zap.Int64("user_id", adminID), zap.Error(err))
			return rewarded, err
		}
		if paid {
			rewarded = append(rewarded, GroupReward{UserID: adminID, Amount: economy.GroupReward})
		}
	}
	return rewarded, nil
}
