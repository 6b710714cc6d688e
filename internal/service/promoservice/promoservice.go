package promoservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/starsbot/internal/domain"
	"github.com/GlebRadaev/starsbot/internal/pg"
	promorepo "github.com/GlebRadaev/starsbot/internal/repo/promo-repo"
	"github.com/GlebRadaev/starsbot/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=promoservice.go -destination=mock_promoservice.go -package=promoservice

type Repo interface {
	Create(ctx context.Context, promo *domain.PromoCode) error
	GetForUpdate(ctx context.Context, code string) (*domain.PromoCode, error)
	Activate(ctx context.Context, code string, userID int64) (bool, error)
	IncrementUses(ctx context.Context, code string) error
}

type UserRepo interface {
	Credit(ctx context.Context, userID int64, amount float64) error
}

type LedgerRepo interface {
	Add(ctx context.Context, tx *domain.Transaction) error
}

var (
	ErrInvalidCode    = errors.New("invalid promo code")
	ErrPromoExists    = errors.New("promo code already exists")
	ErrPromoNotFound  = errors.New("promo code not found")
	ErrPromoExpired   = errors.New("promo code expired")
	ErrPromoExhausted = errors.New("promo code has no activations left")
	ErrPromoUsed      = errors.New("promo code already used")
)

type Service struct {
	repo      Repo
	users     UserRepo
	ledger    LedgerRepo
	txManager pg.TXManager
	now       func() time.Time
}

func New(repo Repo, users UserRepo, ledger LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		users:     users,
		ledger:    ledger,
		txManager: txManager,
		now:       time.Now,
	}
}

// Create stores a new code. maxUses 0 means unlimited, ttl 0 means it never expires.
func (s *Service) Create(ctx context.Context, code string, reward float64, maxUses int, ttl time.Duration) (*domain.PromoCode, error) {
	code = validate.NormalizePromoCode(code)
	if !validate.IsPromoCode(code) {
		return nil, ErrInvalidCode
	}
	if !validate.IsAmount(reward) || maxUses < 0 || ttl < 0 {
		return nil, domain.ErrInvalidAmount
	}

	promo := &domain.PromoCode{Code: code, Reward: reward, MaxUses: maxUses}
	if ttl > 0 {
		expires := s.now().Add(ttl).UTC()
		promo.ExpiresAt = &expires
	}

	if err := s.repo.Create(ctx, promo); err != nil {
		if errors.Is(err, promorepo.ErrDuplicateCode) {
			return nil, ErrPromoExists
		}
		return nil, err
	}
	return promo, nil
}

// Activate credits the code's reward once per user.
func (s *Service) Activate(ctx context.Context, userID int64, code string) (*domain.PromoCode, error) {
	code = validate.NormalizePromoCode(code)
	if !validate.IsPromoCode(code) {
		return nil, ErrPromoNotFound
	}

	var promo *domain.PromoCode
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		promo, err = s.repo.GetForUpdate(ctx, code)
		if err != nil {
			return err
		}
		switch {
		case promo == nil:
			return ErrPromoNotFound
		case promo.ExpiresAt != nil && !s.now().Before(*promo.ExpiresAt):
			return ErrPromoExpired
		case promo.MaxUses > 0 && promo.Uses >= promo.MaxUses:
			return ErrPromoExhausted
		}

		fresh, err := s.repo.Activate(ctx, code, userID)
		if err != nil {
			return err
		}
		if !fresh {
			return ErrPromoUsed
		}
		if err := s.repo.IncrementUses(ctx, code); err != nil {
			return err
		}
		if err := s.users.Credit(ctx, userID, promo.Reward); err != nil {
			return err
		}
		return s.ledger.Add(ctx, &domain.Transaction{
			UserID:      userID,
			Amount:      promo.Reward,
			Type:        domain.TxPromo,
			Description: "promo " + code,
		})
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrPromoNotFound), errors.Is(err, ErrPromoExpired),
			errors.Is(err, ErrPromoExhausted), errors.Is(err, ErrPromoUsed):
		default:
			zap.L().Error("failed to activate promo code", zap.Int64("user_id", userID), zap.String("code", code), zap.Error(err))
		}
		return nil, err
	}
	promo.Uses++
	return promo, nil
}
