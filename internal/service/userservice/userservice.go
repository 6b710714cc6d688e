package userservice

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/GlebRadaev/starsbot/internal/domain"
	"github.com/GlebRadaev/starsbot/internal/pg"
	"github.com/GlebRadaev/starsbot/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=userservice.go -destination=mock_userservice.go -package=userservice

type Repo interface {
	GetByID(ctx context.Context, userID int64) (*domain.User, error)
	Upsert(ctx context.Context, user *domain.User) (*domain.User, bool, error)
	Credit(ctx context.Context, userID int64, amount float64) error
	Debit(ctx context.Context, userID int64, amount float64) error
	IncrementReferrals(ctx context.Context, userID int64) error
	SetReferrer(ctx context.Context, userID, referrerID int64) error
	Top(ctx context.Context, limit int) ([]domain.User, error)
}

type LedgerRepo interface {
	Add(ctx context.Context, tx *domain.Transaction) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Transaction, error)
}

type Settings interface {
	Economy(ctx context.Context) (*domain.Economy, error)
}

type Service struct {
	repo      Repo
	ledger    LedgerRepo
	settings  Settings
	txManager pg.TXManager
}

func New(repo Repo, ledger LedgerRepo, settings Settings, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		ledger:    ledger,
		settings:  settings,
		txManager: txManager,
	}
}

type RegisterInput struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	// Payload is the /start argument, e.g. "ref123".
	Payload string
}

type RegisterResult struct {
	User       *domain.User
	Created    bool
	ReferrerID *int64
	Reward     float64
}

// ParseReferral extracts the referrer id from a "ref<id>" start payload.
func ParseReferral(payload string) (int64, bool) {
	if !strings.HasPrefix(payload, "ref") {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(payload, "ref"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Register creates the user on first contact and pays the referrer once.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	result := &RegisterResult{}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, created, err := s.repo.Upsert(ctx, &domain.User{
			ID:        in.ID,
			Username:  in.Username,
			FirstName: in.FirstName,
			LastName:  in.LastName,
		})
		if err != nil {
			return err
		}
		result.User, result.Created = user, created

		referrerID, ok := ParseReferral(in.Payload)
		if !created || !ok || referrerID == in.ID {
			return nil
		}
		referrer, err := s.repo.GetByID(ctx, referrerID)
		if err != nil {
			return err
		}
		if referrer == nil {
			return nil
		}

		economy, err := s.settings.Economy(ctx)
		if err != nil {
			return err
		}
		if err := s.repo.SetReferrer(ctx, in.ID, referrerID); err != nil {
			return err
		}
		if err := s.repo.IncrementReferrals(ctx, referrerID); err != nil {
			return err
		}
		if economy.ReferralReward > 0 {
			if err := s.repo.Credit(ctx, referrerID, economy.ReferralReward); err != nil {
				return err
			}
			if err := s.ledger.Add(ctx, &domain.Transaction{
				UserID:      referrerID,
				Amount:      economy.ReferralReward,
				Type:        domain.TxReferral,
				Description: fmt.Sprintf("referral %d", in.ID),
			}); err != nil {
				return err
			}
		}
		user.ReferredBy = &referrerID
		result.ReferrerID = &referrerID
		result.Reward = economy.ReferralReward
		return nil
	})
	if err != nil {
		zap.L().Error("failed to register user", zap.Int64("user_id", in.ID), zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (s *Service) Get(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *Service) Top(ctx context.Context, limit int) ([]domain.User, error) {
	users, err := s.repo.Top(ctx, limit)
	if err != nil {
		zap.L().Error("failed to get top users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

// Give credits a positive amount or debits a negative one on behalf of an admin.
func (s *Service) Give(ctx context.Context, adminID, userID int64, amount float64) (*domain.User, error) {
	if !validate.IsAmount(math.Abs(amount)) {
		return nil, domain.ErrInvalidAmount
	}
	var user *domain.User
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		if user, err = s.Get(ctx, userID); err != nil {
			return err
		}
		if amount > 0 {
			err = s.repo.Credit(ctx, userID, amount)
		} else {
			err = s.repo.Debit(ctx, userID, -amount)
		}
		if err != nil {
			return err
		}
		user.Stars += amount
		return s.ledger.Add(ctx, &domain.Transaction{
			UserID:      userID,
			Amount:      amount,
			Type:        domain.TxAdmin,
			Description: fmt.Sprintf("admin %d", adminID),
		})
	})
	if err != nil {
		zap.L().Error("failed to give stars", zap.Int64("user_id", userID), zap.Float64("amount", amount), zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *Service) History(ctx context.Context, userID int64, limit int) ([]domain.Transaction, error) {
	txs, err := s.ledger.ListByUser(ctx, userID, limit)
	if err != nil {
		zap.L().Error("failed to get history", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	return txs, nil
}
