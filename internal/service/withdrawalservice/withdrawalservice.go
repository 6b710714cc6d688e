package withdrawalservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/starsbot/internal/domain"
	"github.com/GlebRadaev/starsbot/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=withdrawalservice.go -destination=mock_withdrawalservice.go -package=withdrawalservice

type Repo interface {
	Create(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	GetForUpdate(ctx context.Context, id int64) (*domain.Withdrawal, error)
	SetStatus(ctx context.Context, id int64, status domain.WithdrawalStatus, adminID int64) error
	AttachMessage(ctx context.Context, id int64, messageID int) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Withdrawal, error)
	ListPending(ctx context.Context, limit int) ([]domain.Withdrawal, error)
}

type UserRepo interface {
	GetByID(ctx context.Context, userID int64) (*domain.User, error)
	Withdraw(ctx context.Context, userID int64, amount float64) error
	Refund(ctx context.Context, userID int64, amount float64) error
}

type InventoryRepo interface {
	Add(ctx context.Context, userID int64, item string, quantity int) error
	Remove(ctx context.Context, userID int64, item string) error
}

type LedgerRepo interface {
	Add(ctx context.Context, tx *domain.Transaction) error
}

type Settings interface {
	Economy(ctx context.Context) (*domain.Economy, error)
	Gift(ctx context.Context, key string) (*domain.Gift, error)
}

var ErrWithdrawalNotFound = errors.New("withdrawal not found")

type Service struct {
	repo      Repo
	users     UserRepo
	inventory InventoryRepo
	ledger    LedgerRepo
	settings  Settings
	txManager pg.TXManager
}

func New(repo Repo, users UserRepo, inventory InventoryRepo, ledger LedgerRepo, settings Settings, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		users:     users,
		inventory: inventory,
		ledger:    ledger,
		settings:  settings,
		txManager: txManager,
	}
}

type Options struct {
	Balance   float64
	Minimum   float64
	All       []float64
	Available []float64
}

// Options lists the withdrawal amounts and which of them the user can afford.
func (s *Service) Options(ctx context.Context, userID int64) (*Options, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	economy, err := s.settings.Economy(ctx)
	if err != nil {
		return nil, err
	}

	opts := &Options{Balance: user.Stars, Minimum: economy.MinWithdrawal}
	for _, amount := range economy.WithdrawalOptions {
		if amount < economy.MinWithdrawal {
			continue
		}
		opts.All = append(opts.All, amount)
		if amount <= user.Stars {
			opts.Available = append(opts.Available, amount)
		}
	}
	return opts, nil
}

func allowed(economy *domain.Economy, amount float64) bool {
	if amount < economy.MinWithdrawal {
		return false
	}
	for _, o := range economy.WithdrawalOptions {
		if o == amount {
			return true
		}
	}
	return false
}

// Request debits the stars and opens a pending withdrawal.
func (s *Service) Request(ctx context.Context, userID int64, amount float64) (*domain.Withdrawal, error) {
	economy, err := s.settings.Economy(ctx)
	if err != nil {
		return nil, err
	}
	if !allowed(economy, amount) {
		return nil, domain.ErrInvalidAmount
	}

	var withdrawal *domain.Withdrawal
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.users.Withdraw(ctx, userID, amount); err != nil {
			return err
		}
		var err error
		withdrawal, err = s.repo.Create(ctx, &domain.Withdrawal{UserID: userID, Amount: amount})
		if err != nil {
			return err
		}
		return s.ledger.Add(ctx, &domain.Transaction{
			UserID:      userID,
			Amount:      -amount,
			Type:        domain.TxWithdrawal,
			Description: fmt.Sprintf("withdrawal #%d", withdrawal.ID),
		})
	})
	if err != nil {
		if !errors.Is(err, domain.ErrInsufficientFunds) {
			zap.L().Error("failed to request withdrawal", zap.Int64("user_id", userID), zap.Error(err))
		}
		return nil, err
	}
	return withdrawal, nil
}

// RequestGift takes one gift out of the inventory and opens a pending request for it.
func (s *Service) RequestGift(ctx context.Context, userID int64, item string) (*domain.Withdrawal, error) {
	gift, err := s.settings.Gift(ctx, item)
	if err != nil {
		return nil, err
	}

	var withdrawal *domain.Withdrawal
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.inventory.Remove(ctx, userID, gift.Key); err != nil {
			return err
		}
		var err error
		withdrawal, err = s.repo.Create(ctx, &domain.Withdrawal{UserID: userID, Amount: gift.Price, Item: &gift.Key})
		return err
	})
	if err != nil {
		if !errors.Is(err, domain.ErrItemNotOwned) {
			zap.L().Error("failed to request gift", zap.Int64("user_id", userID), zap.String("item", item), zap.Error(err))
		}
		return nil, err
	}
	return withdrawal, nil
}

// AttachMessage remembers the admin channel card so it can be edited later.
func (s *Service) AttachMessage(ctx context.Context, id int64, messageID int) error {
	return s.repo.AttachMessage(ctx, id, messageID)
}

func (s *Service) lockPending(ctx context.Context, id int64) (*domain.Withdrawal, error) {
	withdrawal, err := s.repo.GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if withdrawal == nil {
		return nil, ErrWithdrawalNotFound
	}
	if withdrawal.Status != domain.WithdrawalPending {
		return nil, domain.ErrAlreadyProcessed
	}
	return withdrawal, nil
}

func (s *Service) Approve(ctx context.Context, id, adminID int64) (*domain.Withdrawal, error) {
	var withdrawal *domain.Withdrawal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		if withdrawal, err = s.lockPending(ctx, id); err != nil {
			return err
		}
		if err := s.repo.SetStatus(ctx, id, domain.WithdrawalApproved, adminID); err != nil {
			return err
		}
		withdrawal.Status = domain.WithdrawalApproved
		withdrawal.AdminID = &adminID
		return nil
	})
	if err != nil {
		s.logDecision("approve", id, err)
		return nil, err
	}
	return withdrawal, nil
}

// Reject returns the stars or the gift to the user.
func (s *Service) Reject(ctx context.Context, id, adminID int64) (*domain.Withdrawal, error) {
	var withdrawal *domain.Withdrawal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		if withdrawal, err = s.lockPending(ctx, id); err != nil {
			return err
		}
		if err := s.repo.SetStatus(ctx, id, domain.WithdrawalRejected, adminID); err != nil {
			return err
		}
		if withdrawal.IsGift() {
			if err := s.inventory.Add(ctx, withdrawal.UserID, *withdrawal.Item, 1); err != nil {
				return err
			}
		} else {
			if err := s.users.Refund(ctx, withdrawal.UserID, withdrawal.Amount); err != nil {
				return err
			}
			if err := s.ledger.Add(ctx, &domain.Transaction{
				UserID:      withdrawal.UserID,
				Amount:      withdrawal.Amount,
				Type:        domain.TxRefund,
				Description: fmt.Sprintf("withdrawal #%d rejected", id),
			}); err != nil {
				return err
			}
		}
		withdrawal.Status = domain.WithdrawalRejected
		withdrawal.AdminID = &adminID
		return nil
	})
	if err != nil {
		s.logDecision("reject", id, err)
		return nil, err
	}
	return withdrawal, nil
}

func (s *Service) logDecision(action string, id int64, err error) {
	if errors.Is(err, ErrWithdrawalNotFound) || errors.Is(err, domain.ErrAlreadyProcessed) {
		zap.L().Info("withdrawal decision skipped", zap.String("action", action), zap.Int64("id", id), zap.Error(err))
		return
	}
	zap.L().Error("failed to "+action+" withdrawal", zap.Int64("id", id), zap.Error(err))
}

func (s *Service) History(ctx context.Context, userID int64, limit int) ([]domain.Withdrawal, error) {
	return s.repo.ListByUser(ctx, userID, limit)
}

func (s *Service) Pending(ctx context.Context, limit int) ([]domain.Withdrawal, error) {
	return s.repo.ListPending(ctx, limit)
}
