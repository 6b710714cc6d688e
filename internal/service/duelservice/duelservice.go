package duelservice

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/GlebRadaev/starsbot/internal/domain"
	"github.com/GlebRadaev/starsbot/internal/pg"
	"github.com/GlebRadaev/starsbot/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=duelservice.go -destination=mock_duelservice.go -package=duelservice

type Repo interface {
	Create(ctx context.Context, duel *domain.Duel) (*domain.Duel, error)
	GetByID(ctx context.Context, id int64) (*domain.Duel, error)
	GetForUpdate(ctx context.Context, id int64) (*domain.Duel, error)
	ListOpen(ctx context.Context, limit int) ([]domain.Duel, error)
	Finish(ctx context.Context, id, opponentID, winnerID int64) error
	Cancel(ctx context.Context, id int64) error
}

type UserRepo interface {
	Debit(ctx context.Context, userID int64, amount float64) error
	Credit(ctx context.Context, userID int64, amount float64) error
	AddStars(ctx context.Context, userID int64, amount float64) error
}

type LedgerRepo interface {
	Add(ctx context.Context, tx *domain.Transaction) error
}

var (
	ErrDuelNotFound = errors.New("duel not found")
	ErrDuelClosed   = errors.New("duel is over")
	ErrOwnDuel      = errors.New("can't join own duel")
	ErrNotCreator   = errors.New("duel belongs to another user")
)

type Service struct {
	repo      Repo
	users     UserRepo
	ledger    LedgerRepo
	txManager pg.TXManager
	randInt   func(n int) int
}

func New(repo Repo, users UserRepo, ledger LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		users:     users,
		ledger:    ledger,
		txManager: txManager,
		randInt:   rand.IntN,
	}
}

// Create puts the stake on hold and opens a duel anyone else can join.
func (s *Service) Create(ctx context.Context, userID int64, stake float64) (*domain.Duel, error) {
	if !validate.IsAmount(stake) {
		return nil, domain.ErrInvalidAmount
	}

	var duel *domain.Duel
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.users.Debit(ctx, userID, stake); err != nil {
			return err
		}
		var err error
		if duel, err = s.repo.Create(ctx, &domain.Duel{CreatorID: userID, Stake: stake}); err != nil {
			return err
		}
		return s.ledger.Add(ctx, &domain.Transaction{
			UserID:      userID,
			Amount:      -stake,
			Type:        domain.TxDuel,
			Description: fmt.Sprintf("duel #%d stake", duel.ID),
		})
	})
	if err != nil {
		s.log("create", userID, 0, err)
		return nil, err
	}
	return duel, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Duel, error) {
	duel, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if duel == nil {
		return nil, ErrDuelNotFound
	}
	return duel, nil
}

func (s *Service) openDuel(ctx context.Context, id int64) (*domain.Duel, error) {
	duel, err := s.repo.GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if duel == nil {
		return nil, ErrDuelNotFound
	}
	if duel.Status != domain.DuelOpen {
		return nil, ErrDuelClosed
	}
	return duel, nil
}

// Join matches the stake, flips a coin and pays the whole pot to the winner.
func (s *Service) Join(ctx context.Context, userID, duelID int64) (*domain.Duel, error) {
	var duel *domain.Duel
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		if duel, err = s.openDuel(ctx, duelID); err != nil {
			return err
		}
		if duel.CreatorID == userID {
			return ErrOwnDuel
		}
		if err := s.users.Debit(ctx, userID, duel.Stake); err != nil {
			return err
		}
		if err := s.ledger.Add(ctx, &domain.Transaction{
			UserID:      userID,
			Amount:      -duel.Stake,
			Type:        domain.TxDuel,
			Description: fmt.Sprintf("duel #%d stake", duel.ID),
		}); err != nil {
			return err
		}

		winner := duel.CreatorID
		if s.randInt(2) == 1 {
			winner = userID
		}
		pot := duel.Stake * 2
		if err := s.repo.Finish(ctx, duel.ID, userID, winner); err != nil {
			return err
		}
		if err := s.users.Credit(ctx, winner, pot); err != nil {
			return err
		}
		if err := s.ledger.Add(ctx, &domain.Transaction{
			UserID:      winner,
			Amount:      pot,
			Type:        domain.TxDuel,
			Description: fmt.Sprintf("duel #%d won", duel.ID),
		}); err != nil {
			return err
		}

		duel.OpponentID = &userID
		duel.WinnerID = &winner
		duel.Status = domain.DuelFinished
		return nil
	})
	if err != nil {
		s.log("join", userID, duelID, err)
		return nil, err
	}
	return duel, nil
}

// Cancel closes the creator's open duel and gives the stake back.
func (s *Service) Cancel(ctx context.Context, userID, duelID int64) (*domain.Duel, error) {
	var duel *domain.Duel
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		if duel, err = s.openDuel(ctx, duelID); err != nil {
			return err
		}
		if duel.CreatorID != userID {
			return ErrNotCreator
		}
		if err := s.repo.Cancel(ctx, duel.ID); err != nil {
			return err
		}
		if err := s.users.AddStars(ctx, userID, duel.Stake); err != nil {
			return err
		}
		duel.Status = domain.DuelCancelled
		return s.ledger.Add(ctx, &domain.Transaction{
			UserID:      userID,
			Amount:      duel.Stake,
			Type:        domain.TxDuel,
			Description: fmt.Sprintf("duel #%d cancelled", duel.ID),
		})
	})
	if err != nil {
		s.log("cancel", userID, duelID, err)
		return nil, err
	}
	return duel, nil
}

func (s *Service) ListOpen(ctx context.Context, limit int) ([]domain.Duel, error) {
	return s.repo.ListOpen(ctx, limit)
}

func (s *Service) log(action string, userID, duelID int64, err error) {
	for _, expected := range []error{ErrDuelNotFound, ErrDuelClosed, ErrOwnDuel, ErrNotCreator, domain.ErrInsufficientFunds, domain.ErrInvalidAmount} {
		if errors.Is(err, expected) {
			return
		}
	}
	zap.L().Error("failed to "+action+" duel", zap.Int64("user_id", userID), zap.Int64("duel_id", duelID), zap.Error(err))
}
