package postservice

import (
	"context"
	"errors"
	"strings"

	"github.com/GlebRadaev/starsbot/internal/domain"
	"github.com/GlebRadaev/starsbot/internal/pg"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=postservice.go -destination=mock_postservice.go -package=postservice

type Repo interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	MarkViewed(ctx context.Context, userID int64, postID string) (bool, error)
}

type UserRepo interface {
	Credit(ctx context.Context, userID int64, amount float64) error
	ListIDs(ctx context.Context) ([]int64, error)
}

type LedgerRepo interface {
	Add(ctx context.Context, tx *domain.Transaction) error
}

type Settings interface {
	Economy(ctx context.Context) (*domain.Economy, error)
}

var (
	ErrEmptyPost      = errors.New("post text is empty")
	ErrPostNotFound   = errors.New("post not found")
	ErrAlreadyClaimed = errors.New("post reward already claimed")
)

type Service struct {
	repo      Repo
	users     UserRepo
	ledger    LedgerRepo
	settings  Settings
	txManager pg.TXManager
	newID     func() string
}

func New(repo Repo, users UserRepo, ledger LedgerRepo, settings Settings, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		users:     users,
		ledger:    ledger,
		settings:  settings,
		txManager: txManager,
		newID:     uuid.NewString,
	}
}

// Create stores a post priced with the current post reward.
func (s *Service) Create(ctx context.Context, adminID int64, text string) (*domain.Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyPost
	}
	economy, err := s.settings.Economy(ctx)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		ID:        s.newID(),
		Text:      text,
		Reward:    economy.PostReward,
		CreatedBy: adminID,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Recipients lists every registered user.
func (s *Service) Recipients(ctx context.Context) ([]int64, error) {
	return s.users.ListIDs(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Post, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrPostNotFound
	}
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// Claim pays the post reward once per user.
func (s *Service) Claim(ctx context.Context, userID int64, postID string) (*domain.Post, error) {
	var post *domain.Post
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		if post, err = s.Get(ctx, postID); err != nil {
			return err
		}
		fresh, err := s.repo.MarkViewed(ctx, userID, post.ID)
		if err != nil {
			return err
		}
		if !fresh {
			return ErrAlreadyClaimed
		}
		if post.Reward <= 0 {
			return nil
		}
		if err := s.users.Credit(ctx, userID, post.Reward); err != nil {
			return err
		}
		return s.ledger.Add(ctx, &domain.Transaction{
			UserID:      userID,
			Amount:      post.Reward,
			Type:        domain.TxPost,
			Description: "post " + post.ID,
		})
	})
	if err != nil {
		if !errors.Is(err, ErrPostNotFound) && !errors.Is(err, ErrAlreadyClaimed) {
			zap.L().Error("failed to claim post reward", zap.Int64("user_id", userID), zap.String("post_id", postID), zap.Error(err))
		}
		return nil, err
	}
	return post, nil
}
