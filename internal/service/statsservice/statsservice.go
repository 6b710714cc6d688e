package statsservice

import (
	"context"

	"github.com/GlebRadaev/starsbot/internal/domain"
)

//go:generate mockgen -source=statsservice.go -destination=mock_statsservice.go -package=statsservice

type Repo interface {
	Stats(ctx context.Context) (*domain.Stats, error)
}

type Settings interface {
	Boost(ctx context.Context) (*domain.Boost, error)
}

type Service struct {
	repo     Repo
	settings Settings
}

func New(repo Repo, settings Settings) *Service {
	return &Service{
		repo:     repo,
		settings: settings,
	}
}

type Summary struct {
	domain.Stats
	Boost *domain.Boost
}

// Stats reports the aggregates straight from the database.
func (s *Service) Stats(ctx context.Context) (*domain.Stats, error) {
	return s.repo.Stats(ctx)
}

// Summary adds the running boost, if any, to the totals.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	boost, err := s.settings.Boost(ctx)
	if err != nil {
		return nil, err
	}
	return &Summary{Stats: *stats, Boost: boost}, nil
}
