package duelrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/starsbot/internal/domain"
	"github.com/GlebRadaev/starsbot/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	duelColumns = `id, creator_id, opponent_id, stake, status, winner_id, created_at, finished_at`

	queryCreate = `
		INSERT INTO duels (creator_id, stake, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	queryGetByID      = `SELECT ` + duelColumns + ` FROM duels WHERE id = $1`
	queryGetForUpdate = queryGetByID + ` FOR UPDATE`
	queryListOpen     = `SELECT ` + duelColumns + ` FROM duels WHERE status = 'open' ORDER BY created_at DESC LIMIT $1`
	queryFinish       = `
		UPDATE duels SET status = 'finished', opponent_id = $2, winner_id = $3, finished_at = NOW()
		WHERE id = $1 AND status = 'open'`
	queryCancel = `
		UPDATE duels SET status = 'cancelled', finished_at = NOW()
		WHERE id = $1 AND status = 'open'`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanDuel(row pgx.Row) (*domain.Duel, error) {
	var d domain.Duel
	err := row.Scan(&d.ID, &d.CreatorID, &d.OpponentID, &d.Stake, &d.Status, &d.WinnerID, &d.CreatedAt, &d.FinishedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Create(ctx context.Context, duel *domain.Duel) (*domain.Duel, error) {
	duel.Status = domain.DuelOpen
	err := r.db.QueryRow(ctx, queryCreate, duel.CreatorID, duel.Stake, duel.Status).Scan(&duel.ID, &duel.CreatedAt)
	if err != nil {
		zap.L().Error("can't save duel", zap.Error(err))
		return nil, err
	}
	return duel, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Duel, error) {
	return r.get(ctx, queryGetByID, id)
}

// GetForUpdate returns nil, nil for an unknown duel.
func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*domain.Duel, error) {
	return r.get(ctx, queryGetForUpdate, id)
}

func (r *Repository) get(ctx context.Context, query string, id int64) (*domain.Duel, error) {
	duel, err := scanDuel(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get duel", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return duel, nil
}

func (r *Repository) ListOpen(ctx context.Context, limit int) ([]domain.Duel, error) {
	rows, err := r.db.Query(ctx, queryListOpen, limit)
	if err != nil {
		zap.L().Error("failed to fetch duels", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var duels []domain.Duel
	for rows.Next() {
		duel, err := scanDuel(rows)
		if err != nil {
			zap.L().Error("failed to scan duel row", zap.Error(err))
			return nil, err
		}
		duels = append(duels, *duel)
	}
	return duels, rows.Err()
}

func (r *Repository) Finish(ctx context.Context, id, opponentID, winnerID int64) error {
	return r.close(ctx, queryFinish, id, opponentID, winnerID)
}

func (r *Repository) Cancel(ctx context.Context, id int64) error {
	return r.close(ctx, queryCancel, id)
}

func (r *Repository) close(ctx context.Context, query string, args ...any) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to close duel", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyProcessed
	}
	return nil
}
