package marketrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/starsbot/internal/domain"
	"github.com/GlebRadaev/starsbot/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	lotColumns = `id, seller_id, item, price, status, buyer_id, created_at, closed_at`

	queryCreate = `
		INSERT INTO market_lots (seller_id, item, price, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	queryGetForUpdate = `SELECT ` + lotColumns + ` FROM market_lots WHERE id = $1 FOR UPDATE`
	queryListOpen     = `SELECT ` + lotColumns + ` FROM market_lots WHERE status = 'open' ORDER BY created_at DESC LIMIT $1`
	queryClose        = `
		UPDATE market_lots SET status = $2, buyer_id = $3, closed_at = NOW()
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

func scanLot(row pgx.Row) (*domain.MarketLot, error) {
	var lot domain.MarketLot
	err := row.Scan(&lot.ID, &lot.SellerID, &lot.Item, &lot.Price, &lot.Status, &lot.BuyerID, &lot.CreatedAt, &lot.ClosedAt)
	if err != nil {
		return nil, err
	}
	return &lot, nil
}

func (r *Repository) Create(ctx context.Context, lot *domain.MarketLot) (*domain.MarketLot, error) {
	lot.Status = domain.LotOpen
	err := r.db.QueryRow(ctx, queryCreate, lot.SellerID, lot.Item, lot.Price, lot.Status).Scan(&lot.ID, &lot.CreatedAt)
	if err != nil {
		zap.L().Error("can't save market lot", zap.Error(err))
		return nil, err
	}
	return lot, nil
}

// GetForUpdate returns nil, nil for an unknown lot.
func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*domain.MarketLot, error) {
	lot, err := scanLot(r.db.QueryRow(ctx, queryGetForUpdate, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get market lot", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return lot, nil
}

func (r *Repository) ListOpen(ctx context.Context, limit int) ([]domain.MarketLot, error) {
	rows, err := r.db.Query(ctx, queryListOpen, limit)
	if err != nil {
		zap.L().Error("failed to fetch market lots", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var lots []domain.MarketLot
	for rows.Next() {
		lot, err := scanLot(rows)
		if err != nil {
			zap.L().Error("failed to scan market lot row", zap.Error(err))
			return nil, err
		}
		lots = append(lots, *lot)
	}
	return lots, rows.Err()
}

// Close finalizes an open lot. buyerID is nil for cancellations.
func (r *Repository) Close(ctx context.Context, id int64, status domain.LotStatus, buyerID *int64) error {
	tag, err := r.db.Exec(ctx, queryClose, id, status, buyerID)
	if err != nil {
		zap.L().Error("failed to close market lot", zap.Int64("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyProcessed
	}
	return nil
}
