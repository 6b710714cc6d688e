package ledgerrepo

import (
	"context"

	"github.com/GlebRadaev/starsbot/internal/domain"
	"github.com/GlebRadaev/starsbot/internal/pg"
	"go.uber.org/zap"
)

const (
	queryAdd = `
		INSERT INTO transactions (user_id, amount, type, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	queryListByUser = `
		SELECT id, user_id, amount, type, description, created_at
		FROM transactions WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`
)

// Repository is the append-only journal of balance changes.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Add(ctx context.Context, tx *domain.Transaction) error {
	err := r.db.QueryRow(ctx, queryAdd, tx.UserID, tx.Amount, tx.Type, tx.Description).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Int64("user_id", tx.UserID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, queryListByUser, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Type, &tx.Description, &tx.CreatedAt); err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
