package withdrawalrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/starsbot/internal/domain"
	"github.com/GlebRadaev/starsbot/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	withdrawalColumns = `id, user_id, amount, item, status, admin_id, message_id, created_at, updated_at`

	queryCreate = `
		INSERT INTO withdrawals (user_id, amount, item, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	queryGetForUpdate = `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE id = $1 FOR UPDATE`
	querySetStatus    = `
		UPDATE withdrawals SET status = $2, admin_id = $3, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'`
	queryAttachMessage = `UPDATE withdrawals SET message_id = $2 WHERE id = $1`
	queryListByUser    = `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`
	queryListPending   = `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE status = 'pending' ORDER BY created_at LIMIT $1`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanWithdrawal(row pgx.Row) (*domain.Withdrawal, error) {
	var wd domain.Withdrawal
	err := row.Scan(&wd.ID, &wd.UserID, &wd.Amount, &wd.Item, &wd.Status, &wd.AdminID, &wd.MessageID,
		&wd.CreatedAt, &wd.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &wd, nil
}

func (r *Repository) Create(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	if withdrawal.Status == "" {
		withdrawal.Status = domain.WithdrawalPending
	}
	err := r.db.QueryRow(ctx, queryCreate, withdrawal.UserID, withdrawal.Amount, withdrawal.Item, withdrawal.Status).
		Scan(&withdrawal.ID, &withdrawal.CreatedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) get(ctx context.Context, query string, id int64) (*domain.Withdrawal, error) {
	wd, err := scanWithdrawal(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get withdrawal", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return wd, nil
}

func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*domain.Withdrawal, error) {
	return r.get(ctx, queryGetForUpdate, id)
}

// SetStatus moves a pending request to its final status.
func (r *Repository) SetStatus(ctx context.Context, id int64, status domain.WithdrawalStatus, adminID int64) error {
	tag, err := r.db.Exec(ctx, querySetStatus, id, status, adminID)
	if err != nil {
		zap.L().Error("failed to update withdrawal status", zap.Int64("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyProcessed
	}
	return nil
}

func (r *Repository) AttachMessage(ctx context.Context, id int64, messageID int) error {
	if _, err := r.db.Exec(ctx, queryAttachMessage, id, messageID); err != nil {
		zap.L().Error("failed to attach admin message", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Withdrawal, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		wd, err := scanWithdrawal(rows)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, *wd)
	}
	return withdrawals, rows.Err()
}

func (r *Repository) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Withdrawal, error) {
	return r.list(ctx, queryListByUser, userID, limit)
}

func (r *Repository) ListPending(ctx context.Context, limit int) ([]domain.Withdrawal, error) {
	return r.list(ctx, queryListPending, limit)
}
