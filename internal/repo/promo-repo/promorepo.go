package promorepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/starsbot/internal/domain"
	"github.com/GlebRadaev/starsbot/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	queryCreate = `
		INSERT INTO promo_codes (code, reward, max_uses, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`
	queryGetForUpdate = `
		SELECT code, reward, max_uses, uses, expires_at, created_at
		FROM promo_codes WHERE code = $1 FOR UPDATE`
	queryActivate = `
		INSERT INTO promo_activations (code, user_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`
	queryIncrementUses = `UPDATE promo_codes SET uses = uses + 1 WHERE code = $1`
)

// ErrDuplicateCode is returned by Create when the code is taken.
var ErrDuplicateCode = errors.New("promo code already exists")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, promo *domain.PromoCode) error {
	err := r.db.QueryRow(ctx, queryCreate, promo.Code, promo.Reward, promo.MaxUses, promo.ExpiresAt).Scan(&promo.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return ErrDuplicateCode
		}
		zap.L().Error("can't save promo code", zap.String("code", promo.Code), zap.Error(err))
		return err
	}
	return nil
}

// GetForUpdate returns nil, nil for an unknown code.
func (r *Repository) GetForUpdate(ctx context.Context, code string) (*domain.PromoCode, error) {
	var p domain.PromoCode
	err := r.db.QueryRow(ctx, queryGetForUpdate, code).
		Scan(&p.Code, &p.Reward, &p.MaxUses, &p.Uses, &p.ExpiresAt, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get promo code", zap.String("code", code), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// Activate records the activation and reports false when the user already used the code.
func (r *Repository) Activate(ctx context.Context, code string, userID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, queryActivate, code, userID)
	if err != nil {
		zap.L().Error("failed to activate promo code", zap.String("code", code), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) IncrementUses(ctx context.Context, code string) error {
	if _, err := r.db.Exec(ctx, queryIncrementUses, code); err != nil {
		zap.L().Error("failed to count promo usage", zap.String("code", code), zap.Error(err))
		return err
	}
	return nil
}
