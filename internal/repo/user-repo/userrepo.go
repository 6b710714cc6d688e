package userrepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/starsbot/internal/domain"
	"github.com/GlebRadaev/starsbot/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	userColumns = `user_id, username, first_name, last_name, stars, referrals, total_earned,
		total_withdrawn, referred_by, ref_code, last_daily, last_luck, created_at`

	queryGetByID      = `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	queryGetForUpdate = `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 FOR UPDATE`

	queryUpsert = `
		INSERT INTO users (user_id, username, first_name, last_name, ref_code)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET username = EXCLUDED.username, first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name
		RETURNING (xmax = 0) AS created, stars, referrals, total_earned, total_withdrawn,
			referred_by, last_daily, last_luck, created_at`

	queryCredit   = `UPDATE users SET stars = stars + $2, total_earned = total_earned + $2 WHERE user_id = $1`
	queryAddStars = `UPDATE users SET stars = stars + $2 WHERE user_id = $1`
	queryDebit    = `UPDATE users SET stars = stars - $2 WHERE user_id = $1 AND stars >= $2`
	queryWithdraw = `UPDATE users SET stars = stars - $2, total_withdrawn = total_withdrawn + $2
		WHERE user_id = $1 AND stars >= $2`
	queryRefund = `UPDATE users SET stars = stars + $2, total_withdrawn = GREATEST(total_withdrawn - $2, 0)
		WHERE user_id = $1`

	querySetLastDaily       = `UPDATE users SET last_daily = $2 WHERE user_id = $1`
	querySetLastLuck        = `UPDATE users SET last_luck = $2 WHERE user_id = $1`
	queryIncrementReferrals = `UPDATE users SET referrals = referrals + 1 WHERE user_id = $1`
	querySetReferrer        = `UPDATE users SET referred_by = $2 WHERE user_id = $1 AND referred_by IS NULL`

	queryTop     = `SELECT ` + userColumns + ` FROM users ORDER BY stars DESC, user_id LIMIT $1`
	queryListIDs = `SELECT user_id FROM users ORDER BY user_id`

	queryStats = `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COALESCE(SUM(stars), 0) FROM users),
			(SELECT COALESCE(SUM(amount), 0) FROM withdrawals WHERE status = 'approved'),
			(SELECT COUNT(*) FROM withdrawals WHERE status = 'pending')`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Stars, &u.Referrals, &u.TotalEarned,
		&u.TotalWithdrawn, &u.ReferredBy, &u.RefCode, &u.LastDaily, &u.LastLuck, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) get(ctx context.Context, query string, userID int64) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get user", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	return user, nil
}

// GetByID returns nil, nil when the user is unknown.
func (r *Repository) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	return r.get(ctx, queryGetByID, userID)
}

// GetForUpdate locks the user row until the surrounding transaction ends.
func (r *Repository) GetForUpdate(ctx context.Context, userID int64) (*domain.User, error) {
	return r.get(ctx, queryGetForUpdate, userID)
}

// Upsert creates the user or refreshes the profile fields of an existing one.
// The returned flag is true when the row was inserted.
func (r *Repository) Upsert(ctx context.Context, user *domain.User) (*domain.User, bool, error) {
	var created bool
	user.RefCode = domain.RefCodeFor(user.ID)
	err := r.db.QueryRow(ctx, queryUpsert, user.ID, user.Username, user.FirstName, user.LastName, user.RefCode).
		Scan(&created, &user.Stars, &user.Referrals, &user.TotalEarned, &user.TotalWithdrawn,
			&user.ReferredBy, &user.LastDaily, &user.LastLuck, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Int64("user_id", user.ID), zap.Error(err))
		return nil, false, err
	}
	return user, created, nil
}

func (r *Repository) exec(ctx context.Context, msg string, missing error, query string, args ...any) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		zap.L().Error(msg, zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 && missing != nil {
		return missing
	}
	return nil
}

// Credit adds earned stars to the balance and to total_earned.
func (r *Repository) Credit(ctx context.Context, userID int64, amount float64) error {
	return r.exec(ctx, "failed to credit user", domain.ErrUserNotFound, queryCredit, userID, amount)
}

// AddStars returns stars to the balance without counting them as earned.
func (r *Repository) AddStars(ctx context.Context, userID int64, amount float64) error {
	return r.exec(ctx, "failed to add stars", domain.ErrUserNotFound, queryAddStars, userID, amount)
}

// Debit fails with ErrInsufficientFunds unless the balance covers amount.
func (r *Repository) Debit(ctx context.Context, userID int64, amount float64) error {
	return r.exec(ctx, "failed to debit user", domain.ErrInsufficientFunds, queryDebit, userID, amount)
}

// Withdraw debits like Debit and also bumps total_withdrawn.
func (r *Repository) Withdraw(ctx context.Context, userID int64, amount float64) error {
	return r.exec(ctx, "failed to withdraw stars", domain.ErrInsufficientFunds, queryWithdraw, userID, amount)
}

// Refund reverts a Withdraw.
func (r *Repository) Refund(ctx context.Context, userID int64, amount float64) error {
	return r.exec(ctx, "failed to refund stars", domain.ErrUserNotFound, queryRefund, userID, amount)
}

func (r *Repository) SetLastDaily(ctx context.Context, userID int64, at time.Time) error {
	return r.exec(ctx, "failed to set last daily", domain.ErrUserNotFound, querySetLastDaily, userID, at)
}

func (r *Repository) SetLastLuck(ctx context.Context, userID int64, at time.Time) error {
	return r.exec(ctx, "failed to set last luck", domain.ErrUserNotFound, querySetLastLuck, userID, at)
}

func (r *Repository) IncrementReferrals(ctx context.Context, userID int64) error {
	return r.exec(ctx, "failed to increment referrals", domain.ErrUserNotFound, queryIncrementReferrals, userID)
}

// SetReferrer is a no-op for users that already have a referrer.
func (r *Repository) SetReferrer(ctx context.Context, userID, referrerID int64) error {
	return r.exec(ctx, "failed to set referrer", nil, querySetReferrer, userID, referrerID)
}

func (r *Repository) Top(ctx context.Context, limit int) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, queryTop, limit)
	if err != nil {
		zap.L().Error("failed to fetch top users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("failed to scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (r *Repository) ListIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.Query(ctx, queryListIDs)
	if err != nil {
		zap.L().Error("failed to fetch user ids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("failed to scan user id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *Repository) Stats(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats
	err := r.db.QueryRow(ctx, queryStats).
		Scan(&stats.TotalUsers, &stats.TotalStars, &stats.TotalWithdrawn, &stats.PendingWithdrawals)
	if err != nil {
		zap.L().Error("failed to collect stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
