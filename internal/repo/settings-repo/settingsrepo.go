package settingsrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/starsbot/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	queryGet = `SELECT value FROM settings WHERE key = $1`
	queryAll = `SELECT key, value FROM settings`
	querySet = `
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	queryDelete = `DELETE FROM settings WHERE key = $1`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Get reports ok=false when the key has never been stored.
func (r *Repository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	if err := r.db.QueryRow(ctx, queryGet, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		zap.L().Error("failed to read setting", zap.String("key", key), zap.Error(err))
		return "", false, err
	}
	return value, true, nil
}

func (r *Repository) All(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.Query(ctx, queryAll)
	if err != nil {
		zap.L().Error("failed to read settings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			zap.L().Error("failed to scan setting row", zap.Error(err))
			return nil, err
		}
		settings[key] = value
	}
	return settings, rows.Err()
}

func (r *Repository) Set(ctx context.Context, key, value string) error {
	if _, err := r.db.Exec(ctx, querySet, key, value); err != nil {
		zap.L().Error("failed to store setting", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.Exec(ctx, queryDelete, key); err != nil {
		zap.L().Error("failed to delete setting", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
