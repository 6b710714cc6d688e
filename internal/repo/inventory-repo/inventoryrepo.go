package inventoryrepo

import (
	"context"

	"github.com/GlebRadaev/starsbot/internal/domain"
	"github.com/GlebRadaev/starsbot/internal/pg"
	"go.uber.org/zap"
)

const (
	queryAdd = `
		INSERT INTO inventory (user_id, item, quantity) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, item) DO UPDATE SET quantity = inventory.quantity + EXCLUDED.quantity`
	queryRemove = `
		UPDATE inventory SET quantity = quantity - 1
		WHERE user_id = $1 AND item = $2 AND quantity > 0`
	queryList = `
		SELECT user_id, item, quantity FROM inventory
		WHERE user_id = $1 AND quantity > 0 ORDER BY item`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Add(ctx context.Context, userID int64, item string, quantity int) error {
	if _, err := r.db.Exec(ctx, queryAdd, userID, item, quantity); err != nil {
		zap.L().Error("failed to add inventory item", zap.Int64("user_id", userID), zap.String("item", item), zap.Error(err))
		return err
	}
	return nil
}

// Remove takes one unit of item, failing with ErrItemNotOwned when there is none.
func (r *Repository) Remove(ctx context.Context, userID int64, item string) error {
	tag, err := r.db.Exec(ctx, queryRemove, userID, item)
	if err != nil {
		zap.L().Error("failed to remove inventory item", zap.Int64("user_id", userID), zap.String("item", item), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotOwned
	}
	return nil
}

func (r *Repository) List(ctx context.Context, userID int64) ([]domain.InventoryItem, error) {
	rows, err := r.db.Query(ctx, queryList, userID)
	if err != nil {
		zap.L().Error("failed to fetch inventory", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		var it domain.InventoryItem
		if err := rows.Scan(&it.UserID, &it.Item, &it.Quantity); err != nil {
			zap.L().Error("failed to scan inventory row", zap.Error(err))
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
