package grouprepo

import (
	"context"

	"github.com/GlebRadaev/starsbot/internal/pg"
	"go.uber.org/zap"
)

const queryClaim = `
	INSERT INTO group_rewards (chat_id, user_id) VALUES ($1, $2)
	ON CONFLICT DO NOTHING`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Claim reports true the first time a user is rewarded for a chat.
func (r *Repository) Claim(ctx context.Context, chatID, userID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, queryClaim, chatID, userID)
	if err != nil {
		zap.L().Error("failed to claim group reward", zap.Int64("chat_id", chatID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
