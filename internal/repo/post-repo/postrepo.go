package postrepo

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
		INSERT INTO posts (id, text, reward, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`
	queryGetByID = `SELECT id, text, reward, created_by, created_at FROM posts WHERE id = $1`
	queryMarkViewed = `
		INSERT INTO post_views (user_id, post_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, post *domain.Post) error {
	err := r.db.QueryRow(ctx, queryCreate, post.ID, post.Text, post.Reward, post.CreatedBy).Scan(&post.CreatedAt)
	if err != nil {
		zap.L().Error("can't save post", zap.Error(err))
		return err
	}
	return nil
}

// GetByID returns nil, nil for an unknown post.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	var p domain.Post
	err := r.db.QueryRow(ctx, queryGetByID, id).Scan(&p.ID, &p.Text, &p.Reward, &p.CreatedBy, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get post", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// MarkViewed reports false when the user already claimed the post.
func (r *Repository) MarkViewed(ctx context.Context, userID int64, postID string) (bool, error) {
	tag, err := r.db.Exec(ctx, queryMarkViewed, userID, postID)
	if err != nil {
		zap.L().Error("failed to mark post viewed", zap.String("post_id", postID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
