package repository

import (
	"context"
	"fmt"

	"moviehub/internal/http-api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByMovie(ctx context.Context, movieID int64) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create persists a new comment. The store assigns the identity.
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

// GetByMovie retrieves all comments for a movie, newest first.
func (r *commentRepository) GetByMovie(ctx context.Context, movieID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("%w: get comments: %v", ErrStoreUnavailable, err)
	}
	return comments, nil
}
