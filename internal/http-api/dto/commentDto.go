package dto

import (
	"time"

	"moviehub/internal/http-api/models"
)

// CreateCommentDTO for submitting a comment. Author is optional; the write
// path substitutes the anonymous sentinel. Text presence is checked by the
// service so that structural validation stays in one place.
type CreateCommentDTO struct {
	Author string `json:"author" binding:"max=120"`
	Text   string `json:"text" binding:"max=5000"`
}

// CommentResponse for returning comment information
type CommentResponse struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// FromModelToCommentResponse converts a Comment model to CommentResponse DTO
func FromModelToCommentResponse(comment *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:        comment.ID,
		Author:    comment.Author,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}
}
