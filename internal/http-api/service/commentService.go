package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"moviehub/internal/http-api/dto"
	"moviehub/internal/http-api/models"
	"moviehub/internal/http-api/repository"
	"moviehub/internal/moderation"
)

// ModerationClient is the slice of the classifier the write path needs.
type ModerationClient interface {
	Classify(ctx context.Context, text string, safer float64) (*moderation.Verdict, error)
}

type CommentService interface {
	CreateComment(ctx context.Context, movieID int64, author, text string) (*dto.CommentResponse, error)
	GetMovieComments(ctx context.Context, movieID int64) ([]dto.CommentResponse, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	movieRepo   repository.MovieRepository
	classifier  ModerationClient
	sensitivity float64
}

func NewCommentService(commentRepo repository.CommentRepository, movieRepo repository.MovieRepository, classifier ModerationClient, sensitivity float64) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		movieRepo:   movieRepo,
		classifier:  classifier,
		sensitivity: sensitivity,
	}
}

// CreateComment is the moderated write path: structural validation, then the
// classifier, then the policy decision, then at most one persist. The
// classifier call always sits on the critical path - there is no optimistic
// write with async moderation.
func (s *commentService) CreateComment(ctx context.Context, movieID int64, author, text string) (*dto.CommentResponse, error) {
	// structural validation never reaches the classifier or the store
	if movieID <= 0 {
		return nil, fmt.Errorf("%w: movie id is required", ErrValidation)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: comment text is required", ErrValidation)
	}

	// existence gate only needs the row's presence, not its associations
	exists, err := s.movieRepo.Exists(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMovieNotFound
	}

	verdict, err := s.classifier.Classify(ctx, text, s.sensitivity)
	if err != nil {
		// transport failure or unparseable verdict is a failure, never "safe"
		return nil, err
	}

	decision, err := moderation.Evaluate(verdict)
	if err != nil {
		return nil, err
	}
	if !decision.Safe {
		return nil, &RejectedError{Reason: decision.Reason, Message: decision.Message}
	}

	comment := &models.Comment{
		MovieID:   movieID,
		Author:    strings.TrimSpace(author),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if comment.Author == "" {
		comment.Author = models.AnonymousAuthor
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return dto.FromModelToCommentResponse(comment), nil
}

// GetMovieComments retrieves all comments for a movie, newest first.
func (s *commentService) GetMovieComments(ctx context.Context, movieID int64) ([]dto.CommentResponse, error) {
	comments, err := s.commentRepo.GetByMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, *dto.FromModelToCommentResponse(&comments[i]))
	}
	return responses, nil
}
