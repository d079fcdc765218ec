package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"moviehub/internal/http-api/dto"
	"moviehub/internal/http-api/repository"
	"moviehub/internal/http-api/service"
	"moviehub/internal/moderation"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// RegisterRoutes registers comment-related routes
func (h *CommentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	movieComments := rg.Group("/movies/:movie_id/comments")
	{
		movieComments.GET("", h.ListByMovie)
		movieComments.POST("", h.Create)
	}
}

// Create handles POST /api/movies/:movie_id/comments
// The submission passes through the moderation gate; only accepted text is
// persisted. Rejection is an expected outcome, not a server fault.
func (h *CommentHandler) Create(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid movie id"})
		return
	}

	var req dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	comment, err := h.commentService.CreateComment(ctx, movieID, req.Author, req.Text)
	if err != nil {
		var rejected *service.RejectedError
		switch {
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		case errors.Is(err, service.ErrMovieNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
		case errors.As(err, &rejected):
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   rejected.Message,
				"reason":  rejected.Reason,
			})
		case errors.Is(err, moderation.ErrUnavailable), errors.Is(err, moderation.ErrInvalidResponse):
			slog.Error("moderation upstream failed", "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "moderation service unavailable"})
		default:
			// a failed store write must never look like success
			slog.Error("comment write failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not save comment"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "comment": comment})
}

// ListByMovie handles GET /api/movies/:movie_id/comments
// Comments come back newest first. A store failure degrades to an empty list
// to keep browsing resilient.
func (h *CommentHandler) ListByMovie(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	comments, err := h.commentService.GetMovieComments(ctx, movieID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreUnavailable) {
			slog.Warn("comment listing degraded to empty result", "error", err)
			c.JSON(http.StatusOK, gin.H{"comments": []dto.CommentResponse{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}
