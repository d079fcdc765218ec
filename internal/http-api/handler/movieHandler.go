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

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	svc service.MovieService
}

func NewMovieHandler(svc service.MovieService) *MovieHandler {
	return &MovieHandler{svc: svc}
}

// RegisterRoutes registers catalog browse routes
func (h *MovieHandler) RegisterRoutes(rg *gin.RouterGroup) {
	movies := rg.Group("/movies")
	{
		movies.GET("", h.Browse)
		movies.GET("/:movie_id", h.Get)
	}

	rg.GET("/actors", h.SuggestActors)
}

// Browse handles GET /api/movies?genre=&yearFrom=&yearTo=&actor=&language=&page=
// Browsing is non-critical: a store failure degrades to an empty page rather
// than an error response.
func (h *MovieHandler) Browse(c *gin.Context) {
	params := dto.BrowseParams{
		Genre:    c.Query("genre"),
		YearFrom: c.Query("yearFrom"),
		YearTo:   c.Query("yearTo"),
		Actor:    c.Query("actor"),
		Language: c.Query("language"),
		Page:     c.Query("page"),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	list, err := h.svc.Browse(ctx, params)
	if err != nil {
		if errors.Is(err, repository.ErrStoreUnavailable) {
			slog.Warn("browse degraded to empty result", "error", err)
			c.JSON(http.StatusOK, gin.H{"movies": []dto.MovieSummaryResponse{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.MovieSummaryResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, dto.FromSummary(m))
	}
	c.JSON(http.StatusOK, gin.H{"movies": resp})
}

// Get handles GET /api/movies/:movie_id
func (h *MovieHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	movie, err := h.svc.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToResponse(*movie))
}

// SuggestActors handles GET /api/actors?query=
func (h *MovieHandler) SuggestActors(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	actors, err := h.svc.SuggestActors(ctx, c.Query("query"))
	if err != nil {
		if errors.Is(err, repository.ErrStoreUnavailable) {
			slog.Warn("actor suggestions degraded to empty result", "error", err)
			c.JSON(http.StatusOK, gin.H{"actors": []string{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"actors": actors})
}
