package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"moviehub/internal/http-api/dto"
	"moviehub/internal/http-api/repository"
	"moviehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type GenreHandler struct {
	svc service.GenreService
}

func NewGenreHandler(svc service.GenreService) *GenreHandler {
	return &GenreHandler{svc: svc}
}

func (h *GenreHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
}

// List handles GET /api/genres?yearFrom=&yearTo=
// Output is ordered by genre name ascending.
func (h *GenreHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	counts, err := h.svc.Counts(ctx, c.Query("yearFrom"), c.Query("yearTo"))
	if err != nil {
		if errors.Is(err, repository.ErrStoreUnavailable) {
			slog.Warn("genre listing degraded to empty result", "error", err)
			c.JSON(http.StatusOK, []dto.GenreCountResponse{})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.GenreCountResponse, 0, len(counts))
	for _, g := range counts {
		resp = append(resp, dto.GenreCountFromModel(g))
	}
	c.JSON(http.StatusOK, resp)
}
