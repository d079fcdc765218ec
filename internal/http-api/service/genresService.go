package service

import (
	"context"

	"moviehub/internal/http-api/models"
	"moviehub/internal/http-api/repository"
)

type GenreService interface {
	Counts(ctx context.Context, yearFrom, yearTo string) ([]models.GenreCount, error)
}

type genreService struct {
	repo repository.GenreRepository
}

func NewGenreService(r repository.GenreRepository) GenreService {
	return &genreService{repo: r}
}

// Counts returns movie counts per genre. The year range follows the same
// drop-on-invalid policy as the browse filter.
func (s *genreService) Counts(ctx context.Context, yearFrom, yearTo string) ([]models.GenreCount, error) {
	from, to := parseYearRange(yearFrom, yearTo)
	return s.repo.CountByGenre(ctx, from, to)
}
