package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"moviehub/internal/http-api/dto"
	"moviehub/internal/http-api/models"
	"moviehub/internal/http-api/repository"

	"gorm.io/gorm"
)

// actorSuggestionLimit caps autocomplete results.
const actorSuggestionLimit = 10

type MovieService interface {
	Browse(ctx context.Context, params dto.BrowseParams) ([]models.MovieSummary, error)
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
	SuggestActors(ctx context.Context, query string) ([]string, error)
}

type movieService struct {
	repo repository.MovieRepository
}

func NewMovieService(r repository.MovieRepository) MovieService {
	return &movieService{repo: r}
}

// BuildBrowseQuery turns raw request parameters into a validated query.
// It returns ok=false when no genre is given: the catalog is genre-gated and
// no query should run. Optional filters are permissive - a partial or
// malformed year range degrades to "no year filter" rather than an error,
// and a non-positive or unparseable page becomes page 1.
func BuildBrowseQuery(p dto.BrowseParams) (repository.BrowseQuery, bool) {
	genre := strings.TrimSpace(p.Genre)
	if genre == "" {
		return repository.BrowseQuery{}, false
	}

	q := repository.BrowseQuery{
		Genre:    genre,
		Actor:    strings.TrimSpace(p.Actor),
		Language: strings.TrimSpace(p.Language),
		Page:     1,
	}

	q.YearFrom, q.YearTo = parseYearRange(p.YearFrom, p.YearTo)

	if page, err := strconv.Atoi(strings.TrimSpace(p.Page)); err == nil && page >= 1 {
		q.Page = page
	}

	return q, true
}

// parseYearRange accepts the range only when both endpoints parse as integers
// and lower <= upper. Anything else drops the predicate entirely.
func parseYearRange(fromStr, toStr string) (*int, *int) {
	fromStr = strings.TrimSpace(fromStr)
	toStr = strings.TrimSpace(toStr)
	if fromStr == "" || toStr == "" {
		return nil, nil
	}
	from, err := strconv.Atoi(fromStr)
	if err != nil {
		return nil, nil
	}
	to, err := strconv.Atoi(toStr)
	if err != nil {
		return nil, nil
	}
	if from > to {
		return nil, nil
	}
	return &from, &to
}

func (s *movieService) Browse(ctx context.Context, params dto.BrowseParams) ([]models.MovieSummary, error) {
	q, ok := BuildBrowseQuery(params)
	if !ok {
		// genre-gated: browsing without a genre never hits the store
		return []models.MovieSummary{}, nil
	}
	return s.repo.Browse(ctx, q)
}

func (s *movieService) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *movieService) SuggestActors(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []string{}, nil
	}
	return s.repo.SuggestActors(ctx, query, actorSuggestionLimit)
}
