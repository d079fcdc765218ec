package repository

import (
	"context"
	"errors"
	"fmt"

	"moviehub/internal/http-api/models"

	"gorm.io/gorm"
)

// ErrStoreUnavailable wraps any store failure on the read path so callers can
// tell "no match" from "could not ask".
var ErrStoreUnavailable = errors.New("catalog store unavailable")

// browsePageSize is fixed; the browse interface does not accept a size.
const browsePageSize = 20

// BrowseQuery is a validated predicate set produced by the service's query
// builder. Genre is always present; nil year bounds mean "no year predicate".
type BrowseQuery struct {
	Genre    string
	YearFrom *int
	YearTo   *int
	Actor    string
	Language string
	Page     int
}

type MovieRepository interface {
	Browse(ctx context.Context, q BrowseQuery) ([]models.MovieSummary, error)
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
	Exists(ctx context.Context, id int64) (bool, error)
	SuggestActors(ctx context.Context, needle string, limit int) ([]string, error)
}

type MovieRepo struct {
	db *gorm.DB
}

func NewMovieRepo(db *gorm.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// Browse runs the catalog pipeline: match on the predicate set, collapse
// duplicate (poster, title) pairs keeping the lowest-id row, join the comment
// count without materializing comments, then sort and paginate. Sort order is
// comment count descending, year descending, id ascending as the final
// deterministic tie-break.
func (r *MovieRepo) Browse(ctx context.Context, q BrowseQuery) ([]models.MovieSummary, error) {
	db := r.db.WithContext(ctx)

	// match + dedup stage. DISTINCT ON keeps the first row per (poster, title)
	// in ORDER BY order, so ordering by id pins the representative.
	matched := db.Table("movies").
		Select("DISTINCT ON (movies.poster_url, movies.title) movies.*").
		Joins("JOIN movie_genres mg ON mg.movie_id = movies.id").
		Joins("JOIN genres g ON g.id = mg.genre_id").
		Where("g.name = ?", q.Genre).
		Order("movies.poster_url, movies.title, movies.id")

	if q.YearFrom != nil && q.YearTo != nil {
		matched = matched.Where("movies.year BETWEEN ? AND ?", *q.YearFrom, *q.YearTo)
	}
	if q.Actor != "" {
		matched = matched.Where(
			"EXISTS (SELECT 1 FROM movie_actors ma JOIN actors a ON a.id = ma.actor_id WHERE ma.movie_id = movies.id AND a.name ILIKE ?)",
			"%"+q.Actor+"%")
	}
	if q.Language != "" {
		matched = matched.Where(
			"EXISTS (SELECT 1 FROM movie_languages ml JOIN languages l ON l.id = ml.language_id WHERE ml.movie_id = movies.id AND l.name = ?)",
			q.Language)
	}

	// count-only join: cardinality per movie, never the comment rows
	counts := db.Table("comments").
		Select("movie_id, COUNT(*) AS comment_count").
		Group("movie_id")

	page := q.Page
	if page < 1 {
		page = 1
	}

	var list []models.MovieSummary
	err := db.Table("(?) AS m", matched).
		Select("m.id, m.title, m.poster_url, m.year, m.rating_score, m.rating_votes, COALESCE(cc.comment_count, 0) AS comment_count").
		Joins("LEFT JOIN (?) AS cc ON cc.movie_id = m.id", counts).
		Order("comment_count DESC, m.year DESC, m.id ASC").
		Limit(browsePageSize).
		Offset((page - 1) * browsePageSize).
		Scan(&list).Error
	if err != nil {
		return nil, fmt.Errorf("%w: browse movies: %v", ErrStoreUnavailable, err)
	}
	return list, nil
}

func (r *MovieRepo) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	var m models.Movie
	err := r.db.WithContext(ctx).
		Preload("Genres").
		Preload("Cast").
		Preload("Languages").
		First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: get movie: %v", ErrStoreUnavailable, err)
	}
	return &m, nil
}

// Exists reports whether a movie row with the given id is present. It is
// cheaper than GetByID because it loads no associations.
func (r *MovieRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).
		Model(&models.Movie{}).
		Select("count(*) > 0").
		Where("id = ?", id).
		Find(&exists).Error
	if err != nil {
		return false, fmt.Errorf("%w: movie exists: %v", ErrStoreUnavailable, err)
	}
	return exists, nil
}

// SuggestActors returns up to limit distinct cast names containing needle,
// case-insensitive. Order beyond the store's native one is not promised.
func (r *MovieRepo) SuggestActors(ctx context.Context, needle string, limit int) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Table("actors").
		Distinct("name").
		Where("name ILIKE ?", "%"+needle+"%").
		Limit(limit).
		Pluck("name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("%w: suggest actors: %v", ErrStoreUnavailable, err)
	}
	return names, nil
}
