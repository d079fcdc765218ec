package repository

import (
	"context"
	"fmt"

	"moviehub/internal/http-api/models"

	"gorm.io/gorm"
)

type GenreRepository interface {
	CountByGenre(ctx context.Context, yearFrom, yearTo *int) ([]models.GenreCount, error)
}

type GenreRepo struct {
	db *gorm.DB
}

func NewGenreRepo(db *gorm.DB) *GenreRepo {
	return &GenreRepo{db: db}
}

// CountByGenre maps each genre name to the number of movies carrying it,
// ordered by name ascending. Both year bounds narrow the count when present;
// genres with no matching movie do not appear.
func (r *GenreRepo) CountByGenre(ctx context.Context, yearFrom, yearTo *int) ([]models.GenreCount, error) {
	q := r.db.WithContext(ctx).
		Table("genres").
		Select("genres.name AS name, COUNT(DISTINCT mg.movie_id) AS count").
		Joins("JOIN movie_genres mg ON mg.genre_id = genres.id")

	if yearFrom != nil && yearTo != nil {
		q = q.Joins("JOIN movies m ON m.id = mg.movie_id").
			Where("m.year BETWEEN ? AND ?", *yearFrom, *yearTo)
	}

	var rows []models.GenreCount
	err := q.Group("genres.name").Order("genres.name ASC").Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: count genres: %v", ErrStoreUnavailable, err)
	}
	return rows, nil
}
