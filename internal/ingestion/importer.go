// Package ingestion loads a movie dataset file into the catalog tables.
// It is run offline by cmd/catalog-import, never by the API process.
package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"moviehub/internal/http-api/models"

	"gorm.io/gorm"
)

// RatingRecord is an external rating pair as it appears in the dataset.
type RatingRecord struct {
	Score float64 `json:"score"`
	Votes int     `json:"votes"`
}

// MovieRecord is one dataset entry.
type MovieRecord struct {
	Title     string        `json:"title"`
	Poster    string        `json:"poster"`
	Year      int           `json:"year"`
	Genres    []string      `json:"genres"`
	Cast      []string      `json:"cast"`
	Languages []string      `json:"languages"`
	Rating    *RatingRecord `json:"rating,omitempty"`
}

type Importer struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewImporter(db *gorm.DB, logger *slog.Logger) *Importer {
	return &Importer{db: db, logger: logger}
}

// ImportFile reads a JSON dataset and imports it in one transaction.
func (imp *Importer) ImportFile(ctx context.Context, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	records, err := DecodeRecords(file)
	if err != nil {
		return 0, err
	}
	return imp.Import(ctx, records)
}

// DecodeRecords parses a JSON array of movie records.
func DecodeRecords(r io.Reader) ([]MovieRecord, error) {
	var records []MovieRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	return records, nil
}

// Import writes the records to the catalog. Titleless records are skipped,
// tag names are deduplicated case-sensitively and reused across movies.
func (imp *Importer) Import(ctx context.Context, records []MovieRecord) (int, error) {
	imported := 0

	err := imp.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		genres := map[string]models.Genre{}
		actors := map[string]models.Actor{}
		languages := map[string]models.Language{}

		for _, rec := range records {
			title := strings.TrimSpace(rec.Title)
			if title == "" {
				imp.logger.Warn("skipping record without title")
				continue
			}

			movie := models.Movie{
				Title: title,
				Year:  rec.Year,
			}
			if p := strings.TrimSpace(rec.Poster); p != "" {
				movie.PosterURL = &p
			}
			if rec.Rating != nil {
				score, votes := rec.Rating.Score, rec.Rating.Votes
				movie.RatingScore = &score
				movie.RatingVotes = &votes
			}

			for _, name := range uniqueNames(rec.Genres) {
				g, ok := genres[name]
				if !ok {
					g = models.Genre{Name: name}
					if err := tx.Where("name = ?", name).FirstOrCreate(&g).Error; err != nil {
						return fmt.Errorf("upsert genre %q: %w", name, err)
					}
					genres[name] = g
				}
				movie.Genres = append(movie.Genres, g)
			}
			for _, name := range uniqueNames(rec.Cast) {
				a, ok := actors[name]
				if !ok {
					a = models.Actor{Name: name}
					if err := tx.Where("name = ?", name).FirstOrCreate(&a).Error; err != nil {
						return fmt.Errorf("upsert actor %q: %w", name, err)
					}
					actors[name] = a
				}
				movie.Cast = append(movie.Cast, a)
			}
			for _, name := range uniqueNames(rec.Languages) {
				l, ok := languages[name]
				if !ok {
					l = models.Language{Name: name}
					if err := tx.Where("name = ?", name).FirstOrCreate(&l).Error; err != nil {
						return fmt.Errorf("upsert language %q: %w", name, err)
					}
					languages[name] = l
				}
				movie.Languages = append(movie.Languages, l)
			}

			if err := tx.Create(&movie).Error; err != nil {
				return fmt.Errorf("create movie %q: %w", title, err)
			}
			imported++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	imp.logger.Info("Catalog import finished", "movies", imported)
	return imported, nil
}

// uniqueNames trims, drops empties and deduplicates while keeping order.
func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
