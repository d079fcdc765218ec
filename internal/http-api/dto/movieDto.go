package dto

import (
	"moviehub/internal/http-api/models"
)

// BrowseParams carries the raw, unvalidated query parameters of a catalog
// browse request. Validation happens in the service's query builder.
type BrowseParams struct {
	Genre    string
	YearFrom string
	YearTo   string
	Actor    string
	Language string
	Page     string
}

// RatingResponse is the external-rating pair attached to a movie.
type RatingResponse struct {
	Score float64 `json:"score"`
	Votes int     `json:"votes"`
}

// MovieSummaryResponse is one row of a browse result page.
type MovieSummaryResponse struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title"`
	Poster       *string         `json:"poster,omitempty"`
	Rating       *RatingResponse `json:"rating,omitempty"`
	CommentCount int64           `json:"comment_count"`
}

// FromSummary converts a store projection to the response shape.
func FromSummary(s models.MovieSummary) MovieSummaryResponse {
	return MovieSummaryResponse{
		ID:           s.ID,
		Title:        s.Title,
		Poster:       s.PosterURL,
		Rating:       ratingFrom(s.RatingScore, s.RatingVotes),
		CommentCount: s.CommentCount,
	}
}

// MovieResponse is the single-item detail shape.
type MovieResponse struct {
	ID        int64           `json:"id"`
	Title     string          `json:"title"`
	Poster    *string         `json:"poster,omitempty"`
	Year      int             `json:"year"`
	Rating    *RatingResponse `json:"rating,omitempty"`
	Genres    []string        `json:"genres"`
	Cast      []string        `json:"cast"`
	Languages []string        `json:"languages"`
}

// FromModelToResponse converts a Movie model to MovieResponse
func FromModelToResponse(m models.Movie) MovieResponse {
	genres := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		genres = append(genres, g.Name)
	}
	cast := make([]string, 0, len(m.Cast))
	for _, a := range m.Cast {
		cast = append(cast, a.Name)
	}
	languages := make([]string, 0, len(m.Languages))
	for _, l := range m.Languages {
		languages = append(languages, l.Name)
	}

	return MovieResponse{
		ID:        m.ID,
		Title:     m.Title,
		Poster:    m.PosterURL,
		Year:      m.Year,
		Rating:    ratingFrom(m.RatingScore, m.RatingVotes),
		Genres:    genres,
		Cast:      cast,
		Languages: languages,
	}
}

func ratingFrom(score *float64, votes *int) *RatingResponse {
	if score == nil {
		return nil
	}
	r := &RatingResponse{Score: *score}
	if votes != nil {
		r.Votes = *votes
	}
	return r
}
