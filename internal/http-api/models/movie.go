package models

type Movie struct {
	ID          int64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string   `json:"title" gorm:"not null"`
	PosterURL   *string  `json:"poster_url,omitempty"`
	Year        int      `json:"year" gorm:"index"`
	RatingScore *float64 `json:"rating_score,omitempty" gorm:"type:decimal(3,1)"`
	RatingVotes *int     `json:"rating_votes,omitempty"`

	// associations
	Genres    []Genre    `json:"genres,omitempty" gorm:"many2many:movie_genres;constraint:OnDelete:CASCADE;"`
	Cast      []Actor    `json:"cast,omitempty" gorm:"many2many:movie_actors;constraint:OnDelete:CASCADE;"`
	Languages []Language `json:"languages,omitempty" gorm:"many2many:movie_languages;constraint:OnDelete:CASCADE;"`
}

func (Movie) TableName() string {
	return "movies"
}

// MovieSummary is the browse projection: identity, display fields and the
// derived comment count. Year is carried for the sort key only.
type MovieSummary struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	PosterURL    *string  `json:"poster_url"`
	Year         int      `json:"year"`
	RatingScore  *float64 `json:"rating_score"`
	RatingVotes  *int     `json:"rating_votes"`
	CommentCount int64    `json:"comment_count"`
}
