package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnonymousAuthor is the sentinel author name used when a comment is
// submitted without one.
const AnonymousAuthor = "Anonymous"

type Comment struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	MovieID   int64     `json:"movie_id" gorm:"not null;index"`
	Author    string    `json:"author" gorm:"not null"`
	Text      string    `json:"text" gorm:"not null;type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// association
	Movie Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
}

func (Comment) TableName() string {
	return "comments"
}

// BeforeCreate assigns the store-side identity so callers never supply one.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Author == "" {
		c.Author = AnonymousAuthor
	}
	return nil
}
