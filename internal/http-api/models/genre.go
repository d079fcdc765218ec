package models

type Genre struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"unique;not null"`
}

func (Genre) TableName() string {
	return "genres"
}

// GenreCount pairs a genre name with the number of movies carrying it.
type GenreCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
