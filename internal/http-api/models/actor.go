package models

type Actor struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"unique;not null;index"`
}

func (Actor) TableName() string {
	return "actors"
}
