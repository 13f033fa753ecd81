package models

import "time"

type Book struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string  `gorm:"size:200;not null" json:"title"`
	AuthorName  string  `gorm:"size:100;not null" json:"author_name"`
	Rating      float64 `json:"rating"`
	Price       float64 `json:"price"`
	CoverPhoto  string  `gorm:"size:500" json:"cover_photo"`
	Category    string  `gorm:"size:50;not null" json:"category"`
	Stock       int     `json:"stock"`
	Description string  `gorm:"size:2000" json:"description"`
	PublishYear int     `json:"publish_year"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
