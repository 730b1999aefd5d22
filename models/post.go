package models

import (
	"time"
)

// Post is a user-owned geotagged journal entry. Every query against posts is
// scoped to the owning user: a post owned by someone else reads as missing.
type Post struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint        `gorm:"not null;index" json:"-"`
	User        User        `gorm:"foreignKey:UserID" json:"-"`
	Latitude    float64     `gorm:"not null;type:decimal(10,8)" json:"latitude"`
	Longitude   float64     `gorm:"not null;type:decimal(11,8)" json:"longitude"`
	Title       string      `json:"title"`
	Color       MarkerColor `gorm:"size:10;not null" json:"color"`
	Address     string      `json:"address"`
	Date        time.Time   `gorm:"type:date;not null;index" json:"date"`
	Description string      `gorm:"type:text" json:"description"`
	Score       int         `gorm:"not null;default:0" json:"score"`
	Images      []Image     `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"images"`
	Favorites   []Favorite  `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
