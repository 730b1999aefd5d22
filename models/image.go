package models

import (
	"time"
)

// Image is one photo URI attached to a post. Image rows are only ever written
// as a whole set together with their post; they are never updated in place.
type Image struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"-"`
	URI       string    `gorm:"not null" json:"uri"`
	CreatedAt time.Time `json:"created_at"`
}
