package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // Don't expose password in JSON
	LoginType string    `gorm:"size:20;not null;default:email" json:"login_type"`
	Nickname  string    `json:"nickname"`
	ImageURL  string    `json:"image_url"`
	KakaoID   *string   `gorm:"unique" json:"-"`

	// Custom label per marker color. The JSON keys mirror the MarkerColor
	// values so the client can index the mapping directly.
	CategoryRed    string `gorm:"column:red" json:"RED"`
	CategoryYellow string `gorm:"column:yellow" json:"YELLOW"`
	CategoryBlue   string `gorm:"column:blue" json:"BLUE"`
	CategoryGreen  string `gorm:"column:green" json:"GREEN"`
	CategoryPurple string `gorm:"column:purple" json:"PURPLE"`

	Posts         []Post         `gorm:"foreignKey:UserID" json:"-"`
	Favorites     []Favorite     `gorm:"foreignKey:UserID" json:"-"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// CategoryLabels returns the user's label mapping keyed by marker color.
func (u *User) CategoryLabels() map[MarkerColor]string {
	return map[MarkerColor]string{
		MarkerColorRed:    u.CategoryRed,
		MarkerColorYellow: u.CategoryYellow,
		MarkerColorBlue:   u.CategoryBlue,
		MarkerColorGreen:  u.CategoryGreen,
		MarkerColorPurple: u.CategoryPurple,
	}
}

// SetCategoryLabels applies a label mapping that has already been validated
// with ValidateCategoryLabels.
func (u *User) SetCategoryLabels(labels map[MarkerColor]string) {
	u.CategoryRed = labels[MarkerColorRed]
	u.CategoryYellow = labels[MarkerColorYellow]
	u.CategoryBlue = labels[MarkerColorBlue]
	u.CategoryGreen = labels[MarkerColorGreen]
	u.CategoryPurple = labels[MarkerColorPurple]
}
