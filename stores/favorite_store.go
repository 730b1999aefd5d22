package stores

import (
	"errors"
	"log"

	"github.com/pin-diary/api-go/apperrors"
	"github.com/pin-diary/api-go/models"
	"gorm.io/gorm"
)

// FavoriteStore owns the favorite marker rows. The post query service only
// reads them; writes happen through Toggle.
type FavoriteStore struct {
	DB *gorm.DB
}

func NewFavoriteStore(db *gorm.DB) *FavoriteStore {
	return &FavoriteStore{DB: db}
}

// Exists reports whether userID has favorited postID.
func (s *FavoriteStore) Exists(postID, userID uint) (bool, error) {
	var count int64
	err := s.DB.Model(&models.Favorite{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	if err != nil {
		log.Printf("favorite store: check favorite for post %d: %v", postID, err)
		return false, apperrors.ErrInternal
	}
	return count > 0, nil
}

// Toggle flips the favorite marker for (postID, userID) and reports the
// resulting state.
func (s *FavoriteStore) Toggle(postID, userID uint) (bool, error) {
	var existing models.Favorite
	err := s.DB.Where("post_id = ? AND user_id = ?", postID, userID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		favorite := models.Favorite{PostID: postID, UserID: userID}
		if err := s.DB.Create(&favorite).Error; err != nil {
			log.Printf("favorite store: create favorite for post %d: %v", postID, err)
			return false, apperrors.ErrInternal
		}
		return true, nil
	case err != nil:
		log.Printf("favorite store: look up favorite for post %d: %v", postID, err)
		return false, apperrors.ErrInternal
	default:
		if err := s.DB.Delete(&existing).Error; err != nil {
			log.Printf("favorite store: delete favorite for post %d: %v", postID, err)
			return false, apperrors.ErrInternal
		}
		return false, nil
	}
}

// PostIDsForUser returns the user's favorited post ids, newest favorite
// first, one page at a time.
func (s *FavoriteStore) PostIDsForUser(userID uint, page, perPage int) ([]uint, error) {
	var ids []uint
	err := s.DB.Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Pluck("post_id", &ids).Error
	if err != nil {
		log.Printf("favorite store: list favorites for user %d: %v", userID, err)
		return nil, apperrors.ErrInternal
	}
	return ids, nil
}
