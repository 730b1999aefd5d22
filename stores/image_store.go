package stores

import (
	"log"

	"github.com/pin-diary/api-go/apperrors"
	"github.com/pin-diary/api-go/models"
	"gorm.io/gorm"
)

// ImageStore manages the image rows attached to a post. A post's image set is
// always written whole: on update the old rows are dropped and the new set
// inserted, no diffing. Both methods run on the caller's transaction handle so
// a failed image write aborts the surrounding post write.
type ImageStore struct {
	DB *gorm.DB
}

func NewImageStore(db *gorm.DB) *ImageStore {
	return &ImageStore{DB: db}
}

// CreateSet inserts one image row per uri, preserving the input order.
// Sequential ids make creation order recoverable when presenting.
func (s *ImageStore) CreateSet(db *gorm.DB, postID uint, uris []string) ([]models.Image, error) {
	if len(uris) == 0 {
		return nil, nil
	}
	images := make([]models.Image, 0, len(uris))
	for _, uri := range uris {
		images = append(images, models.Image{PostID: postID, URI: uri})
	}
	if err := db.Create(&images).Error; err != nil {
		log.Printf("image store: create images for post %d: %v", postID, err)
		return nil, apperrors.ErrInternal
	}
	return images, nil
}

// Replace supersedes the whole image set for postID.
func (s *ImageStore) Replace(db *gorm.DB, postID uint, uris []string) ([]models.Image, error) {
	if err := db.Where("post_id = ?", postID).Delete(&models.Image{}).Error; err != nil {
		log.Printf("image store: clear images for post %d: %v", postID, err)
		return nil, apperrors.ErrInternal
	}
	return s.CreateSet(db, postID, uris)
}
