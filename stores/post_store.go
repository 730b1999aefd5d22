package stores

import (
	"errors"
	"log"
	"time"

	"github.com/pin-diary/api-go/apperrors"
	"github.com/pin-diary/api-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostStore owns the relational representation of posts. Writes go through a
// transaction handle supplied by the caller so that a post and its image set
// commit or roll back together.
type PostStore struct {
	DB *gorm.DB
}

func NewPostStore(db *gorm.DB) *PostStore {
	return &PostStore{DB: db}
}

// FindOpts selects which relations a by-id read loads, so each read fetches
// only what it needs.
type FindOpts struct {
	WithImages    bool
	WithFavorites bool
}

// FindByID fetches one post scoped to (id, ownerID). A post that exists but
// belongs to a different owner is reported as not found.
func (s *PostStore) FindByID(id, ownerID uint, opts FindOpts) (*models.Post, error) {
	tx := s.DB
	if opts.WithImages {
		tx = tx.Preload("Images")
	}
	if opts.WithFavorites {
		tx = tx.Preload("Favorites")
	}

	var post models.Post
	err := tx.Where("id = ? AND user_id = ?", id, ownerID).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		log.Printf("post store: find post %d: %v", id, err)
		return nil, apperrors.ErrInternal
	}
	return &post, nil
}

// Persist commits the post row. Associations are written by their own
// managers, never as a side effect of saving the post.
func (s *PostStore) Persist(db *gorm.DB, post *models.Post) error {
	if err := db.Omit(clause.Associations).Save(post).Error; err != nil {
		log.Printf("post store: persist post: %v", err)
		return apperrors.ErrInternal
	}
	return nil
}

// DeleteByIDForOwner deletes at most one row. A zero affected count means the
// post does not exist for this owner.
func (s *PostStore) DeleteByIDForOwner(id, ownerID uint) (int64, error) {
	res := s.DB.Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.Post{})
	if res.Error != nil {
		log.Printf("post store: delete post %d: %v", id, res.Error)
		return 0, apperrors.ErrInternal
	}
	return res.RowsAffected, nil
}

// Transaction runs fn inside a single relational write unit.
func (s *PostStore) Transaction(fn func(tx *gorm.DB) error) error {
	return s.DB.Transaction(fn)
}

// PostQuery is a composable filter/sort/paginate pipeline over one owner's
// posts. The owner scope is applied at construction and every refinement
// layers on top of it, so no refinement can widen the result set to another
// owner's rows.
type PostQuery struct {
	db *gorm.DB
}

// ByOwner starts a query permanently scoped to ownerID.
func (s *PostStore) ByOwner(ownerID uint) *PostQuery {
	return &PostQuery{db: s.DB.Model(&models.Post{}).Where("user_id = ?", ownerID)}
}

// Search narrows to rows whose title or address contains term. Case
// sensitivity is left to the store collation.
func (q *PostQuery) Search(term string) *PostQuery {
	like := "%" + term + "%"
	q.db = q.db.Where("title LIKE ? OR address LIKE ?", like, like)
	return q
}

// InMonth narrows to the given calendar month using a half-open date range.
func (q *PostQuery) InMonth(year, month int) *PostQuery {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	q.db = q.db.Where("date >= ? AND date < ?", start, start.AddDate(0, 1, 0))
	return q
}

func (q *PostQuery) OrderByDateDesc() *PostQuery {
	q.db = q.db.Order("date DESC")
	return q
}

// Paginate applies offset (page-1)*perPage. Non-positive pages are passed
// through; GORM drops a negative offset, which degrades to the first page.
func (q *PostQuery) Paginate(page, perPage int) *PostQuery {
	q.db = q.db.Offset((page - 1) * perPage).Limit(perPage)
	return q
}

func (q *PostQuery) WithImages() *PostQuery {
	q.db = q.db.Preload("Images")
	return q
}

// Select restricts the fetched columns, for projections that need only a few
// fields.
func (q *PostQuery) Select(columns ...string) *PostQuery {
	q.db = q.db.Select(columns)
	return q
}

// IDsIn narrows to the given post ids (still within the owner scope).
func (q *PostQuery) IDsIn(ids []uint) *PostQuery {
	q.db = q.db.Where("id IN ?", ids)
	return q
}

func (q *PostQuery) Find() ([]models.Post, error) {
	var posts []models.Post
	if err := q.db.Find(&posts).Error; err != nil {
		log.Printf("post store: query posts: %v", err)
		return nil, apperrors.ErrInternal
	}
	return posts, nil
}
