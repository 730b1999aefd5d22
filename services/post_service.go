package services

import (
	"time"

	"github.com/pin-diary/api-go/apperrors"
	"github.com/pin-diary/api-go/models"
	"github.com/pin-diary/api-go/stores"
	"gorm.io/gorm"
)

// Fixed page size for every paged post read.
const postsPerPage = 10

// PostService turns the relational post store into the read and write views
// the API exposes. Every operation runs on behalf of an authenticated owner;
// the owner scope is applied before any other filter.
type PostService struct {
	posts     *stores.PostStore
	images    *stores.ImageStore
	favorites *stores.FavoriteStore
}

func NewPostService(posts *stores.PostStore, images *stores.ImageStore, favorites *stores.FavoriteStore) *PostService {
	return &PostService{
		posts:     posts,
		images:    images,
		favorites: favorites,
	}
}

type ImageURIInput struct {
	URI string `json:"uri" binding:"required"`
}

type CreatePostInput struct {
	Latitude    float64            `json:"latitude" binding:"required"`
	Longitude   float64            `json:"longitude" binding:"required"`
	Title       string             `json:"title"`
	Color       models.MarkerColor `json:"color" binding:"required,oneof=RED YELLOW BLUE GREEN PURPLE"`
	Address     string             `json:"address"`
	Date        time.Time          `json:"date" binding:"required"`
	Description string             `json:"description"`
	Score       int                `json:"score"`
	ImageURIs   []ImageURIInput    `json:"imageUris"`
}

// UpdatePostInput deliberately has no latitude, longitude or address fields:
// those are immutable after creation.
type UpdatePostInput struct {
	Title       string             `json:"title"`
	Color       models.MarkerColor `json:"color" binding:"required,oneof=RED YELLOW BLUE GREEN PURPLE"`
	Date        time.Time          `json:"date" binding:"required"`
	Description string             `json:"description"`
	Score       int                `json:"score"`
	ImageURIs   []ImageURIInput    `json:"imageUris"`
}

func imageURIs(inputs []ImageURIInput) []string {
	uris := make([]string, 0, len(inputs))
	for _, in := range inputs {
		uris = append(uris, in.URI)
	}
	return uris
}

// GetAllMarkers returns the map-pin projection of every post the owner has.
// No pagination, no images, no favorites.
func (s *PostService) GetAllMarkers(ownerID uint) ([]MarkerView, error) {
	posts, err := s.posts.ByOwner(ownerID).
		Select("id", "latitude", "longitude", "color", "score").
		Find()
	if err != nil {
		return nil, err
	}

	markers := make([]MarkerView, 0, len(posts))
	for i := range posts {
		markers = append(markers, NewMarkerView(&posts[i]))
	}
	return markers, nil
}

// GetMyPosts returns one page of the owner's posts, newest date first, with
// images attached in creation order.
func (s *PostService) GetMyPosts(ownerID uint, page int) ([]PostView, error) {
	posts, err := s.posts.ByOwner(ownerID).
		WithImages().
		OrderByDateDesc().
		Paginate(page, postsPerPage).
		Find()
	if err != nil {
		return nil, err
	}
	return NewPostViews(posts), nil
}

// GetPostByID returns one post with its images and the derived favorite flag.
// The flag reflects the requesting owner's own favorite marker, checked with
// an explicit existence query rather than join cardinality.
func (s *PostService) GetPostByID(ownerID, id uint) (*PostDetailView, error) {
	post, err := s.posts.FindByID(id, ownerID, stores.FindOpts{WithImages: true})
	if err != nil {
		return nil, err
	}

	isFavorite, err := s.favorites.Exists(post.ID, ownerID)
	if err != nil {
		return nil, err
	}

	view := NewPostDetailView(post, isFavorite)
	return &view, nil
}

// CreatePost persists a new post and its image set in one write unit.
func (s *PostService) CreatePost(ownerID uint, in *CreatePostInput) (*PostView, error) {
	post := &models.Post{
		UserID:      ownerID,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Title:       in.Title,
		Color:       in.Color,
		Address:     in.Address,
		Date:        in.Date,
		Description: in.Description,
		Score:       in.Score,
	}

	err := s.posts.Transaction(func(tx *gorm.DB) error {
		if err := s.posts.Persist(tx, post); err != nil {
			return err
		}
		images, err := s.images.CreateSet(tx, post.ID, imageURIs(in.ImageURIs))
		if err != nil {
			return err
		}
		post.Images = images
		return nil
	})
	if err != nil {
		return nil, err
	}

	view := NewPostView(post)
	return &view, nil
}

// UpdatePost mutates the editable fields and replaces the image set whole.
// The post is re-fetched through the owner-scoped read first, so ownership
// and not-found semantics are identical to GetPostByID.
func (s *PostService) UpdatePost(ownerID, id uint, in *UpdatePostInput) (*PostDetailView, error) {
	post, err := s.posts.FindByID(id, ownerID, stores.FindOpts{})
	if err != nil {
		return nil, err
	}

	post.Title = in.Title
	post.Color = in.Color
	post.Date = in.Date
	post.Description = in.Description
	post.Score = in.Score

	err = s.posts.Transaction(func(tx *gorm.DB) error {
		if err := s.posts.Persist(tx, post); err != nil {
			return err
		}
		images, err := s.images.Replace(tx, post.ID, imageURIs(in.ImageURIs))
		if err != nil {
			return err
		}
		post.Images = images
		return nil
	})
	if err != nil {
		return nil, err
	}

	isFavorite, err := s.favorites.Exists(post.ID, ownerID)
	if err != nil {
		return nil, err
	}

	view := NewPostDetailView(post, isFavorite)
	return &view, nil
}

// DeletePost removes the post for this owner. Deleting a missing or foreign
// post reports not found; repeating a delete reports not found again.
func (s *PostService) DeletePost(ownerID, id uint) error {
	affected, err := s.posts.DeleteByIDForOwner(id, ownerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// GetPostsByMonth returns the owner's posts for one calendar month, grouped
// by day of month. Days without posts are absent from the mapping.
func (s *PostService) GetPostsByMonth(ownerID uint, year, month int) (map[int][]CalendarEntryView, error) {
	posts, err := s.posts.ByOwner(ownerID).
		InMonth(year, month).
		Select("id", "title", "address", "date").
		Find()
	if err != nil {
		return nil, err
	}
	return GroupPostsByDay(posts), nil
}

// SearchMyPosts pages through the owner's posts whose title or address
// contains query. Ordering and image attachment match GetMyPosts.
func (s *PostService) SearchMyPosts(ownerID uint, query string, page int) ([]PostView, error) {
	posts, err := s.posts.ByOwner(ownerID).
		Search(query).
		WithImages().
		OrderByDateDesc().
		Paginate(page, postsPerPage).
		Find()
	if err != nil {
		return nil, err
	}
	return NewPostViews(posts), nil
}
