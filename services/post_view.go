package services

import (
	"sort"
	"time"

	"github.com/pin-diary/api-go/models"
)

// The view structs enumerate exactly the fields each read exposes. Shaping is
// pure: no storage access happens here. The owner reference is absent from
// every view by construction rather than stripped after the fact.

type ImageView struct {
	ID  uint   `json:"id"`
	URI string `json:"uri"`
}

type PostView struct {
	ID          uint               `json:"id"`
	Latitude    float64            `json:"latitude"`
	Longitude   float64            `json:"longitude"`
	Title       string             `json:"title"`
	Color       models.MarkerColor `json:"color"`
	Address     string             `json:"address"`
	Date        time.Time          `json:"date"`
	Description string             `json:"description"`
	Score       int                `json:"score"`
	Images      []ImageView        `json:"images"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// PostDetailView carries the derived favorite flag instead of the raw
// favorite rows.
type PostDetailView struct {
	PostView
	IsFavorite bool `json:"isFavorite"`
}

// MarkerView is the map-pin projection of a post.
type MarkerView struct {
	ID        uint               `json:"id"`
	Latitude  float64            `json:"latitude"`
	Longitude float64            `json:"longitude"`
	Color     models.MarkerColor `json:"color"`
	Score     int                `json:"score"`
}

// CalendarEntryView is one post in the month-grouped calendar view.
type CalendarEntryView struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Address string `json:"address"`
}

// newImageViews sorts by ascending image id before shaping: joins do not
// guarantee order, and clients rely on creation order.
func newImageViews(images []models.Image) []ImageView {
	sorted := make([]models.Image, len(images))
	copy(sorted, images)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	views := make([]ImageView, 0, len(sorted))
	for _, image := range sorted {
		views = append(views, ImageView{ID: image.ID, URI: image.URI})
	}
	return views
}

func NewPostView(post *models.Post) PostView {
	return PostView{
		ID:          post.ID,
		Latitude:    post.Latitude,
		Longitude:   post.Longitude,
		Title:       post.Title,
		Color:       post.Color,
		Address:     post.Address,
		Date:        post.Date,
		Description: post.Description,
		Score:       post.Score,
		Images:      newImageViews(post.Images),
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
}

func NewPostViews(posts []models.Post) []PostView {
	views := make([]PostView, 0, len(posts))
	for i := range posts {
		views = append(views, NewPostView(&posts[i]))
	}
	return views
}

func NewPostDetailView(post *models.Post, isFavorite bool) PostDetailView {
	return PostDetailView{
		PostView:   NewPostView(post),
		IsFavorite: isFavorite,
	}
}

func NewMarkerView(post *models.Post) MarkerView {
	return MarkerView{
		ID:        post.ID,
		Latitude:  post.Latitude,
		Longitude: post.Longitude,
		Color:     post.Color,
		Score:     post.Score,
	}
}

// GroupPostsByDay buckets posts into a day-of-month keyed mapping. Only days
// that actually have posts appear as keys.
func GroupPostsByDay(posts []models.Post) map[int][]CalendarEntryView {
	grouped := make(map[int][]CalendarEntryView)
	for i := range posts {
		post := &posts[i]
		day := post.Date.Day()
		grouped[day] = append(grouped[day], CalendarEntryView{
			ID:      post.ID,
			Title:   post.Title,
			Address: post.Address,
		})
	}
	return grouped
}
