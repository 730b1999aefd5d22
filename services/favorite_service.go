package services

import (
	"github.com/pin-diary/api-go/stores"
)

// FavoriteService toggles and lists favorite markers. Visibility follows the
// post core: a post the requester cannot read cannot be favorited either.
type FavoriteService struct {
	posts     *stores.PostStore
	favorites *stores.FavoriteStore
}

func NewFavoriteService(posts *stores.PostStore, favorites *stores.FavoriteStore) *FavoriteService {
	return &FavoriteService{
		posts:     posts,
		favorites: favorites,
	}
}

// Toggle flips the favorite marker on a post visible to the user and reports
// the resulting state.
func (s *FavoriteService) Toggle(userID, postID uint) (bool, error) {
	if _, err := s.posts.FindByID(postID, userID, stores.FindOpts{}); err != nil {
		return false, err
	}
	return s.favorites.Toggle(postID, userID)
}

// GetMyFavoritePosts returns one page of the user's favorited posts, newest
// favorite first, with images attached in creation order.
func (s *FavoriteService) GetMyFavoritePosts(userID uint, page int) ([]PostView, error) {
	ids, err := s.favorites.PostIDsForUser(userID, page, postsPerPage)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []PostView{}, nil
	}

	posts, err := s.posts.ByOwner(userID).IDsIn(ids).WithImages().Find()
	if err != nil {
		return nil, err
	}

	// Restore favorite recency order; IN() returns rows in store order.
	byID := make(map[uint]PostView, len(posts))
	for _, view := range NewPostViews(posts) {
		byID[view.ID] = view
	}
	views := make([]PostView, 0, len(ids))
	for _, id := range ids {
		if view, ok := byID[id]; ok {
			views = append(views, view)
		}
	}
	return views, nil
}
