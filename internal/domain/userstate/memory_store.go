package userstate

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/locato-app/locato-api/internal/types"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps user state in process memory. Used when no database
// is configured and as the test double. Values round-trip through JSON so
// callers never share slices with the store, matching the replace-on-write
// behavior of the Postgres store.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) get(key string, out any) error {
	s.mu.RLock()
	raw, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func (s *MemoryStore) set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.values[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) GetFavorites(_ context.Context) ([]types.Restaurant, error) {
	favorites := []types.Restaurant{}
	if err := s.get(favoritesKey, &favorites); err != nil {
		return nil, wrapStoreErr("read favorites", err)
	}
	return favorites, nil
}

func (s *MemoryStore) SetFavorites(_ context.Context, favorites []types.Restaurant) error {
	if err := s.set(favoritesKey, favorites); err != nil {
		return wrapStoreErr("write favorites", err)
	}
	return nil
}

func (s *MemoryStore) GetLocalReviews(_ context.Context, restaurantID string) ([]types.Review, error) {
	reviews := []types.Review{}
	if err := s.get(reviewsKey(restaurantID), &reviews); err != nil {
		return nil, wrapStoreErr("read local reviews", err)
	}
	return reviews, nil
}

func (s *MemoryStore) AppendLocalReview(ctx context.Context, restaurantID string, review types.Review) error {
	current, err := s.GetLocalReviews(ctx, restaurantID)
	if err != nil {
		return err
	}
	if err := s.set(reviewsKey(restaurantID), prependReview(current, review)); err != nil {
		return wrapStoreErr("write local reviews", err)
	}
	return nil
}
