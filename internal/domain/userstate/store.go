// Package userstate persists the two things that survive across sessions:
// the favorites set and the user's own reviews, keyed by restaurant id.
// Storage is a key-value abstraction with whole-value replace semantics,
// single-writer assumed.
package userstate

import (
	"context"
	"fmt"

	"github.com/locato-app/locato-api/internal/types"
)

const (
	favoritesKey     = "locato_favorites"
	reviewsKeyPrefix = "locato_reviews_"
)

func reviewsKey(restaurantID string) string {
	return reviewsKeyPrefix + restaurantID
}

// Store is the persistence contract. GetFavorites/GetLocalReviews return
// empty slices when nothing was stored yet; writes replace whole values.
type Store interface {
	GetFavorites(ctx context.Context) ([]types.Restaurant, error)
	SetFavorites(ctx context.Context, favorites []types.Restaurant) error
	GetLocalReviews(ctx context.Context, restaurantID string) ([]types.Review, error)
	AppendLocalReview(ctx context.Context, restaurantID string, review types.Review) error
}

// prependReview puts the newest review first, the order reviews render in.
func prependReview(reviews []types.Review, review types.Review) []types.Review {
	out := make([]types.Review, 0, len(reviews)+1)
	out = append(out, review)
	return append(out, reviews...)
}

func wrapStoreErr(op string, err error) error {
	return fmt.Errorf("failed to %s: %w", op, err)
}
