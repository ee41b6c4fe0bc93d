package userstate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/locato-app/locato-api/internal/types"
)

// Defaults applied to a just-submitted review.
const (
	defaultReviewUser = "Korisnik"
	defaultReviewDate = "Danas"
)

var _ Service = (*ServiceImpl)(nil)

// Service is the business logic over the user state store: the favorites
// set and the merge of locally authored reviews with service-supplied ones.
type Service interface {
	Favorites(ctx context.Context) ([]types.Restaurant, error)
	ReplaceFavorites(ctx context.Context, favorites []types.Restaurant) error
	ToggleFavorite(ctx context.Context, restaurant types.Restaurant) (bool, error)
	IsFavorite(ctx context.Context, restaurantID string) (bool, error)

	MergedReviews(ctx context.Context, restaurantID string, remote []types.Review) ([]types.Review, error)
	AddReview(ctx context.Context, restaurantID string, review types.Review) (types.Review, error)
}

type ServiceImpl struct {
	store  Store
	logger *slog.Logger
}

func NewServiceImpl(store Store, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		store:  store,
		logger: logger,
	}
}

// Favorites returns the persisted favorites set.
func (s *ServiceImpl) Favorites(ctx context.Context) ([]types.Restaurant, error) {
	favorites, err := s.store.GetFavorites(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to load favorites", slog.Any("error", err))
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	return favorites, nil
}

// ReplaceFavorites overwrites the favorites set wholesale, storing deep
// copies so later changes to the passed records do not leak into storage.
func (s *ServiceImpl) ReplaceFavorites(ctx context.Context, favorites []types.Restaurant) error {
	copies := make([]types.Restaurant, len(favorites))
	for i, r := range favorites {
		copies[i] = r.Clone()
	}
	if err := s.store.SetFavorites(ctx, copies); err != nil {
		s.logger.ErrorContext(ctx, "Failed to replace favorites", slog.Any("error", err))
		return fmt.Errorf("failed to replace favorites: %w", err)
	}
	return nil
}

// ToggleFavorite adds the restaurant to the favorites set when absent and
// removes it when present, keyed by id. Returns whether the restaurant is
// a favorite after the call.
func (s *ServiceImpl) ToggleFavorite(ctx context.Context, restaurant types.Restaurant) (bool, error) {
	l := s.logger.With(slog.String("service", "ToggleFavorite"), slog.String("restaurant_id", restaurant.ID))

	favorites, err := s.store.GetFavorites(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to load favorites", slog.Any("error", err))
		return false, fmt.Errorf("failed to load favorites: %w", err)
	}

	isFavorite := false
	next := make([]types.Restaurant, 0, len(favorites)+1)
	for _, f := range favorites {
		if f.ID == restaurant.ID {
			isFavorite = true
			continue
		}
		next = append(next, f)
	}
	if !isFavorite {
		next = append(next, restaurant.Clone())
	}

	if err := s.store.SetFavorites(ctx, next); err != nil {
		l.ErrorContext(ctx, "Failed to store favorites", slog.Any("error", err))
		return false, fmt.Errorf("failed to store favorites: %w", err)
	}

	l.DebugContext(ctx, "Toggled favorite", slog.Bool("now_favorite", !isFavorite))
	return !isFavorite, nil
}

// IsFavorite reports whether a restaurant id is in the favorites set.
func (s *ServiceImpl) IsFavorite(ctx context.Context, restaurantID string) (bool, error) {
	favorites, err := s.store.GetFavorites(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load favorites: %w", err)
	}
	for _, f := range favorites {
		if f.ID == restaurantID {
			return true, nil
		}
	}
	return false, nil
}

// MergedReviews combines the user's stored reviews with service-supplied
// ones. Local reviews come first, newest first; remote order is kept.
func (s *ServiceImpl) MergedReviews(ctx context.Context, restaurantID string, remote []types.Review) ([]types.Review, error) {
	local, err := s.store.GetLocalReviews(ctx, restaurantID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to load local reviews", slog.Any("error", err))
		return nil, fmt.Errorf("failed to load local reviews: %w", err)
	}

	merged := make([]types.Review, 0, len(local)+len(remote))
	merged = append(merged, local...)
	merged = append(merged, remote...)
	return merged, nil
}

// AddReview validates and persists a locally authored review. A review
// without a rating is rejected with ErrInvalidReview and nothing is
// stored; the comment is optional. Missing id, user and date get display
// defaults before persisting.
func (s *ServiceImpl) AddReview(ctx context.Context, restaurantID string, review types.Review) (types.Review, error) {
	l := s.logger.With(slog.String("service", "AddReview"), slog.String("restaurant_id", restaurantID))

	if review.Rating < 1 || review.Rating > 5 {
		l.DebugContext(ctx, "Rejected review without rating", slog.Int("rating", review.Rating))
		return types.Review{}, types.ErrInvalidReview
	}

	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	if review.User == "" {
		review.User = defaultReviewUser
	}
	if review.Date == "" {
		review.Date = defaultReviewDate
	}

	if err := s.store.AppendLocalReview(ctx, restaurantID, review); err != nil {
		l.ErrorContext(ctx, "Failed to persist review", slog.Any("error", err))
		return types.Review{}, fmt.Errorf("failed to persist review: %w", err)
	}

	l.InfoContext(ctx, "Stored local review", slog.String("review_id", review.ID))
	return review, nil
}
