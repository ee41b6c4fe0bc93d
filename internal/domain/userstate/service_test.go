package userstate

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/locato-app/locato-api/internal/types"
)

// MockStore is a mock implementation of Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetFavorites(ctx context.Context) ([]types.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Restaurant), args.Error(1)
}

func (m *MockStore) SetFavorites(ctx context.Context, favorites []types.Restaurant) error {
	args := m.Called(ctx, favorites)
	return args.Error(0)
}

func (m *MockStore) GetLocalReviews(ctx context.Context, restaurantID string) ([]types.Review, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Review), args.Error(1)
}

func (m *MockStore) AppendLocalReview(ctx context.Context, restaurantID string, review types.Review) error {
	args := m.Called(ctx, restaurantID, review)
	return args.Error(0)
}

func setupServiceTest() (*ServiceImpl, *MemoryStore) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	store := NewMemoryStore()
	return NewServiceImpl(store, logger), store
}

func zeljo() types.Restaurant {
	return types.Restaurant{
		ID:      "1",
		Name:    "Ćevabdžinica Željo",
		Cuisine: "Bosanska",
		Reviews: []types.Review{{ID: "r1", User: "Marko P.", Rating: 5}},
	}
}

func TestServiceImpl_ToggleFavorite_RoundTrip(t *testing.T) {
	service, _ := setupServiceTest()
	ctx := context.Background()

	before, err := service.Favorites(ctx)
	require.NoError(t, err)

	nowFavorite, err := service.ToggleFavorite(ctx, zeljo())
	require.NoError(t, err)
	assert.True(t, nowFavorite)

	favorites, err := service.Favorites(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "1", favorites[0].ID)

	nowFavorite, err = service.ToggleFavorite(ctx, zeljo())
	require.NoError(t, err)
	assert.False(t, nowFavorite)

	after, err := service.Favorites(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestServiceImpl_ToggleFavorite_StoresDeepCopy(t *testing.T) {
	service, _ := setupServiceTest()
	ctx := context.Background()

	r := zeljo()
	_, err := service.ToggleFavorite(ctx, r)
	require.NoError(t, err)

	// Mutating the caller's record must not alter the stored favorite.
	r.Name = "mutated"
	r.Reviews[0].Comment = "mutated"

	favorites, err := service.Favorites(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Ćevabdžinica Željo", favorites[0].Name)
	assert.Empty(t, favorites[0].Reviews[0].Comment)
}

func TestServiceImpl_IsFavorite(t *testing.T) {
	service, _ := setupServiceTest()
	ctx := context.Background()

	_, err := service.ToggleFavorite(ctx, zeljo())
	require.NoError(t, err)

	got, err := service.IsFavorite(ctx, "1")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = service.IsFavorite(ctx, "2")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestServiceImpl_ReplaceFavorites(t *testing.T) {
	service, _ := setupServiceTest()
	ctx := context.Background()

	require.NoError(t, service.ReplaceFavorites(ctx, []types.Restaurant{zeljo()}))
	require.NoError(t, service.ReplaceFavorites(ctx, []types.Restaurant{}))

	favorites, err := service.Favorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestServiceImpl_AddReview_PrependsNewest(t *testing.T) {
	service, _ := setupServiceTest()
	ctx := context.Background()

	first, err := service.AddReview(ctx, "1", types.Review{Rating: 4, Comment: "Dobro"})
	require.NoError(t, err)

	second, err := service.AddReview(ctx, "1", types.Review{Rating: 5, Comment: "Odlično"})
	require.NoError(t, err)

	remote := []types.Review{{ID: "g1", User: "Google User", Rating: 3}}
	merged, err := service.MergedReviews(ctx, "1", remote)
	require.NoError(t, err)

	require.Len(t, merged, 3)
	assert.Equal(t, second.ID, merged[0].ID)
	assert.Equal(t, first.ID, merged[1].ID)
	assert.Equal(t, "g1", merged[2].ID)
}

func TestServiceImpl_AddReview_AppliesDefaults(t *testing.T) {
	service, _ := setupServiceTest()
	ctx := context.Background()

	stored, err := service.AddReview(ctx, "1", types.Review{Rating: 5})
	require.NoError(t, err)

	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, "Korisnik", stored.User)
	assert.Equal(t, "Danas", stored.Date)
	assert.Empty(t, stored.Comment) // comment stays optional
}

func TestServiceImpl_AddReview_RejectsZeroRating(t *testing.T) {
	service, _ := setupServiceTest()
	ctx := context.Background()

	_, err := service.AddReview(ctx, "1", types.Review{Rating: 0, Comment: "no stars"})
	assert.ErrorIs(t, err, types.ErrInvalidReview)

	reviews, err := service.MergedReviews(ctx, "1", nil)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestServiceImpl_MergedReviews_KeepsLocalFirst(t *testing.T) {
	service, _ := setupServiceTest()
	ctx := context.Background()

	_, err := service.AddReview(ctx, "1", types.Review{Rating: 5, Comment: "Lokalna"})
	require.NoError(t, err)

	remote := []types.Review{
		{ID: "g1", Rating: 4},
		{ID: "g2", Rating: 2},
	}
	merged, err := service.MergedReviews(ctx, "1", remote)
	require.NoError(t, err)

	require.Len(t, merged, 3)
	assert.Equal(t, "Lokalna", merged[0].Comment)
	assert.Equal(t, "g1", merged[1].ID)
	assert.Equal(t, "g2", merged[2].ID)
}

func TestServiceImpl_StoreErrorsAreWrapped(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	mockStore := new(MockStore)
	service := NewServiceImpl(mockStore, logger)
	ctx := context.Background()

	storeErr := errors.New("db down")
	mockStore.On("GetFavorites", mock.Anything).Return(nil, storeErr)

	_, err := service.Favorites(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Contains(t, err.Error(), "failed to load favorites")

	_, err = service.ToggleFavorite(ctx, zeljo())
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	mockStore.AssertExpectations(t)
}
