package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/locato-app/locato-api/internal/types"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type MockUserStateService struct {
	mock.Mock
}

func (m *MockUserStateService) Favorites(ctx context.Context) ([]types.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Restaurant), args.Error(1)
}

func (m *MockUserStateService) ReplaceFavorites(ctx context.Context, favorites []types.Restaurant) error {
	args := m.Called(ctx, favorites)
	return args.Error(0)
}

func (m *MockUserStateService) ToggleFavorite(ctx context.Context, restaurant types.Restaurant) (bool, error) {
	args := m.Called(ctx, restaurant)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserStateService) IsFavorite(ctx context.Context, restaurantID string) (bool, error) {
	args := m.Called(ctx, restaurantID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserStateService) MergedReviews(ctx context.Context, restaurantID string, remote []types.Review) ([]types.Review, error) {
	args := m.Called(ctx, restaurantID, remote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Review), args.Error(1)
}

func (m *MockUserStateService) AddReview(ctx context.Context, restaurantID string, review types.Review) (types.Review, error) {
	args := m.Called(ctx, restaurantID, review)
	return args.Get(0).(types.Review), args.Error(1)
}

func TestUserStateHandler_Favorites(t *testing.T) {
	favorites := []types.Restaurant{{ID: "7", Name: "Pivnica HS"}}

	mockService := new(MockUserStateService)
	mockService.On("Favorites", mock.Anything).Return(favorites, nil)

	h := NewUserStateHandler(mockService, discardLogger)
	rec := httptest.NewRecorder()
	h.Favorites(rec, httptest.NewRequest(http.MethodGet, "/v1/favorites", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var decoded []types.Restaurant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Equal(t, favorites, decoded)
}

func TestUserStateHandler_ReplaceFavorites(t *testing.T) {
	favorites := []types.Restaurant{{ID: "1"}, {ID: "2"}}

	mockService := new(MockUserStateService)
	mockService.On("ReplaceFavorites", mock.Anything, favorites).Return(nil)

	body, err := json.Marshal(favorites)
	require.NoError(t, err)

	h := NewUserStateHandler(mockService, discardLogger)
	rec := httptest.NewRecorder()
	h.ReplaceFavorites(rec, httptest.NewRequest(http.MethodPut, "/v1/favorites", strings.NewReader(string(body))))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	mockService.AssertExpectations(t)
}

func TestUserStateHandler_ReplaceFavorites_BadPayload(t *testing.T) {
	mockService := new(MockUserStateService)

	h := NewUserStateHandler(mockService, discardLogger)
	rec := httptest.NewRecorder()
	h.ReplaceFavorites(rec, httptest.NewRequest(http.MethodPut, "/v1/favorites", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockService.AssertNotCalled(t, "ReplaceFavorites", mock.Anything, mock.Anything)
}

func TestUserStateHandler_ToggleFavorite(t *testing.T) {
	restaurant := types.Restaurant{ID: "3", Name: "Dveri"}

	mockService := new(MockUserStateService)
	mockService.On("ToggleFavorite", mock.Anything, restaurant).Return(true, nil)

	body, err := json.Marshal(restaurant)
	require.NoError(t, err)

	h := NewUserStateHandler(mockService, discardLogger)
	rec := httptest.NewRecorder()
	h.ToggleFavorite(rec, httptest.NewRequest(http.MethodPost, "/v1/favorites/toggle", strings.NewReader(string(body))))

	require.Equal(t, http.StatusOK, rec.Code)

	var decoded map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.True(t, decoded["is_favorite"])
}

func TestUserStateHandler_ToggleFavorite_MissingID(t *testing.T) {
	mockService := new(MockUserStateService)

	h := NewUserStateHandler(mockService, discardLogger)
	rec := httptest.NewRecorder()
	h.ToggleFavorite(rec, httptest.NewRequest(http.MethodPost, "/v1/favorites/toggle", strings.NewReader(`{"name":"no id"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockService.AssertNotCalled(t, "ToggleFavorite", mock.Anything, mock.Anything)
}

func newReviewRequest(t *testing.T, restaurantID string, payload string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/restaurants/"+restaurantID+"/reviews", strings.NewReader(payload))
	req.SetPathValue("id", restaurantID)
	return req
}

func TestUserStateHandler_Reviews(t *testing.T) {
	reviews := []types.Review{{ID: "a", User: "Korisnik", Rating: 5}}

	mockService := new(MockUserStateService)
	mockService.On("MergedReviews", mock.Anything, "1", []types.Review(nil)).Return(reviews, nil)

	h := NewUserStateHandler(mockService, discardLogger)
	req := httptest.NewRequest(http.MethodGet, "/v1/restaurants/1/reviews", nil)
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()
	h.Reviews(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var decoded []types.Review
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Equal(t, reviews, decoded)
}

func TestUserStateHandler_AddReview(t *testing.T) {
	submitted := types.Review{Rating: 4, Comment: "Odlično"}
	stored := types.Review{ID: "gen", User: "Korisnik", Rating: 4, Comment: "Odlično", Date: "Danas"}

	mockService := new(MockUserStateService)
	mockService.On("AddReview", mock.Anything, "2", submitted).Return(stored, nil)

	h := NewUserStateHandler(mockService, discardLogger)
	rec := httptest.NewRecorder()
	h.AddReview(rec, newReviewRequest(t, "2", `{"rating":4,"comment":"Odlično"}`))

	require.Equal(t, http.StatusCreated, rec.Code)

	var decoded types.Review
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Equal(t, stored, decoded)
}

func TestUserStateHandler_AddReview_InvalidRating(t *testing.T) {
	mockService := new(MockUserStateService)
	mockService.On("AddReview", mock.Anything, "2", types.Review{Rating: 9}).
		Return(types.Review{}, types.ErrInvalidReview)

	h := NewUserStateHandler(mockService, discardLogger)
	rec := httptest.NewRecorder()
	h.AddReview(rec, newReviewRequest(t, "2", `{"rating":9}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserStateHandler_AddReview_StoreError(t *testing.T) {
	mockService := new(MockUserStateService)
	mockService.On("AddReview", mock.Anything, "2", mock.Anything).
		Return(types.Review{}, errors.New("db down"))

	h := NewUserStateHandler(mockService, discardLogger)
	rec := httptest.NewRecorder()
	h.AddReview(rec, newReviewRequest(t, "2", `{"rating":3}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
