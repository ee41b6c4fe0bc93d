// Package handler exposes favorites and local reviews over JSON HTTP.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/locato-app/locato-api/internal/domain/userstate"
	"github.com/locato-app/locato-api/internal/types"
)

type UserStateHandler struct {
	service userstate.Service
	logger  *slog.Logger
}

func NewUserStateHandler(service userstate.Service, logger *slog.Logger) *UserStateHandler {
	return &UserStateHandler{service: service, logger: logger}
}

// Favorites handles GET /v1/favorites.
func (h *UserStateHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.service.Favorites(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to load favorites", slog.Any("error", err))
		http.Error(w, "failed to load favorites", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, favorites)
}

// ReplaceFavorites handles PUT /v1/favorites with the full list as body.
func (h *UserStateHandler) ReplaceFavorites(w http.ResponseWriter, r *http.Request) {
	var favorites []types.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&favorites); err != nil {
		http.Error(w, "invalid favorites payload", http.StatusBadRequest)
		return
	}
	if err := h.service.ReplaceFavorites(r.Context(), favorites); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to replace favorites", slog.Any("error", err))
		http.Error(w, "failed to save favorites", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToggleFavorite handles POST /v1/favorites/toggle with the restaurant as
// body. The response reports whether the restaurant is now a favorite.
func (h *UserStateHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	var restaurant types.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&restaurant); err != nil || restaurant.ID == "" {
		http.Error(w, "invalid restaurant payload", http.StatusBadRequest)
		return
	}
	isFavorite, err := h.service.ToggleFavorite(r.Context(), restaurant)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to toggle favorite",
			slog.String("restaurant_id", restaurant.ID), slog.Any("error", err))
		http.Error(w, "failed to toggle favorite", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"is_favorite": isFavorite})
}

// Reviews handles GET /v1/restaurants/{id}/reviews and returns the locally
// stored reviews, newest first.
func (h *UserStateHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	restaurantID := r.PathValue("id")
	if restaurantID == "" {
		http.Error(w, "missing restaurant id", http.StatusBadRequest)
		return
	}
	reviews, err := h.service.MergedReviews(r.Context(), restaurantID, nil)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to load reviews",
			slog.String("restaurant_id", restaurantID), slog.Any("error", err))
		http.Error(w, "failed to load reviews", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

// AddReview handles POST /v1/restaurants/{id}/reviews.
func (h *UserStateHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	restaurantID := r.PathValue("id")
	if restaurantID == "" {
		http.Error(w, "missing restaurant id", http.StatusBadRequest)
		return
	}
	var review types.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		http.Error(w, "invalid review payload", http.StatusBadRequest)
		return
	}
	stored, err := h.service.AddReview(r.Context(), restaurantID, review)
	if err != nil {
		if errors.Is(err, types.ErrInvalidReview) {
			http.Error(w, "rating must be between 1 and 5", http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(r.Context(), "Failed to store review",
			slog.String("restaurant_id", restaurantID), slog.Any("error", err))
		http.Error(w, "failed to store review", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
