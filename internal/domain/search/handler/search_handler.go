// Package handler exposes the search service over JSON HTTP. Handlers
// stay thin: parse, call the service, encode.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/locato-app/locato-api/internal/domain/search"
	"github.com/locato-app/locato-api/internal/types"
)

type SearchHandler struct {
	service search.Service
	logger  *slog.Logger
}

func NewSearchHandler(service search.Service, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{service: service, logger: logger}
}

// Search handles GET /v1/search?q=...&lat=...&lng=...
// Coordinates are optional; both must be present to bias the search.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	userLocation := parseCoordinates(r.URL.Query().Get("lat"), r.URL.Query().Get("lng"))

	restaurants, err := h.service.Search(r.Context(), query, userLocation)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Search failed", slog.Any("error", err))
		http.Error(w, "search failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, restaurants)
}

// Catalog handles GET /v1/catalog, the network-independent first paint.
func (h *SearchHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.DefaultCatalog())
}

func parseCoordinates(latStr, lngStr string) *types.Coordinates {
	if latStr == "" || lngStr == "" {
		return nil
	}
	lat, errLat := strconv.ParseFloat(latStr, 64)
	lng, errLng := strconv.ParseFloat(lngStr, 64)
	if errLat != nil || errLng != nil {
		return nil
	}
	return &types.Coordinates{Latitude: lat, Longitude: lng}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
