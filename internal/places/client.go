// Package places is the adapter over the Google Places API (New)
// searchText endpoint. It issues one biased text-search request and
// normalizes the loosely-typed response into the domain model. Every
// failure mode maps to a typed error so the orchestrator can fall back
// to the offline catalog.
package places

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/locato-app/locato-api/internal/types"
)

const (
	searchTextEndpoint = "https://places.googleapis.com/v1/places:searchText"
	biasRadiusMeters   = 5000
)

// sarajevoCenter is the fixed bias center used when the caller supplies
// no coordinates.
var sarajevoCenter = types.Coordinates{Latitude: 43.8563, Longitude: 18.4131}

// fieldMask selects exactly the response fields the mapping consumes.
var fieldMask = strings.Join([]string{
	"places.id",
	"places.displayName",
	"places.formattedAddress",
	"places.types",
	"places.rating",
	"places.userRatingCount",
	"places.websiteUri",
	"places.internationalPhoneNumber",
	"places.regularOpeningHours",
	"places.photos",
	"places.editorialSummary",
	"places.reviews",
	"places.location",
}, ",")

// SearchClient is the orchestrator's view of the remote service.
type SearchClient interface {
	SearchText(ctx context.Context, query string, userLocation *types.Coordinates) ([]types.Restaurant, error)
	HasCredential() bool
}

var _ SearchClient = (*Client)(nil)

// Client talks to the Places API over HTTP.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Places search client. An empty apiKey is allowed;
// SearchText then fails with ErrNoCredential and the caller routes to
// the offline catalog.
func NewClient(apiKey string, logger *slog.Logger) *Client {
	return &Client{
		apiKey:     apiKey,
		endpoint:   searchTextEndpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// HasCredential reports whether a Places API key is configured.
func (c *Client) HasCredential() bool {
	return c.apiKey != ""
}

// SearchText runs one text search biased toward userLocation, or toward
// the Sarajevo center when userLocation is nil, and returns normalized
// restaurants. Zero places is an error (ErrRemoteEmpty) so fallback
// policy stays in one place.
func (c *Client) SearchText(ctx context.Context, query string, userLocation *types.Coordinates) ([]types.Restaurant, error) {
	ctx, span := otel.Tracer("PlacesClient").Start(ctx, "SearchText", trace.WithAttributes(
		attribute.String("search.query", query),
		attribute.Bool("search.has_location", userLocation != nil),
	))
	defer span.End()

	if !c.HasCredential() {
		return nil, types.ErrNoCredential
	}

	center := sarajevoCenter
	if userLocation != nil {
		center = *userLocation
	}

	body, err := json.Marshal(searchTextRequest{
		TextQuery: query,
		LocationBias: locationBias{
			Circle: circle{
				Center: latLng{Latitude: center.Latitude, Longitude: center.Longitude},
				Radius: biasRadiusMeters,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		return nil, fmt.Errorf("%w: %w", types.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		span.SetStatus(codes.Error, fmt.Sprintf("status %d", resp.StatusCode))
		c.logger.WarnContext(ctx, "Places API returned non-success status",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(snippet)),
		)
		return nil, fmt.Errorf("%w: status %d", types.ErrRemoteUnavailable, resp.StatusCode)
	}

	var decoded searchTextResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%w: failed to decode response: %w", types.ErrRemoteUnavailable, err)
	}

	if len(decoded.Places) == 0 {
		return nil, types.ErrRemoteEmpty
	}

	restaurants := make([]types.Restaurant, 0, len(decoded.Places))
	for _, p := range decoded.Places {
		restaurants = append(restaurants, c.mapPlace(p, userLocation))
	}

	span.SetAttributes(attribute.Int("search.result_count", len(restaurants)))
	c.logger.DebugContext(ctx, "Places search completed",
		slog.String("query", query),
		slog.Int("count", len(restaurants)),
	)
	return restaurants, nil
}
