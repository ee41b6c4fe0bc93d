// Package search is the discovery façade: it decides remote versus
// offline, applies fallback policy, and returns the final ordered list.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/locato-app/locato-api/internal/domain/catalog"
	"github.com/locato-app/locato-api/internal/llm"
	"github.com/locato-app/locato-api/internal/places"
	"github.com/locato-app/locato-api/internal/types"
	"github.com/locato-app/locato-api/pkg/observability"
)

// maxEnrichedPerSearch bounds how many missing descriptions a single
// search is allowed to backfill through the LLM.
const maxEnrichedPerSearch = 3

var _ Service = (*ServiceImpl)(nil)

// Service is the public search contract. Search never fails for a
// fallback-able reason: remote trouble degrades to the offline catalog.
type Service interface {
	Search(ctx context.Context, query string, userLocation *types.Coordinates) ([]types.Restaurant, error)
	DefaultCatalog() []types.Restaurant
}

type ServiceImpl struct {
	logger   *slog.Logger
	client   places.SearchClient
	catalog  *catalog.Catalog
	enricher llm.ChatClient // optional; nil disables description enrichment
	cache    *cache.Cache
}

func NewServiceImpl(client places.SearchClient, cat *catalog.Catalog, enricher llm.ChatClient, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:   logger,
		client:   client,
		catalog:  cat,
		enricher: enricher,
		cache:    cache.New(5*time.Minute, 10*time.Minute),
	}
}

// Search resolves a free-text query into an ordered restaurant list.
// Without a credential the network is skipped entirely; otherwise one
// remote attempt is made and any failure or empty result falls back to
// the offline catalog filtered with the original query.
func (s *ServiceImpl) Search(ctx context.Context, query string, userLocation *types.Coordinates) ([]types.Restaurant, error) {
	ctx, span := otel.Tracer("SearchService").Start(ctx, "Search", trace.WithAttributes(
		attribute.String("search.query", query),
		attribute.Bool("search.has_location", userLocation != nil),
	))
	defer span.End()

	l := s.logger.With(slog.String("service", "Search"), slog.String("query", query))

	if !s.client.HasCredential() {
		l.DebugContext(ctx, "No places credential configured, serving offline catalog")
		span.SetAttributes(attribute.String("search.source", observability.SourceOffline))
		observability.SearchesTotal.WithLabelValues(observability.SourceOffline).Inc()
		return s.catalog.Filter(query), nil
	}

	cacheKey := searchCacheKey(query, userLocation)
	if cached, found := s.cache.Get(cacheKey); found {
		if restaurants, ok := cached.([]types.Restaurant); ok {
			l.DebugContext(ctx, "Serving search from cache", slog.String("key", cacheKey))
			span.SetAttributes(attribute.String("search.source", observability.SourceCache))
			observability.SearchesTotal.WithLabelValues(observability.SourceCache).Inc()
			return restaurants, nil
		}
	}

	restaurants, err := s.client.SearchText(ctx, query, userLocation)
	if err != nil || len(restaurants) == 0 {
		if err != nil {
			l.WarnContext(ctx, "Place search failed, falling back to offline catalog", slog.Any("error", err))
		}
		span.SetAttributes(attribute.String("search.source", observability.SourceOffline))
		observability.RemoteFailuresTotal.Inc()
		observability.SearchesTotal.WithLabelValues(observability.SourceOffline).Inc()
		return s.catalog.Filter(query), nil
	}

	s.enrichDescriptions(ctx, restaurants)

	s.cache.Set(cacheKey, restaurants, cache.DefaultExpiration)
	span.SetAttributes(
		attribute.String("search.source", observability.SourceRemote),
		attribute.Int("search.result_count", len(restaurants)),
	)
	observability.SearchesTotal.WithLabelValues(observability.SourceRemote).Inc()
	l.InfoContext(ctx, "Search completed from remote", slog.Int("count", len(restaurants)))
	return restaurants, nil
}

// DefaultCatalog returns the full offline catalog, used for an instant
// first paint before any explicit search.
func (s *ServiceImpl) DefaultCatalog() []types.Restaurant {
	return s.catalog.All()
}

// enrichDescriptions backfills missing descriptions through the LLM.
// Best-effort only: failures are logged and the placeholder stays.
func (s *ServiceImpl) enrichDescriptions(ctx context.Context, restaurants []types.Restaurant) {
	if s.enricher == nil {
		return
	}

	enriched := 0
	for i := range restaurants {
		if enriched >= maxEnrichedPerSearch {
			return
		}
		if restaurants[i].Description != places.NoDescription {
			continue
		}

		prompt := llm.DescriptionPrompt(restaurants[i].Name, restaurants[i].Cuisine, restaurants[i].Address)
		description, err := s.enricher.GenerateContent(ctx, prompt)
		if err != nil {
			s.logger.WarnContext(ctx, "Description enrichment failed",
				slog.String("restaurant_id", restaurants[i].ID),
				slog.Any("error", err),
			)
			continue
		}
		if description != "" {
			restaurants[i].Description = description
			enriched++
		}
	}
}

func searchCacheKey(query string, userLocation *types.Coordinates) string {
	if userLocation == nil {
		return fmt.Sprintf("search:%s:none", query)
	}
	return fmt.Sprintf("search:%s:%.4f:%.4f", query, userLocation.Latitude, userLocation.Longitude)
}
