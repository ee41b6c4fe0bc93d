package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/locato-app/locato-api/internal/domain/catalog"
	"github.com/locato-app/locato-api/internal/domain/search"
	searchhandler "github.com/locato-app/locato-api/internal/domain/search/handler"
	"github.com/locato-app/locato-api/internal/domain/userstate"
	userstatehandler "github.com/locato-app/locato-api/internal/domain/userstate/handler"
	"github.com/locato-app/locato-api/internal/llm"
	"github.com/locato-app/locato-api/internal/places"
	"github.com/locato-app/locato-api/pkg/config"
	"github.com/locato-app/locato-api/pkg/db"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	DB     *db.DB
	Logger *slog.Logger

	// Stores and clients
	StateStore   userstate.Store
	PlacesClient places.SearchClient
	Enricher     llm.ChatClient
	Catalog      *catalog.Catalog

	// Services
	SearchService    search.Service
	UserStateService userstate.Service

	// Handlers
	SearchHandler    *searchhandler.SearchHandler
	UserStateHandler *userstatehandler.UserStateHandler
}

// InitDependencies initializes all application dependencies
func InitDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	if err := deps.initStores(ctx); err != nil {
		return nil, fmt.Errorf("failed to init stores: %w", err)
	}
	if err := deps.initClients(ctx); err != nil {
		return nil, fmt.Errorf("failed to init clients: %w", err)
	}
	deps.initServices()
	deps.initHandlers()

	logger.Info("all dependencies initialized successfully")

	return deps, nil
}

// initStores connects the user state store. Without DATABASE_URL the
// service falls back to an in-memory store.
func (d *Dependencies) initStores(ctx context.Context) error {
	if !d.Config.Database.Enabled() {
		d.Logger.Warn("no database configured, user state is in-memory only")
		d.StateStore = userstate.NewMemoryStore()
		return nil
	}

	database, err := db.New(ctx, db.Config{
		DSN:             d.Config.Database.URL,
		MaxConns:        25,
		MinConns:        5,
		MaxConnLifetime: 5 * time.Minute,
		MaxConnIdleTime: 10 * time.Minute,
	}, d.Logger)
	if err != nil {
		return err
	}
	d.DB = database

	store := userstate.NewPostgresStore(database.Pool, d.Logger)
	if err := store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to ensure user state schema: %w", err)
	}
	d.StateStore = store

	d.Logger.Info("user state store connected")
	return nil
}

// initClients sets up the outbound Places and Gemini clients. Both are
// optional; missing keys degrade the service rather than failing boot.
func (d *Dependencies) initClients(ctx context.Context) error {
	d.PlacesClient = places.NewClient(d.Config.Places.APIKey, d.Logger)
	if !d.PlacesClient.HasCredential() {
		d.Logger.Warn("no Places API key configured, serving the offline catalog only")
	}

	if d.Config.Gemini.APIKey != "" {
		enricher, err := llm.NewGeminiChatClient(ctx, d.Config.Gemini.APIKey, d.Config.Gemini.Model)
		if err != nil {
			d.Logger.Warn("failed to init Gemini client, description enrichment disabled",
				slog.Any("error", err))
		} else {
			d.Enricher = enricher
		}
	}

	d.Catalog = catalog.New(catalog.SampleRestaurants())
	return nil
}

// initServices initializes all service layer dependencies
func (d *Dependencies) initServices() {
	d.SearchService = search.NewServiceImpl(d.PlacesClient, d.Catalog, d.Enricher, d.Logger)
	d.UserStateService = userstate.NewServiceImpl(d.StateStore, d.Logger)
	d.Logger.Info("services initialized")
}

// initHandlers initializes all handler dependencies
func (d *Dependencies) initHandlers() {
	d.SearchHandler = searchhandler.NewSearchHandler(d.SearchService, d.Logger)
	d.UserStateHandler = userstatehandler.NewUserStateHandler(d.UserStateService, d.Logger)
	d.Logger.Info("handlers initialized")
}

// Cleanup closes all resources
func (d *Dependencies) Cleanup() {
	if d.DB != nil {
		d.DB.Close()
	}
	d.Logger.Info("cleanup completed")
}
