package userstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/locato-app/locato-api/internal/types"
)

// pgxQuerier is the slice of pgxpool.Pool this store needs; pgxmock
// satisfies it in tests.
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ Store = (*PostgresStore)(nil)

// PostgresStore keeps user state in a single key-to-JSONB table. Every
// write replaces the whole value for its key; concurrent writers are not
// arbitrated (last write wins), which matches the single-user assumption.
type PostgresStore struct {
	logger *slog.Logger
	pool   pgxQuerier
}

func NewPostgresStore(pool pgxQuerier, logger *slog.Logger) *PostgresStore {
	return &PostgresStore{
		logger: logger,
		pool:   pool,
	}
}

// EnsureSchema creates the backing table when it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := `
        CREATE TABLE IF NOT EXISTS user_state (
            key        TEXT PRIMARY KEY,
            value      JSONB NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )
    `
	if _, err := s.pool.Exec(ctx, query); err != nil {
		s.logger.ErrorContext(ctx, "Failed to ensure user_state schema", slog.Any("error", err))
		return fmt.Errorf("failed to ensure user_state schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) getValue(ctx context.Context, key string, out any) error {
	query := `SELECT value FROM user_state WHERE key = $1`

	var raw []byte
	err := s.pool.QueryRow(ctx, query, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	}
	return json.Unmarshal(raw, out)
}

func (s *PostgresStore) setValue(ctx context.Context, key string, value any) error {
	query := `
        INSERT INTO user_state (key, value, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
    `
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, query, key, raw)
	return err
}

func (s *PostgresStore) GetFavorites(ctx context.Context) ([]types.Restaurant, error) {
	ctx, span := otel.Tracer("UserStateStore").Start(ctx, "GetFavorites")
	defer span.End()

	favorites := []types.Restaurant{}
	if err := s.getValue(ctx, favoritesKey, &favorites); err != nil {
		s.logger.ErrorContext(ctx, "Failed to read favorites", slog.Any("error", err))
		return nil, wrapStoreErr("read favorites", err)
	}
	span.SetAttributes(attribute.Int("favorites.count", len(favorites)))
	return favorites, nil
}

func (s *PostgresStore) SetFavorites(ctx context.Context, favorites []types.Restaurant) error {
	ctx, span := otel.Tracer("UserStateStore").Start(ctx, "SetFavorites", trace.WithAttributes(
		attribute.Int("favorites.count", len(favorites)),
	))
	defer span.End()

	if err := s.setValue(ctx, favoritesKey, favorites); err != nil {
		s.logger.ErrorContext(ctx, "Failed to write favorites", slog.Any("error", err))
		return wrapStoreErr("write favorites", err)
	}
	return nil
}

func (s *PostgresStore) GetLocalReviews(ctx context.Context, restaurantID string) ([]types.Review, error) {
	ctx, span := otel.Tracer("UserStateStore").Start(ctx, "GetLocalReviews", trace.WithAttributes(
		attribute.String("restaurant.id", restaurantID),
	))
	defer span.End()

	reviews := []types.Review{}
	if err := s.getValue(ctx, reviewsKey(restaurantID), &reviews); err != nil {
		s.logger.ErrorContext(ctx, "Failed to read local reviews", slog.Any("error", err))
		return nil, wrapStoreErr("read local reviews", err)
	}
	return reviews, nil
}

func (s *PostgresStore) AppendLocalReview(ctx context.Context, restaurantID string, review types.Review) error {
	ctx, span := otel.Tracer("UserStateStore").Start(ctx, "AppendLocalReview", trace.WithAttributes(
		attribute.String("restaurant.id", restaurantID),
	))
	defer span.End()

	current, err := s.GetLocalReviews(ctx, restaurantID)
	if err != nil {
		return err
	}
	if err := s.setValue(ctx, reviewsKey(restaurantID), prependReview(current, review)); err != nil {
		s.logger.ErrorContext(ctx, "Failed to write local reviews", slog.Any("error", err))
		return wrapStoreErr("write local reviews", err)
	}
	return nil
}
