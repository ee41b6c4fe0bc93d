package userstate

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locato-app/locato-api/internal/types"
)

func setupPostgresStoreTest(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewPostgresStore(mockPool, logger), mockPool
}

func TestPostgresStore_GetFavorites_EmptyWhenNoRow(t *testing.T) {
	store, mockPool := setupPostgresStoreTest(t)

	mockPool.ExpectQuery(regexp.QuoteMeta("SELECT value FROM user_state")).
		WithArgs(favoritesKey).
		WillReturnError(pgx.ErrNoRows)

	favorites, err := store.GetFavorites(context.Background())

	require.NoError(t, err)
	assert.Empty(t, favorites)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestPostgresStore_GetFavorites_DecodesStoredValue(t *testing.T) {
	store, mockPool := setupPostgresStoreTest(t)

	stored, err := json.Marshal([]types.Restaurant{{ID: "1", Name: "Dveri"}})
	require.NoError(t, err)

	mockPool.ExpectQuery(regexp.QuoteMeta("SELECT value FROM user_state")).
		WithArgs(favoritesKey).
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow(stored))

	favorites, err := store.GetFavorites(context.Background())

	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Dveri", favorites[0].Name)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestPostgresStore_SetFavorites_UpsertsWholeValue(t *testing.T) {
	store, mockPool := setupPostgresStoreTest(t)

	favorites := []types.Restaurant{{ID: "1", Name: "Dveri"}}
	raw, err := json.Marshal(favorites)
	require.NoError(t, err)

	mockPool.ExpectExec(regexp.QuoteMeta("INSERT INTO user_state")).
		WithArgs(favoritesKey, raw).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, store.SetFavorites(context.Background(), favorites))
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestPostgresStore_AppendLocalReview_PrependsAndWrites(t *testing.T) {
	store, mockPool := setupPostgresStoreTest(t)

	existing, err := json.Marshal([]types.Review{{ID: "old", Rating: 3}})
	require.NoError(t, err)
	expected, err := json.Marshal([]types.Review{{ID: "new", Rating: 5}, {ID: "old", Rating: 3}})
	require.NoError(t, err)

	mockPool.ExpectQuery(regexp.QuoteMeta("SELECT value FROM user_state")).
		WithArgs(reviewsKey("42")).
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow(existing))
	mockPool.ExpectExec(regexp.QuoteMeta("INSERT INTO user_state")).
		WithArgs(reviewsKey("42"), expected).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = store.AppendLocalReview(context.Background(), "42", types.Review{ID: "new", Rating: 5})

	require.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestPostgresStore_EnsureSchema(t *testing.T) {
	store, mockPool := setupPostgresStoreTest(t)

	mockPool.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS user_state")).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, store.EnsureSchema(context.Background()))
	assert.NoError(t, mockPool.ExpectationsWereMet())
}
