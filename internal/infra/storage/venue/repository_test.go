package venue

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/pkg/dbmetrics"
)

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(dbmetrics.Wrap(db, nil))
	now := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name, timezone, is_active, created_at, updated_at FROM venues WHERE id = \$1`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "timezone", "is_active", "created_at", "updated_at"}).
				AddRow(int64(7), "Main hall", "Europe/Moscow", true, now, now))

		venue, err := repo.GetByID(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, "Main hall", venue.Name)
		assert.Equal(t, "Europe/Moscow", venue.Timezone)
		assert.True(t, venue.IsActive)
		assert.Equal(t, now, venue.CreatedAt)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM venues").
			WithArgs(int64(8)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), 8)

		assert.ErrorIs(t, err, ErrVenueNotFound)
	})

	t.Run("db failure", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM venues").
			WithArgs(int64(9)).
			WillReturnError(sql.ErrConnDone)

		_, err := repo.GetByID(context.Background(), 9)

		assert.ErrorIs(t, err, ErrScanRow)
		assert.NotErrorIs(t, err, ErrVenueNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
