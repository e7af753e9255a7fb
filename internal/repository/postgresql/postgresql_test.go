package postgresql

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/holiday"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/staff"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/database"
)

// Integration tests. Provide TEST_DATABASE_URL to run them against a
// disposable database; they provision their own tables and truncate on
// cleanup.
const testSchema = `
CREATE TABLE IF NOT EXISTS staff (
	id            TEXT PRIMARY KEY,
	full_name     TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	home_region   TEXT NOT NULL DEFAULT '',
	is_admin      BOOLEAN NOT NULL DEFAULT FALSE,
	is_active     BOOLEAN NOT NULL DEFAULT TRUE,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	deleted_at    TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS bank_holidays (
	id         TEXT PRIMARY KEY,
	date       DATE NOT NULL,
	region     TEXT NOT NULL,
	title      TEXT NOT NULL,
	source     TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (date, region)
);

CREATE TABLE IF NOT EXISTS holiday_sync_state (
	id             INT PRIMARY KEY,
	last_synced_at TIMESTAMPTZ NOT NULL
);
`

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)

	_, err = db.Exec(context.Background(), testSchema)
	require.NoError(t, err)

	t.Cleanup(func() {
		_, _ = db.Exec(context.Background(), `TRUNCATE staff, bank_holidays, holiday_sync_state`)
		db.Close()
	})

	return db
}

func TestStaffRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStaffRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, staff.Staff{
		FullName:     "Priya Shah",
		Email:        "priya@example.test",
		PasswordHash: "x",
		HomeRegion:   holiday.RegionScotland,
		IsActive:     true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Priya Shah", byID.FullName)
	assert.Equal(t, holiday.RegionScotland, byID.HomeRegion)

	byEmail, err := repo.GetByEmail(ctx, "priya@example.test")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID.IsActive = false
	require.NoError(t, repo.Update(ctx, byID))

	active, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), staff.ErrStaffNotFound)
}

func TestHolidayRepository_UpsertIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHolidayRepository(db)
	ctx := context.Background()

	easter := time.Date(2025, time.April, 21, 0, 0, 0, 0, time.UTC)
	rows := []holiday.BankHoliday{{
		Date:   easter,
		Region: holiday.RegionEnglandAndWales,
		Title:  "Easter Monday",
		Source: "gov.uk",
	}}

	written, err := repo.Upsert(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 1, written)

	rows[0].Title = "Easter Monday (substitute)"
	written, err = repo.Upsert(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 1, written)

	stored, err := repo.ListByRegion(ctx, holiday.RegionEnglandAndWales,
		time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Easter Monday (substitute)", stored[0].Title)
}

func TestSyncStateRepository_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSyncStateRepository(db)
	ctx := context.Background()

	last, err := repo.LastSyncedAt(ctx)
	require.NoError(t, err)
	assert.Nil(t, last)

	at := time.Date(2025, time.August, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.MarkSynced(ctx, at))

	last, err = repo.LastSyncedAt(ctx)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.True(t, last.Equal(at))
}
