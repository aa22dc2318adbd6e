package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"league-server/internal/observability"

	"github.com/jmoiron/sqlx"
)

// TestDB wraps a test database instance
type TestDB struct {
	db    *sqlx.DB
	Store Store
}

// SetupTestDB connects to the PostgreSQL instance described by the TEST_DB_*
// variables and applies the migrations. The test is skipped when TEST_DB_HOST
// is not set.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	if os.Getenv("TEST_DB_HOST") == "" {
		t.Skip("TEST_DB_HOST not set, skipping database test")
	}

	db, err := setupPostgresDB(t)
	if err != nil {
		t.Fatalf("failed to setup test database: %v", err)
	}

	if err := runMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return &TestDB{
		db:    db,
		Store: Store{db: db, logger: observability.NewNopLogger()},
	}
}

func setupPostgresDB(t *testing.T) (*sqlx.DB, error) {
	t.Helper()

	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := getEnvOrDefault("TEST_DB_PORT", "5432")
	dbUser := getEnvOrDefault("TEST_DB_USER", "league_user")
	dbPass := getEnvOrDefault("TEST_DB_PASSWORD", "league_password")
	dbName := getEnvOrDefault("TEST_DB_NAME", "league_db")

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	db, err := sqlx.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db, nil
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// runMigrations applies the versioned migration files. They are written to
// be re-runnable.
func runMigrations(db *sqlx.DB) error {
	migrationsDir := "../../migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		migrationsDir = "migrations"
		if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
			return fmt.Errorf("migrations directory not found")
		}
	}

	files, err := filepath.Glob(filepath.Join(migrationsDir, "V*.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migration files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no migration files found in %s", migrationsDir)
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}
		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", filepath.Base(file), err)
		}
	}
	return nil
}

// Truncate clears all data from tables while preserving schema
func (tdb *TestDB) Truncate(t *testing.T, tables ...string) {
	t.Helper()

	if len(tables) == 0 {
		tables = []string{
			"results",
			"segment_efforts",
			"activities",
			"participant_tokens",
			"participants",
			"weeks",
			"seasons",
			"webhook_events",
			"webhook_subscription_status",
		}
	}

	query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(tables, ", "))
	if _, err := tdb.db.Exec(query); err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}

// SeedWeek inserts a season (if needed) and a week, returning the week id
func (tdb *TestDB) SeedWeek(t *testing.T, seasonName string, segmentID int64, laps int, start, end time.Time) int64 {
	t.Helper()
	ctx := context.Background()

	var seasonID int64
	err := tdb.db.GetContext(ctx, &seasonID, `
		INSERT INTO seasons (name, start_at, end_at) VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`, seasonName, start.AddDate(0, -1, 0), end.AddDate(0, 1, 0))
	if err != nil {
		t.Fatalf("failed to seed season: %v", err)
	}

	var weekID int64
	err = tdb.db.GetContext(ctx, &weekID, `
		INSERT INTO weeks (season_id, week_name, segment_id, required_laps, start_at, end_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`, seasonID, fmt.Sprintf("%s week", seasonName), segmentID, laps, start.UTC(), end.UTC())
	if err != nil {
		t.Fatalf("failed to seed week: %v", err)
	}
	return weekID
}

// SeedParticipant inserts a participant with a credential pair
func (tdb *TestDB) SeedParticipant(t *testing.T, athleteID int64, name string) {
	t.Helper()
	ctx := context.Background()

	if _, err := tdb.db.ExecContext(ctx, `INSERT INTO participants (strava_athlete_id, name) VALUES ($1, $2)`, athleteID, name); err != nil {
		t.Fatalf("failed to seed participant: %v", err)
	}
	_, err := tdb.db.ExecContext(ctx, `
		INSERT INTO participant_tokens (strava_athlete_id, access_token, refresh_token, expires_at)
		VALUES ($1, 'access', 'refresh', $2)`, athleteID, time.Now().Add(time.Hour).UTC())
	if err != nil {
		t.Fatalf("failed to seed participant token: %v", err)
	}
}
