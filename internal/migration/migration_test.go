package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func migrationFS(files map[string]string) fstest.MapFS {
	m := fstest.MapFS{}
	for name, content := range files {
		m[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return m
}

func TestCurrentVersion_FreshDatabase(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(nil))

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0 on a fresh database, got %d", version)
	}
}

func TestApply_RunsPendingMigrationsInOrder(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"002_add_column.sql": "ALTER TABLE things ADD COLUMN label TEXT;",
		"001_init.sql":       "CREATE TABLE things (id INTEGER PRIMARY KEY);",
	}))

	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("expected 2 migrations applied, got %d", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("expected version 2 after applying, got %d", version)
	}

	// The 002 column only exists if 001 ran first.
	if _, err := db.Exec("INSERT INTO things (id, label) VALUES (1, 'a')"); err != nil {
		t.Errorf("expected migrated schema to accept inserts: %v", err)
	}
}

func TestApply_IsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	fsys := migrationFS(map[string]string{
		"001_init.sql": "CREATE TABLE things (id INTEGER PRIMARY KEY);",
	})
	runner := NewRunner(db, fsys)

	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("first Apply failed: %v", err)
	}

	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("expected 0 migrations on the second run, got %d", applied)
	}
}

func TestApply_RejectsNewerDatabase(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_init.sql": "CREATE TABLE things (id INTEGER PRIMARY KEY);",
	}))

	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	// Simulate a database touched by a newer build.
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("failed to bump version: %v", err)
	}

	if _, err := runner.Apply(nil); err == nil {
		t.Error("expected Apply to reject a newer database schema")
	}
	if err := runner.ValidateVersion(); err == nil {
		t.Error("expected ValidateVersion to reject a newer database schema")
	}
}

func TestMigrations_RejectsBadFilenames(t *testing.T) {
	db := setupTestDB(t)

	cases := map[string]map[string]string{
		"missing name":      {"001.sql": "SELECT 1;"},
		"bad version":       {"abc_init.sql": "SELECT 1;"},
		"duplicate version": {"001_a.sql": "SELECT 1;", "001_b.sql": "SELECT 1;"},
		"zero version":      {"000_init.sql": "SELECT 1;"},
	}

	for name, files := range cases {
		runner := NewRunner(db, migrationFS(files))
		if _, err := runner.Migrations(); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestApply_FailedMigrationRollsBack(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_init.sql": "CREATE TABLE things (id INTEGER PRIMARY KEY);",
		"002_bad.sql":  "THIS IS NOT SQL;",
	}))

	applied, err := runner.Apply(nil)
	if err == nil {
		t.Fatal("expected Apply to fail on invalid SQL")
	}
	if applied != 1 {
		t.Errorf("expected the valid migration to have been applied, got %d", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 1 {
		t.Errorf("expected version to stay at 1 after the failed migration, got %d", version)
	}
}
