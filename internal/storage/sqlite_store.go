package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mcisneros0046-pixel/Star-Flow/internal/constants"
	"github.com/mcisneros0046-pixel/Star-Flow/internal/migration"
	"github.com/mcisneros0046-pixel/Star-Flow/internal/models"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteStore persists the tracker document in a sqlite database. The schema
// is driven by the embedded numbered migrations; entries keep their log
// order through the autoincrement seq column.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Seed default targets on a fresh database
	if _, err := s.GetTargets(); err != nil {
		defaults := models.Targets{
			WeeklyStarTarget: constants.DefaultWeeklyStarTarget,
			MonthlyTarget:    constants.DefaultMonthlyTarget,
			MonthlyStretch:   constants.DefaultMonthlyStretch,
		}
		if err := s.SaveTargets(defaults); err != nil {
			return fmt.Errorf("failed to save default targets: %w", err)
		}
	}
	if _, err := s.GetProfile(); err != nil {
		if err := s.SaveProfile(models.Profile{CreatedAt: time.Now()}); err != nil {
			return fmt.Errorf("failed to save default profile: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'starflow init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Migrations ship embedded, so an older database is upgraded in place.
	return s.runMigrations()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) runMigrations() error {
	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	runner := migration.NewRunner(s.db, sub)
	_, err = runner.Apply(nil)
	return err
}

// GetDB exposes the raw connection for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

// MigrationRunner returns a runner over the embedded migrations, for
// diagnostics.
func (s *SQLiteStore) MigrationRunner() (*migration.Runner, error) {
	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return nil, err
	}
	return migration.NewRunner(s.db, sub), nil
}

func (s *SQLiteStore) GetProfile() (models.Profile, error) {
	rows, err := s.db.Query("SELECT key, value FROM profile")
	if err != nil {
		return models.Profile{}, err
	}
	defer rows.Close()

	profile := models.Profile{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Profile{}, err
		}
		switch key {
		case "name":
			profile.Name = value
		case "created_at":
			if t, err := time.Parse(time.RFC3339, value); err == nil {
				profile.CreatedAt = t
			}
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Profile{}, err
	}

	if count == 0 {
		return models.Profile{}, fmt.Errorf("profile not found")
	}
	return profile, nil
}

func (s *SQLiteStore) SaveProfile(profile models.Profile) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO profile (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec("name", profile.Name); err != nil {
		return err
	}
	if _, err := stmt.Exec("created_at", profile.CreatedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetActivities() (models.Catalog, error) {
	rows, err := s.db.Query("SELECT id, label, min_duration_min, color FROM activities")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var catalog models.Catalog
	for rows.Next() {
		var a models.ActivityDefinition
		if err := rows.Scan(&a.ID, &a.Label, &a.MinDurationMin, &a.Color); err != nil {
			return nil, err
		}
		catalog = append(catalog, a)
	}
	return catalog, rows.Err()
}

func (s *SQLiteStore) AddActivity(activity models.ActivityDefinition) error {
	_, err := s.db.Exec(
		"INSERT INTO activities (id, label, min_duration_min, color) VALUES (?, ?, ?, ?)",
		activity.ID, activity.Label, activity.MinDurationMin, activity.Color,
	)
	if err != nil {
		return fmt.Errorf("failed to add activity %s: %w", activity.ID, err)
	}
	return nil
}

func (s *SQLiteStore) UpdateActivity(activity models.ActivityDefinition) error {
	res, err := s.db.Exec(
		"UPDATE activities SET label = ?, min_duration_min = ?, color = ? WHERE id = ?",
		activity.Label, activity.MinDurationMin, activity.Color, activity.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("activity not found: %s", activity.ID)
	}
	return nil
}

func (s *SQLiteStore) GetTargets() (models.Targets, error) {
	rows, err := s.db.Query("SELECT key, value FROM targets")
	if err != nil {
		return models.Targets{}, err
	}
	defer rows.Close()

	targets := models.Targets{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Targets{}, err
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return models.Targets{}, fmt.Errorf("parsing target %s: %w", key, err)
		}
		switch key {
		case "weekly_star_target":
			targets.WeeklyStarTarget = f
		case "monthly_target":
			targets.MonthlyTarget = f
		case "monthly_stretch":
			targets.MonthlyStretch = f
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Targets{}, err
	}

	if count == 0 {
		return models.Targets{}, fmt.Errorf("targets not found")
	}
	return targets, nil
}

func (s *SQLiteStore) SaveTargets(targets models.Targets) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO targets (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	pairs := map[string]float64{
		"weekly_star_target": targets.WeeklyStarTarget,
		"monthly_target":     targets.MonthlyTarget,
		"monthly_stretch":    targets.MonthlyStretch,
	}
	for key, value := range pairs {
		if _, err := stmt.Exec(key, strconv.FormatFloat(value, 'f', -1, 64)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetEntries() ([]models.SessionEntry, error) {
	rows, err := s.db.Query("SELECT day, activity_id, duration_min, mindful FROM entries ORDER BY seq")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.SessionEntry
	for rows.Next() {
		var e models.SessionEntry
		if err := rows.Scan(&e.Day, &e.ActivityID, &e.DurationMin, &e.Mindful); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) AppendEntry(entry models.SessionEntry) error {
	_, err := s.db.Exec(
		"INSERT INTO entries (day, activity_id, duration_min, mindful) VALUES (?, ?, ?, ?)",
		entry.Day, entry.ActivityID, entry.DurationMin, entry.Mindful,
	)
	return err
}

func (s *SQLiteStore) RemoveEntryForDay(day string, index int) error {
	rows, err := s.db.Query("SELECT seq FROM entries WHERE day = ? ORDER BY seq", day)
	if err != nil {
		return err
	}
	defer rows.Close()

	var seqs []int64
	for rows.Next() {
		var seq int64
		if err := rows.Scan(&seq); err != nil {
			return err
		}
		seqs = append(seqs, seq)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if index < 0 || index >= len(seqs) {
		return fmt.Errorf("no entry %d for %s", index, day)
	}

	_, err = s.db.Exec("DELETE FROM entries WHERE seq = ?", seqs[index])
	return err
}

func (s *SQLiteStore) GetPromise(weekKey string) (string, error) {
	var text string
	err := s.db.QueryRow("SELECT text FROM promises WHERE week_key = ?", weekKey).Scan(&text)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return text, nil
}

func (s *SQLiteStore) SetPromise(weekKey, text string) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO promises (week_key, text) VALUES (?, ?)", weekKey, text)
	return err
}

func (s *SQLiteStore) IsClaimed(weekKey string) (bool, error) {
	var key string
	err := s.db.QueryRow("SELECT week_key FROM claimed WHERE week_key = ?", weekKey).Scan(&key)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *SQLiteStore) SetClaimed(weekKey string, claimed bool) error {
	if claimed {
		_, err := s.db.Exec("INSERT OR IGNORE INTO claimed (week_key) VALUES (?)", weekKey)
		return err
	}
	_, err := s.db.Exec("DELETE FROM claimed WHERE week_key = ?", weekKey)
	return err
}

func (s *SQLiteStore) GetRewards() ([]models.Reward, error) {
	rows, err := s.db.Query("SELECT id, week_key, label, exceeded, claimed_at FROM rewards ORDER BY claimed_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rewards []models.Reward
	for rows.Next() {
		var r models.Reward
		var claimedAt string
		if err := rows.Scan(&r.ID, &r.WeekKey, &r.Label, &r.Exceeded, &claimedAt); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, claimedAt); err == nil {
			r.ClaimedAt = t
		}
		rewards = append(rewards, r)
	}
	return rewards, rows.Err()
}

func (s *SQLiteStore) AddReward(reward models.Reward) error {
	_, err := s.db.Exec(
		"INSERT INTO rewards (id, week_key, label, exceeded, claimed_at) VALUES (?, ?, ?, ?, ?)",
		reward.ID, reward.WeekKey, reward.Label, reward.Exceeded, reward.ClaimedAt.Format(time.RFC3339),
	)
	return err
}

func (s *SQLiteStore) RemoveReward(weekKey string) error {
	_, err := s.db.Exec("DELETE FROM rewards WHERE week_key = ?", weekKey)
	return err
}

// GetConfigPath returns the path to the underlying database file.
func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
