package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mcisneros0046-pixel/Star-Flow/internal/constants"
	"github.com/mcisneros0046-pixel/Star-Flow/internal/models"
)

// JSONStore keeps the whole document in one JSON file and rewrites it on
// every mutation.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple starflow processes against the same file at the same
//     time is not supported and may lose data.
type JSONStore struct {
	path string
	doc  *Document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &Document{
		Version: SchemaVersion,
		Profile: models.Profile{CreatedAt: time.Now()},
		Targets: models.Targets{
			WeeklyStarTarget: constants.DefaultWeeklyStarTarget,
			MonthlyTarget:    constants.DefaultMonthlyTarget,
			MonthlyStretch:   constants.DefaultMonthlyStretch,
		},
		Promises: make(map[string]string),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'starflow init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	data, err = UpcastDocument(data)
	if err != nil {
		return err
	}

	s.doc = &Document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.doc.Promises == nil {
		s.doc.Promises = make(map[string]string)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetProfile() (models.Profile, error) {
	if s.doc == nil {
		return models.Profile{}, fmt.Errorf("storage not loaded")
	}
	return s.doc.Profile, nil
}

func (s *JSONStore) SaveProfile(profile models.Profile) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Profile = profile
	return s.save()
}

func (s *JSONStore) GetActivities() (models.Catalog, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.doc.Activities, nil
}

func (s *JSONStore) AddActivity(activity models.ActivityDefinition) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, ok := s.doc.Activities.ByID(activity.ID); ok {
		return fmt.Errorf("activity already exists: %s", activity.ID)
	}
	s.doc.Activities = append(s.doc.Activities, activity)
	return s.save()
}

func (s *JSONStore) UpdateActivity(activity models.ActivityDefinition) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	for i, a := range s.doc.Activities {
		if a.ID == activity.ID {
			s.doc.Activities[i] = activity
			return s.save()
		}
	}
	return fmt.Errorf("activity not found: %s", activity.ID)
}

func (s *JSONStore) GetTargets() (models.Targets, error) {
	if s.doc == nil {
		return models.Targets{}, fmt.Errorf("storage not loaded")
	}
	return s.doc.Targets, nil
}

func (s *JSONStore) SaveTargets(targets models.Targets) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Targets = targets
	return s.save()
}

func (s *JSONStore) GetEntries() ([]models.SessionEntry, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.doc.Entries, nil
}

func (s *JSONStore) AppendEntry(entry models.SessionEntry) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Entries = append(s.doc.Entries, entry)
	return s.save()
}

func (s *JSONStore) RemoveEntryForDay(day string, index int) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, indices := models.EntriesForDay(s.doc.Entries, day)
	if index < 0 || index >= len(indices) {
		return fmt.Errorf("no entry %d for %s", index, day)
	}

	at := indices[index]
	s.doc.Entries = append(s.doc.Entries[:at], s.doc.Entries[at+1:]...)
	return s.save()
}

func (s *JSONStore) GetPromise(weekKey string) (string, error) {
	if s.doc == nil {
		return "", fmt.Errorf("storage not loaded")
	}
	return s.doc.Promises[weekKey], nil
}

func (s *JSONStore) SetPromise(weekKey, text string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Promises[weekKey] = text
	return s.save()
}

func (s *JSONStore) IsClaimed(weekKey string) (bool, error) {
	if s.doc == nil {
		return false, fmt.Errorf("storage not loaded")
	}
	for _, k := range s.doc.Claimed {
		if k == weekKey {
			return true, nil
		}
	}
	return false, nil
}

func (s *JSONStore) SetClaimed(weekKey string, claimed bool) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	kept := s.doc.Claimed[:0]
	for _, k := range s.doc.Claimed {
		if k != weekKey {
			kept = append(kept, k)
		}
	}
	s.doc.Claimed = kept
	if claimed {
		s.doc.Claimed = append(s.doc.Claimed, weekKey)
	}
	return s.save()
}

func (s *JSONStore) GetRewards() ([]models.Reward, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.doc.Rewards, nil
}

func (s *JSONStore) AddReward(reward models.Reward) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Rewards = append(s.doc.Rewards, reward)
	return s.save()
}

func (s *JSONStore) RemoveReward(weekKey string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	kept := s.doc.Rewards[:0]
	for _, r := range s.doc.Rewards {
		if r.WeekKey != weekKey {
			kept = append(kept, r)
		}
	}
	s.doc.Rewards = kept
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
