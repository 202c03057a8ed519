package storage

import "github.com/mcisneros0046-pixel/Star-Flow/internal/models"

// Provider is the persistence contract for the tracker document:
// {profile, activities, targets, rewards, entries, promises, claimed}.
//
// Entries are an append-only ordered log and providers must hand them back
// in insertion order: scoring reads that order directly.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Profile
	GetProfile() (models.Profile, error)
	SaveProfile(models.Profile) error

	// Activity catalog
	GetActivities() (models.Catalog, error)
	AddActivity(models.ActivityDefinition) error
	UpdateActivity(models.ActivityDefinition) error

	// Targets
	GetTargets() (models.Targets, error)
	SaveTargets(models.Targets) error

	// Session log
	GetEntries() ([]models.SessionEntry, error)
	AppendEntry(models.SessionEntry) error
	// RemoveEntryForDay removes the index-th entry (0-based) of the day's
	// filtered view, the only removal the log supports.
	RemoveEntryForDay(day string, index int) error

	// Weekly commitments, keyed by "YYYY-MM-Wn"
	GetPromise(weekKey string) (string, error)
	SetPromise(weekKey, text string) error
	IsClaimed(weekKey string) (bool, error)
	SetClaimed(weekKey string, claimed bool) error

	// Rewards
	GetRewards() ([]models.Reward, error)
	AddReward(models.Reward) error
	RemoveReward(weekKey string) error

	// Utils
	GetConfigPath() string
}
