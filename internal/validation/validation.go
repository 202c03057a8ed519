package validation

import (
	"fmt"
	"time"

	"github.com/mcisneros0046-pixel/Star-Flow/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateActivityID    ConflictType = "duplicate_activity_id"
	ConflictDuplicateActivityLabel ConflictType = "duplicate_activity_label"
	ConflictInvalidMinDuration     ConflictType = "invalid_min_duration"
	ConflictInvalidDay             ConflictType = "invalid_day"
	ConflictNegativeDuration       ConflictType = "negative_duration"
	ConflictOrphanedActivity       ConflictType = "orphaned_activity"
)

// Conflict represents a detected problem in the catalog or the session log
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // activity ids or entry days involved
	Warning     bool     // warnings degrade gracefully, scoring just yields zero
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// HasErrors returns true if any conflict is not a warning
func (vr *ValidationResult) HasErrors() bool {
	for _, c := range vr.Conflicts {
		if !c.Warning {
			return true
		}
	}
	return false
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No problems detected."
	}

	report := "Problems detected:\n"
	for _, conflict := range vr.Conflicts {
		marker := "!"
		if conflict.Warning {
			marker = "~"
		}
		report += fmt.Sprintf("%s %s\n", marker, conflict.Description)
	}
	return report
}

// Validator checks the activity catalog and session log for problems
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateCatalog checks activity definitions for conflicts
func (v *Validator) ValidateCatalog(catalog models.Catalog) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	idCount := make(map[string]int)
	labelCount := make(map[string][]string)
	for _, a := range catalog {
		idCount[a.ID]++
		if a.Label != "" {
			labelCount[a.Label] = append(labelCount[a.Label], a.ID)
		}
		if a.MinDurationMin < 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidMinDuration,
				Description: fmt.Sprintf("activity %q has a negative minimum duration (%d)", a.ID, a.MinDurationMin),
				Items:       []string{a.ID},
			})
		}
	}

	for id, n := range idCount {
		if n > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateActivityID,
				Description: fmt.Sprintf("activity id %q appears %d times", id, n),
				Items:       []string{id},
			})
		}
	}
	for label, ids := range labelCount {
		if len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateActivityLabel,
				Description: fmt.Sprintf("label %q is shared by activities %v", label, ids),
				Items:       ids,
				Warning:     true,
			})
		}
	}

	return result
}

// ValidateEntries checks session entries against the catalog. An orphaned
// activity id is a warning, not an error: scoring tolerates it and yields
// zero stars for the entry.
func (v *Validator) ValidateEntries(entries []models.SessionEntry, catalog models.Catalog) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	orphans := make(map[string]bool)
	for i, e := range entries {
		if _, err := time.Parse("2006-01-02", e.Day); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDay,
				Description: fmt.Sprintf("entry %d has an invalid day %q", i, e.Day),
				Items:       []string{e.Day},
			})
		}
		if e.DurationMin < 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictNegativeDuration,
				Description: fmt.Sprintf("entry %d on %s has a negative duration (%d)", i, e.Day, e.DurationMin),
				Items:       []string{e.Day},
			})
		}
		if _, ok := catalog.ByID(e.ActivityID); !ok && !orphans[e.ActivityID] {
			orphans[e.ActivityID] = true
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictOrphanedActivity,
				Description: fmt.Sprintf("entries reference activity %q which is not in the catalog; they score zero", e.ActivityID),
				Items:       []string{e.ActivityID},
				Warning:     true,
			})
		}
	}

	return result
}
