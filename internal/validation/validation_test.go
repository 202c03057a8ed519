package validation

import (
	"testing"

	"github.com/mcisneros0046-pixel/Star-Flow/internal/models"
)

func TestValidateCatalog_DuplicateIDs(t *testing.T) {
	validator := New()

	catalog := models.Catalog{
		{ID: "walk", Label: "Walk", MinDurationMin: 20},
		{ID: "read", Label: "Read", MinDurationMin: 15},
		{ID: "walk", Label: "Evening Walk", MinDurationMin: 10}, // Duplicate
	}

	result := validator.ValidateCatalog(catalog)

	if !result.HasConflicts() {
		t.Error("Expected to detect duplicate activity ids")
	}

	found := false
	for _, conflict := range result.Conflicts {
		if conflict.Type == ConflictDuplicateActivityID {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected ConflictDuplicateActivityID conflict type")
	}
}

func TestValidateCatalog_DuplicateLabelIsWarning(t *testing.T) {
	validator := New()

	catalog := models.Catalog{
		{ID: "walk-am", Label: "Walk", MinDurationMin: 20},
		{ID: "walk-pm", Label: "Walk", MinDurationMin: 20},
	}

	result := validator.ValidateCatalog(catalog)

	if !result.HasConflicts() {
		t.Fatal("Expected to detect the shared label")
	}
	if result.HasErrors() {
		t.Error("Expected a shared label to be a warning, not an error")
	}
}

func TestValidateCatalog_NegativeMinDuration(t *testing.T) {
	validator := New()

	catalog := models.Catalog{
		{ID: "walk", Label: "Walk", MinDurationMin: -5},
	}

	result := validator.ValidateCatalog(catalog)

	if !result.HasErrors() {
		t.Error("Expected a negative minimum duration to be an error")
	}
}

func TestValidateEntries_MalformedDayAndNegativeDuration(t *testing.T) {
	validator := New()

	catalog := models.Catalog{{ID: "walk", Label: "Walk", MinDurationMin: 20}}
	entries := []models.SessionEntry{
		{Day: "June 10th", ActivityID: "walk", DurationMin: 25},
		{Day: "2025-06-10", ActivityID: "walk", DurationMin: -1},
	}

	result := validator.ValidateEntries(entries, catalog)

	types := make(map[ConflictType]int)
	for _, c := range result.Conflicts {
		types[c.Type]++
	}
	if types[ConflictInvalidDay] != 1 {
		t.Errorf("Expected 1 invalid day conflict, got %d", types[ConflictInvalidDay])
	}
	if types[ConflictNegativeDuration] != 1 {
		t.Errorf("Expected 1 negative duration conflict, got %d", types[ConflictNegativeDuration])
	}
}

func TestValidateEntries_OrphanedActivityIsWarning(t *testing.T) {
	validator := New()

	catalog := models.Catalog{{ID: "walk", Label: "Walk", MinDurationMin: 20}}
	entries := []models.SessionEntry{
		{Day: "2025-06-10", ActivityID: "deleted", DurationMin: 25},
		{Day: "2025-06-11", ActivityID: "deleted", DurationMin: 25},
	}

	result := validator.ValidateEntries(entries, catalog)

	if !result.HasConflicts() {
		t.Fatal("Expected the orphaned activity to be flagged")
	}
	if result.HasErrors() {
		t.Error("Expected orphaned activities to be warnings only")
	}
	// Flagged once per id, not once per entry.
	if len(result.Conflicts) != 1 {
		t.Errorf("Expected 1 conflict, got %d", len(result.Conflicts))
	}
}

func TestValidate_CleanData(t *testing.T) {
	validator := New()

	catalog := models.Catalog{{ID: "walk", Label: "Walk", MinDurationMin: 20}}
	entries := []models.SessionEntry{
		{Day: "2025-06-10", ActivityID: "walk", DurationMin: 25},
	}

	if result := validator.ValidateCatalog(catalog); result.HasConflicts() {
		t.Errorf("Expected a clean catalog, got %+v", result.Conflicts)
	}
	if result := validator.ValidateEntries(entries, catalog); result.HasConflicts() {
		t.Errorf("Expected a clean log, got %+v", result.Conflicts)
	}
}
