package models

// ActivityDefinition describes one trackable activity in the user's catalog
type ActivityDefinition struct {
	ID             string `json:"id"`
	Label          string `json:"label"`
	MinDurationMin int    `json:"min_duration_min"`
	Color          string `json:"color,omitempty"` // display-only
}

// Catalog is the user's set of activity definitions. It has no behavior
// beyond lookup; scoring tolerates ids that no longer resolve.
type Catalog []ActivityDefinition

// ByID returns the definition for id, or false when the id does not resolve
// (e.g. the catalog was edited after the entry was logged).
func (c Catalog) ByID(id string) (ActivityDefinition, bool) {
	for _, a := range c {
		if a.ID == id {
			return a, true
		}
	}
	return ActivityDefinition{}, false
}
