package storage

import (
	"encoding/json"
	"fmt"

	"github.com/mcisneros0046-pixel/Star-Flow/internal/models"
)

// SchemaVersion is the current JSON document version. Older documents are
// upgraded on first read by the ordered upcasters below; version detection
// is explicit, never field-presence sniffing.
const SchemaVersion = 2

// Document is the full persisted state for the JSON store.
type Document struct {
	Version    int                   `json:"version"`
	Profile    models.Profile        `json:"profile"`
	Activities models.Catalog        `json:"activities"`
	Targets    models.Targets        `json:"targets"`
	Rewards    []models.Reward       `json:"rewards"`
	Entries    []models.SessionEntry `json:"entries"`
	Promises   map[string]string     `json:"promises"`
	Claimed    []string              `json:"claimed"`
}

// documentV1 is the legacy shape: flat goal numbers instead of a targets
// struct, entries carrying {date, activity, minutes}, and no stretch goal.
type documentV1 struct {
	Profile    models.Profile `json:"profile"`
	Activities []struct {
		ID         string `json:"id"`
		Label      string `json:"label"`
		MinMinutes int    `json:"min_minutes"`
		Color      string `json:"color"`
	} `json:"activities"`
	WeeklyGoal  float64 `json:"weekly_goal"`
	MonthlyGoal float64 `json:"monthly_goal"`
	Entries     []struct {
		Date     string `json:"date"`
		Activity string `json:"activity"`
		Minutes  int    `json:"minutes"`
		Mindful  bool   `json:"mindful"`
	} `json:"entries"`
	Promises map[string]string `json:"promises"`
	Claimed  []string          `json:"claimed"`
}

// upcasters convert a document from version v to v+1, applied in order until
// the document reaches SchemaVersion.
var upcasters = map[int]func([]byte) ([]byte, error){
	1: upcastV1toV2,
}

// UpcastDocument brings a raw document up to SchemaVersion. Documents with
// no version field are treated as version 1.
func UpcastDocument(data []byte) ([]byte, error) {
	var probe struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse storage: %w", err)
	}

	version := probe.Version
	if version == 0 {
		version = 1
	}
	if version > SchemaVersion {
		return nil, fmt.Errorf("document version %d is newer than supported version %d - please upgrade the application", version, SchemaVersion)
	}

	for v := version; v < SchemaVersion; v++ {
		up, ok := upcasters[v]
		if !ok {
			return nil, fmt.Errorf("no upcaster from document version %d", v)
		}
		var err error
		data, err = up(data)
		if err != nil {
			return nil, fmt.Errorf("failed to upgrade document from version %d: %w", v, err)
		}
	}
	return data, nil
}

func upcastV1toV2(data []byte) ([]byte, error) {
	var old documentV1
	if err := json.Unmarshal(data, &old); err != nil {
		return nil, err
	}

	doc := Document{
		Version:  2,
		Profile:  old.Profile,
		Promises: old.Promises,
		Claimed:  old.Claimed,
	}

	for _, a := range old.Activities {
		doc.Activities = append(doc.Activities, models.ActivityDefinition{
			ID:             a.ID,
			Label:          a.Label,
			MinDurationMin: a.MinMinutes,
			Color:          a.Color,
		})
	}

	doc.Targets = models.Targets{
		WeeklyStarTarget: old.WeeklyGoal,
		MonthlyTarget:    old.MonthlyGoal,
		// V1 predates the stretch goal; seed it a quarter above the target.
		MonthlyStretch: old.MonthlyGoal * 1.25,
	}

	for _, e := range old.Entries {
		doc.Entries = append(doc.Entries, models.SessionEntry{
			Day:         e.Date,
			ActivityID:  e.Activity,
			DurationMin: e.Minutes,
			Mindful:     e.Mindful,
		})
	}

	return json.Marshal(doc)
}
