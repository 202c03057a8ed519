package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mcisneros0046-pixel/Star-Flow/internal/models"
)

type DebugCmd struct {
	StorePath   *DebugStorePathCmd   `cmd:"" help:"Show store path."`
	DumpDay     *DebugDumpDayCmd     `cmd:"" help:"Dump a day's entries with score breakdowns as JSON."`
	DumpRewards *DebugDumpRewardsCmd `cmd:"" help:"Dump claimed rewards as JSON."`
}

type DebugStorePathCmd struct{}

func (cmd *DebugStorePathCmd) Run(ctx *Context) error {
	// Output in machine-readable format
	output := map[string]string{
		"path": ctx.Store.GetConfigPath(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpDayCmd struct {
	Date string `arg:"" help:"Day to dump (YYYY-MM-DD or 'today')."`
}

type dumpedEntry struct {
	Entry     models.SessionEntry   `json:"entry"`
	Breakdown models.ScoreBreakdown `json:"breakdown"`
}

func (cmd *DebugDumpDayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	day, err := ctx.resolveDay(cmd.Date)
	if err != nil {
		return err
	}
	if _, err := time.Parse("2006-01-02", day); err != nil {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD or 'today')", cmd.Date)
	}

	catalog, err := ctx.Store.GetActivities()
	if err != nil {
		return err
	}
	entries, err := ctx.Store.GetEntries()
	if err != nil {
		return err
	}

	dayEntries, indices := models.EntriesForDay(entries, day)
	dump := make([]dumpedEntry, len(dayEntries))
	for i, e := range dayEntries {
		dump[i] = dumpedEntry{
			Entry:     e,
			Breakdown: ctx.Engine.ComputeAt(indices[i], catalog, entries),
		}
	}

	jsonBytes, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpRewardsCmd struct{}

func (cmd *DebugDumpRewardsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	rewards, err := ctx.Store.GetRewards()
	if err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(rewards, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal rewards: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}
