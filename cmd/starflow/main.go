package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/mcisneros0046-pixel/Star-Flow/internal/cli"
	"github.com/mcisneros0046-pixel/Star-Flow/internal/logger"
	"github.com/mcisneros0046-pixel/Star-Flow/internal/proc"
	"github.com/mcisneros0046-pixel/Star-Flow/internal/scoring"
	"github.com/mcisneros0046-pixel/Star-Flow/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path." type:"path" default:"~/.config/starflow/starflow.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize starflow storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Log      cli.LogCmd      `cmd:"" help:"Log a practice session."`
	Day      cli.DayCmd      `cmd:"" aliases:"today" help:"Show a day's sessions and stars."`
	Remove   cli.RemoveCmd   `cmd:"" help:"Remove a session entry from a day."`
	Week     cli.WeekCmd     `cmd:"" help:"Show the week's stars and commitment."`
	Month    cli.MonthCmd    `cmd:"" help:"Show monthly totals and goal progress."`
	Streak   cli.StreakCmd   `cmd:"" help:"Show the current streak."`
	Calendar cli.CalendarCmd `cmd:"" help:"Show the month calendar grid."`
	Promise  struct {
		Set  cli.PromiseSetCmd  `cmd:"" help:"Set this week's promise."`
		Show cli.PromiseShowCmd `cmd:"" help:"Show this week's promise and state."`
	} `cmd:"" help:"Manage the weekly promise."`
	Reflect cli.ReflectCmd `cmd:"" help:"Claim this week's reward after meeting the goal."`
	Unclaim cli.UnclaimCmd `cmd:"" help:"Undo this week's claim."`
	Activity struct {
		Add  cli.ActivityAddCmd  `cmd:"" help:"Add an activity."`
		Edit cli.ActivityEditCmd `cmd:"" help:"Edit an activity."`
		List cli.ActivityListCmd `cmd:"" help:"List activities."`
	} `cmd:"" help:"Manage the activity catalog."`
	Target struct {
		Show cli.TargetShowCmd `cmd:"" help:"Show the star targets."`
		Set  cli.TargetSetCmd  `cmd:"" help:"Change the star targets."`
	} `cmd:"" help:"Manage star targets."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the store."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the store from a backup."`
	} `cmd:"" help:"Manage store backups."`
	Validate cli.ValidateCmd `cmd:"" help:"Check the catalog and session log for problems."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks."`
	DebugCmd cli.DebugCmd    `cmd:"" name:"debug" help:"Inspect raw store data." hidden:""`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("starflow"),
		kong.Description("Habit tracker with per-session star scoring and weekly promises"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := os.MkdirAll(filepath.Dir(CLI.Config), 0700); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create config directory: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	// Single-writer lock: the JSON store has no concurrency control of its
	// own, so all commands serialize on a sibling lockfile.
	lock, err := proc.Acquire(CLI.Config + ".lock")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer lock.Release()

	appCtx := &cli.Context{
		Store:  store,
		Engine: scoring.New(),
		Now:    time.Now,
	}

	if err := ctx.Run(appCtx); err != nil {
		lock.Release()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
