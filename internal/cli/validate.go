package cli

import (
	"fmt"

	"github.com/mcisneros0046-pixel/Star-Flow/internal/validation"
)

type ValidateCmd struct{}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	defer ctx.Store.Close()

	catalog, err := ctx.Store.GetActivities()
	if err != nil {
		return fmt.Errorf("failed to load activities: %w", err)
	}
	entries, err := ctx.Store.GetEntries()
	if err != nil {
		return fmt.Errorf("failed to load session log: %w", err)
	}

	validator := validation.New()

	fmt.Println("Validating activity catalog...")
	catalogResult := validator.ValidateCatalog(catalog)

	fmt.Println("Validating session log...")
	entryResult := validator.ValidateEntries(entries, catalog)

	allConflicts := append(catalogResult.Conflicts, entryResult.Conflicts...)
	combinedResult := validation.ValidationResult{Conflicts: allConflicts}

	fmt.Println()
	fmt.Println(combinedResult.FormatReport())

	return nil
}
