package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cubeworld/internal/platform/tui"
	"github.com/vovakirdan/cubeworld/internal/storage"
)

var worldsCmd = &cobra.Command{
	Use:   "worlds",
	Short: "Browse and manage saved worlds",
	Long: `Open an interactive browser over the saved worlds database.

Shows each world's seed, frame count, solid tile count and last update.
Press 'd' on a selected row to delete that world.

Examples:
  cubeworld worlds
  cubeworld worlds --db ./worlds.db`,
	Run: runWorlds,
}

func runWorlds(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening worlds database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := tui.RunWorlds(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error running browser: %v\n", err)
		os.Exit(1)
	}
}
