package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cubeworld/internal/config"
	"github.com/vovakirdan/cubeworld/internal/core"
	"github.com/vovakirdan/cubeworld/internal/platform/tui"
	"github.com/vovakirdan/cubeworld/internal/storage"
	"github.com/vovakirdan/cubeworld/internal/world"
)

var (
	flagConfig string
	flagWorld  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a cube world session in the current terminal.

Controls:
  A/D, ←/→   - Move
  Space/W/↑  - Jump
  F          - Place a tile ahead
  X          - Remove the tile ahead
  P/Esc      - Pause
  R          - Regenerate the world
  Q/Ctrl+C   - Quit

Named worlds persist their tile edits:
  cubeworld play --world home   # loads "home" if saved, saves it on exit

Examples:
  cubeworld play
  cubeworld play --seed 42
  cubeworld play --world home
  cubeworld play --config ./my-world.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom world config YAML")
	playCmd.Flags().StringVar(&flagWorld, "world", "", "Named world to load and save")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	worldCfg, err := config.LoadWorld(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		if flagWorld != "" {
			fmt.Fprintf(os.Stderr, "Error opening worlds database: %v\n", err)
			os.Exit(1)
		}
		// Scratch sessions run fine without persistence.
		fmt.Fprintf(os.Stderr, "Warning: could not open worlds database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	w := world.NewCube(cfg.Seed, worldCfg.Params())

	// A named world resumes from its saved tiles, keeping its own seed so a
	// re-generated frame layout never drifts under restored edits.
	if flagWorld != "" {
		rec, loadErr := store.LoadWorld(flagWorld)
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "Error loading world %q: %v\n", flagWorld, loadErr)
			os.Exit(1)
		}
		if rec != nil {
			w = world.NewCube(rec.Seed, worldCfg.Params())
			if restoreErr := w.RestoreTiles(rec.Tiles); restoreErr != nil {
				fmt.Fprintf(os.Stderr, "Error restoring world %q: %v\n", flagWorld, restoreErr)
				os.Exit(1)
			}
		}
	}

	if err := tui.Run(w, store, cfg, worldCfg.Camera, flagWorld); err != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", err)
		os.Exit(1)
	}

	if flagWorld != "" {
		if _, saveErr := store.SaveWorld(flagWorld, w.Seed(), w.TileSnapshot()); saveErr != nil {
			fmt.Fprintf(os.Stderr, "Error saving world %q: %v\n", flagWorld, saveErr)
			os.Exit(1)
		}
		fmt.Printf("Saved world %q (seed %d)\n", flagWorld, w.Seed())
	}
}
