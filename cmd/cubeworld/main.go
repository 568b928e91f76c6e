// cubeworld is a terminal platformer on the surface of a cube: six tile
// frames glued edge to edge, rendered as a folded cube you walk around
// seamlessly.
//
// Usage:
//
//	cubeworld play               - Play in the local terminal
//	cubeworld worlds             - Browse saved worlds
//	cubeworld sessions           - Show recent play sessions
//	cubeworld serve              - Start SSH server for remote play
//	cubeworld topology           - Print and verify the cube edge table
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set generation seed for reproducible worlds
//	--db <path>     - Set database path (default: ~/.cubeworld/worlds.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cubeworld",
	Short: "Cubeworld - a tile platformer on a cube, in your terminal",
	Long: `Cubeworld simulates a tiny world folded into a cube: six square tile
frames glued along their edges into a closed surface. You walk, jump and
edit tiles, and crossing a frame border carries you seamlessly onto the
neighboring face.

Available commands:
  play      - Play in the local terminal
  worlds    - Browse and manage saved worlds
  sessions  - Show recent play sessions
  serve     - Start SSH server for remote play
  topology  - Print and verify the cube edge table

Examples:
  cubeworld play
  cubeworld play --seed 42 --world home
  cubeworld worlds
  cubeworld serve --ssh :2222
  cubeworld topology`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Generation seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cubeworld/worlds.db", "Path to worlds database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(worldsCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(topologyCmd)
}
