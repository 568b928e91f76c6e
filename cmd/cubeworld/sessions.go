package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cubeworld/internal/storage"
)

var flagSessionLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show recent play sessions",
	Long: `Display the most recent play sessions with their world and length.

Examples:
  cubeworld sessions
  cubeworld sessions --limit 50`,
	Run: runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&flagSessionLimit, "limit", 20, "Maximum number of sessions to show")
}

func runSessions(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening worlds database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	sessions, err := store.RecentSessions(flagSessionLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent Sessions")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'cubeworld play' to record the first one!")
		return
	}

	fmt.Printf("  %-20s  %-10s  %s\n", "World", "Ticks", "Date")
	fmt.Printf("  %-20s  %-10s  %s\n", "-----", "-----", "----")

	for _, s := range sessions {
		dateStr := s.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-20s  %-10d  %s\n", s.WorldName, s.Ticks, dateStr)
	}
}
