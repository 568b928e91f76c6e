package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cubeworld/internal/world"
)

var topologyCmd = &cobra.Command{
	Use:   "topology",
	Short: "Print and verify the cube edge table",
	Long: `Print the full edge attachment table of the standard cube and verify
it: every edge must be attached, every attachment must be reciprocal, and
crossing any seam and coming straight back must return to the starting
position exactly.

Exits non-zero if any check fails.`,
	Run: runTopology,
}

func runTopology(_ *cobra.Command, _ []string) {
	w := world.NewCube(0, world.DefaultParams())

	violations := 0
	fmt.Printf("  %-8s %-6s    %-8s %s\n", "frame", "edge", "neighbor", "entry")
	for _, id := range w.FrameIDs() {
		f, _ := w.Frame(id)
		for _, edge := range world.Edges {
			link, ok := f.Links().At(edge)
			if !ok {
				fmt.Printf("  %-8s %-6s    UNATTACHED\n", world.FrameLabel(id), edge)
				violations++
				continue
			}
			fmt.Printf("  %-8s %-6s -> %-8s %s\n",
				world.FrameLabel(id), edge, world.FrameLabel(link.Frame), link.Entry)

			back, ok := mustFrame(w, link.Frame).Links().At(link.Entry)
			if !ok || back.Frame != id || back.Entry != edge {
				fmt.Printf("    NOT RECIPROCAL: %s@%s links back to %s@%s\n",
					world.FrameLabel(link.Frame), link.Entry,
					world.FrameLabel(back.Frame), back.Entry)
				violations++
				continue
			}

			if err := seamRoundTrip(w, id, edge, link.Entry); err != nil {
				fmt.Printf("    SEAM BROKEN: %v\n", err)
				violations++
			}
		}
	}

	if violations > 0 {
		fmt.Fprintf(os.Stderr, "\n%d topology violations\n", violations)
		os.Exit(1)
	}
	fmt.Println("\ntopology OK: 24 edges attached, reciprocal, seams round-trip")
}

func mustFrame(w *world.World, id world.FrameID) *world.Frame {
	f, ok := w.Frame(id)
	if !ok {
		panic("topology: missing frame")
	}
	return f
}

// seamRoundTrip crosses the seam a quarter tile deep and comes straight
// back, expecting the exact starting position. The sample values are exact
// binary fractions so rotation and wrap arithmetic introduce no drift.
func seamRoundTrip(w *world.World, id world.FrameID, edge, entry world.Direction) error {
	const depth = 0.25

	start := world.WorldPosition{Frame: id, X: 0.25, Y: 0.25}
	switch edge {
	case world.DirUp:
		start.Y = -1 + depth
	case world.DirDown:
		start.Y = 1 - depth
	case world.DirLeft:
		start.X = -1 + depth
	case world.DirRight:
		start.X = 1 - depth
	}

	crossed := w.Normalize(pushOut(start, edge, 2*depth))
	back := w.Normalize(pushOut(crossed, entry, 2*depth))

	if back != start {
		return fmt.Errorf("%v -> %v -> %v", start, crossed, back)
	}
	return nil
}

// pushOut displaces a position outward through the given edge.
func pushOut(pos world.WorldPosition, edge world.Direction, dist float32) world.RawWorldPosition {
	raw := world.RawWorldPosition{Root: pos.Frame, X: pos.X, Y: pos.Y}
	switch edge {
	case world.DirUp:
		raw.Y -= dist
	case world.DirDown:
		raw.Y += dist
	case world.DirLeft:
		raw.X -= dist
	case world.DirRight:
		raw.X += dist
	}
	return raw
}
