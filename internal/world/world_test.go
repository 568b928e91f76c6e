package world

import (
	"testing"

	"github.com/vovakirdan/cubeworld/internal/core"
)

func TestNewCubeSpawnsPlayer(t *testing.T) {
	w := NewCube(7, DefaultParams())
	ids := w.EntityIDs()
	if len(ids) != 1 {
		t.Fatalf("new world has %d entities, want 1", len(ids))
	}
	e, ok := w.Entity(w.FocusEntity())
	if !ok {
		t.Fatal("focus entity missing")
	}
	if e.Kind != EntityPlayer {
		t.Errorf("focus entity kind = %d, want player", e.Kind)
	}
	if e.Position.Frame != FrameFront {
		t.Errorf("spawn frame = %s, want front", e.Position.Frame)
	}

	// The spawn pocket is carved out of the generated tiles.
	tx, ty := TileIndex(e.Position.X, e.Position.Y)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if got := w.TileAt(FrameFront, tx+dx, ty+dy); got != TileEmpty {
				t.Errorf("spawn pocket tile (%d, %d) = %d, want empty", tx+dx, ty+dy, got)
			}
		}
	}
}

func TestTileEditAtFacingTile(t *testing.T) {
	w := emptyWorld(3)
	e := w.player()
	tx, ty := TileIndex(e.Position.X, e.Position.Y)
	if e.Orientation != DirUp {
		t.Fatalf("fresh player orientation = %s, want up", e.Orientation)
	}

	input := core.NewInputFrame()
	input.Press(core.ActionPlaceTile)
	w.Tick(&input)
	if got := w.TileAt(FrameFront, tx, ty-1); got != TileSolid {
		t.Fatalf("facing tile after place = %d, want solid", got)
	}

	input.Clear()
	input.Press(core.ActionRemoveTile)
	w.Tick(&input)
	if got := w.TileAt(FrameFront, tx, ty-1); got != TileEmpty {
		t.Errorf("facing tile after remove = %d, want empty", got)
	}
}

func TestEntityReturnsCopy(t *testing.T) {
	w := emptyWorld(3)
	e, _ := w.Entity(w.FocusEntity())
	e.Position.X = 0.99

	fresh, _ := w.Entity(w.FocusEntity())
	if fresh.Position.X == 0.99 {
		t.Error("Entity() exposed mutable internal state")
	}
}

func TestLinkedFrame(t *testing.T) {
	w := emptyWorld(3)
	cases := []struct {
		from FrameID
		edge Direction
		want FrameID
	}{
		{FrameFront, DirUp, FrameUp},
		{FrameFront, DirDown, FrameDown},
		{FrameFront, DirLeft, FrameLeft},
		{FrameFront, DirRight, FrameRight},
		{FrameUp, DirUp, FrameBack},
		{FrameLeft, DirLeft, FrameBack},
		{FrameDown, DirRight, FrameRight},
	}
	for _, c := range cases {
		got, ok := w.LinkedFrame(c.from, c.edge)
		if !ok || got != c.want {
			t.Errorf("LinkedFrame(%s, %s) = %s, want %s", c.from, c.edge, got, c.want)
		}
	}
	if _, ok := w.LinkedFrame(FrameID(42), DirUp); ok {
		t.Error("LinkedFrame on unknown frame reported a link")
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	a := NewCube(11, DefaultParams())
	front, _ := a.Frame(FrameFront)
	front.setTile(2, 2, TileSolid)
	front.setTile(3, 2, TileEmpty)
	snapshot := a.TileSnapshot()

	b := NewCube(99, DefaultParams())
	if err := b.RestoreTiles(snapshot); err != nil {
		t.Fatalf("RestoreTiles() failed: %v", err)
	}

	restored := b.TileSnapshot()
	for id, tiles := range snapshot {
		for i := range tiles {
			if restored[id][i] != tiles[i] {
				t.Fatalf("frame %s tile %d = %d, want %d", id, i, restored[id][i], tiles[i])
			}
		}
	}
}

func TestRestoreTilesRejectsBadSnapshot(t *testing.T) {
	w := NewCube(11, DefaultParams())
	bad := map[FrameID][]byte{FrameFront: make([]byte, 3)}
	if err := w.RestoreTiles(bad); err == nil {
		t.Error("short frame snapshot accepted")
	}
}

func TestResetRegenerates(t *testing.T) {
	w := NewCube(5, DefaultParams())
	front, _ := w.Frame(FrameFront)
	front.setTile(0, 0, TileSolid)
	w.Tick(nil)
	if w.Ticks() != 1 {
		t.Fatalf("ticks = %d, want 1", w.Ticks())
	}

	w.Reset(5)
	if w.Ticks() != 0 {
		t.Errorf("ticks after reset = %d, want 0", w.Ticks())
	}

	fresh := NewCube(5, DefaultParams())
	got, want := w.TileSnapshot(), fresh.TileSnapshot()
	for id := range want {
		for i := range want[id] {
			if got[id][i] != want[id][i] {
				t.Fatalf("frame %s tile %d differs from fresh world after reset", id, i)
			}
		}
	}
}

func TestFrameLabel(t *testing.T) {
	if FrameLabel(FrameFront) != "front" || FrameLabel(FrameBack) != "back" {
		t.Error("standard frame labels wrong")
	}
	if FrameLabel(FrameID(9)) != FrameID(9).String() {
		t.Error("out-of-range label should fall back to the id")
	}
}
