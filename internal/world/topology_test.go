package world

import "testing"

func TestCubeFullyLinked(t *testing.T) {
	w := emptyWorld(1)
	ids := w.FrameIDs()
	if len(ids) != 6 {
		t.Fatalf("cube has %d frames, want 6", len(ids))
	}
	for _, id := range ids {
		f, ok := w.Frame(id)
		if !ok {
			t.Fatalf("frame %s missing", id)
		}
		for _, edge := range Edges {
			if _, ok := f.Links().At(edge); !ok {
				t.Errorf("frame %s edge %s unlinked", id, edge)
			}
		}
		link, ok := f.Links().At(DirNeutral)
		if !ok || link.Frame != id || link.Entry != DirNeutral {
			t.Errorf("frame %s neutral link = %v, want self", id, link)
		}
	}
}

func TestCubeLinksAreMutual(t *testing.T) {
	w := emptyWorld(1)
	for _, id := range w.FrameIDs() {
		f, _ := w.Frame(id)
		for _, edge := range Edges {
			link, _ := f.Links().At(edge)
			neighbor, _ := w.Frame(link.Frame)
			back, ok := neighbor.Links().At(link.Entry)
			if !ok {
				t.Fatalf("%s.%s -> %s.%s has no return link", id, edge, link.Frame, link.Entry)
			}
			if back.Frame != id || back.Entry != edge {
				t.Errorf("%s.%s -> %s.%s returns to %s.%s", id, edge, link.Frame, link.Entry, back.Frame, back.Entry)
			}
		}
	}
}

// pushOut moves an in-bounds position across an edge by a full frame width.
func pushOut(pos WorldPosition, edge Direction) RawWorldPosition {
	raw := RawWorldPosition{Root: pos.Frame, X: pos.X, Y: pos.Y}
	switch edge {
	case DirRight:
		raw.X += 2
	case DirLeft:
		raw.X -= 2
	case DirDown:
		raw.Y += 2
	case DirUp:
		raw.Y -= 2
	}
	return raw
}

// Crossing any seam and then crossing straight back must return the original
// position: every seam's coordinate map composes with its inverse to the
// identity.
func TestSeamRoundTrip(t *testing.T) {
	w := emptyWorld(1)
	for _, id := range w.FrameIDs() {
		f, _ := w.Frame(id)
		for _, edge := range Edges {
			orig := WorldPosition{Frame: id, X: 0.25, Y: -0.375}
			across := w.Normalize(pushOut(orig, edge))

			link, _ := f.Links().At(edge)
			if across.Frame != link.Frame {
				t.Fatalf("%s.%s landed on %s, want %s", id, edge, across.Frame, link.Frame)
			}

			home := w.Normalize(pushOut(across, link.Entry))
			if home.Frame != orig.Frame || !almostEqual(home.X, orig.X) || !almostEqual(home.Y, orig.Y) {
				t.Errorf("%s.%s round trip: %s -> %s -> %s", id, edge, orig, across, home)
			}
		}
	}
}

// The equator seams glue with identity rotation, so walking right through
// front, right, back and left frames comes home with unchanged coordinates.
func TestEquatorTraversalIsIdentity(t *testing.T) {
	w := emptyWorld(1)
	pos := WorldPosition{Frame: FrameFront, X: 0.25, Y: 0.125}
	visited := []FrameID{}
	for i := 0; i < 4; i++ {
		pos = w.Normalize(pushOut(pos, DirRight))
		visited = append(visited, pos.Frame)
	}
	want := []FrameID{FrameRight, FrameBack, FrameLeft, FrameFront}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("equator hop %d landed on %s, want %s", i, visited[i], want[i])
		}
	}
	if !almostEqual(pos.X, 0.25) || !almostEqual(pos.Y, 0.125) {
		t.Errorf("equator round trip moved coordinates: %s", pos)
	}
}

func TestConnectRejectsDoubleAttach(t *testing.T) {
	w := emptyWorld(1)
	defer func() {
		if recover() == nil {
			t.Error("double attach did not panic")
		}
	}()
	w.connect(FrameFront, DirUp, FrameBack, DirNeutral)
}
