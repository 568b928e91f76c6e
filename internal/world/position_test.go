package world

import (
	"math"
	"testing"
)

func emptyWorld(seed int64) *World {
	params := DefaultParams()
	params.SolidDensity = 0
	params.Gravity = 0
	return NewCube(seed, params)
}

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestNormalizeInBoundsUnchanged(t *testing.T) {
	w := emptyWorld(1)
	pos := w.Normalize(RawWorldPosition{Root: FrameFront, X: 0.25, Y: -0.75})
	if pos.Frame != FrameFront || pos.X != 0.25 || pos.Y != -0.75 {
		t.Errorf("in-bounds position changed: %s", pos)
	}
}

func TestNormalizeCrossesToRightFrame(t *testing.T) {
	w := emptyWorld(1)
	pos := w.Normalize(RawWorldPosition{Root: FrameFront, X: 1.3, Y: 0.3})
	if pos.Frame != FrameRight {
		t.Fatalf("crossed to %s, want %s", pos.Frame, FrameRight)
	}
	if !almostEqual(pos.X, -0.7) || !almostEqual(pos.Y, 0.3) {
		t.Errorf("position = %s, want (-0.7, 0.3)", pos)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	w := emptyWorld(1)
	raws := []RawWorldPosition{
		{Root: FrameFront, X: 1.5, Y: 0.1},
		{Root: FrameUp, X: 0.2, Y: -1.9},
		{Root: FrameBack, X: -1.1, Y: 0.9},
	}
	for _, raw := range raws {
		first := w.Normalize(raw)
		second := w.NormalizePosition(first)
		if first != second {
			t.Errorf("Normalize(%v) not idempotent: %s then %s", raw, first, second)
		}
	}
}

func TestNormalizeBothAxesOutPanics(t *testing.T) {
	w := emptyWorld(1)
	defer func() {
		if recover() == nil {
			t.Error("both-axes-out position did not panic")
		}
	}()
	w.Normalize(RawWorldPosition{Root: FrameFront, X: 1.5, Y: -1.5})
}

func TestNormalizeNaNPanics(t *testing.T) {
	w := emptyWorld(1)
	defer func() {
		if recover() == nil {
			t.Error("NaN coordinate did not panic")
		}
	}()
	w.Normalize(RawWorldPosition{Root: FrameFront, X: float32(math.NaN()), Y: 0})
}

func TestNormalizeUnknownFramePanics(t *testing.T) {
	w := emptyWorld(1)
	defer func() {
		if recover() == nil {
			t.Error("unknown frame did not panic")
		}
	}()
	w.Normalize(RawWorldPosition{Root: FrameID(99), X: 0, Y: 0})
}

func TestResolveTileAcrossBorders(t *testing.T) {
	w := emptyWorld(1)

	right, _ := w.Frame(FrameRight)
	right.setTile(0, 5, TileSolid)
	if got := w.TileAt(FrameFront, FrameWidth, 5); got != TileSolid {
		t.Errorf("tile past the right border = %d, want solid", got)
	}

	left, _ := w.Frame(FrameLeft)
	left.setTile(FrameWidth-1, 5, TileSolid)
	if got := w.TileAt(FrameFront, -1, 5); got != TileSolid {
		t.Errorf("tile past the left border = %d, want solid", got)
	}

	up, _ := w.Frame(FrameUp)
	up.setTile(5, FrameWidth-1, TileSolid)
	if got := w.TileAt(FrameFront, 5, -1); got != TileSolid {
		t.Errorf("tile past the top border = %d, want solid", got)
	}
}

func TestResolveTileCornerDoubleHop(t *testing.T) {
	w := emptyWorld(1)

	// Past the bottom-right corner of front: one hop right onto the right
	// frame, one hop down onto the down frame with a quarter turn.
	down, _ := w.Frame(FrameDown)
	down.setTile(FrameWidth-1, 0, TileSolid)
	if got := w.TileAt(FrameFront, FrameWidth, FrameWidth); got != TileSolid {
		t.Errorf("corner-adjacent tile = %d, want solid", got)
	}
}

func TestTileIndex(t *testing.T) {
	cases := []struct {
		x, y   float32
		tx, ty int
	}{
		{-1, -1, 0, 0},
		{0, 0, FrameWidth / 2, FrameWidth / 2},
		{0.3, 0.1, 10, 8},
		{1 - TileSize/2, 1 - TileSize/2, FrameWidth - 1, FrameWidth - 1},
	}
	for _, c := range cases {
		tx, ty := TileIndex(c.x, c.y)
		if tx != c.tx || ty != c.ty {
			t.Errorf("TileIndex(%v, %v) = (%d, %d), want (%d, %d)", c.x, c.y, tx, ty, c.tx, c.ty)
		}
	}
}
