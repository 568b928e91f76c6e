package world

import (
	"math/rand"
	"testing"
)

func TestTileSolidity(t *testing.T) {
	if TileEmpty.IsSolid() {
		t.Error("empty tile reported solid")
	}
	if !TileSolid.IsSolid() {
		t.Error("solid tile reported passable")
	}
	if !TileInvalid.IsSolid() {
		t.Error("invalid tile must act solid for collision")
	}
}

func TestFrameOutOfRangeTileIsInvalid(t *testing.T) {
	f := NewFrame(FrameFront)
	cases := [][2]int{{-1, 0}, {0, -1}, {FrameWidth, 0}, {0, FrameWidth}, {-1, -1}}
	for _, c := range cases {
		if got := f.Tile(c[0], c[1]); got != TileInvalid {
			t.Errorf("Tile(%d, %d) = %d, want invalid", c[0], c[1], got)
		}
	}
}

func TestFrameNeutralSelfLink(t *testing.T) {
	f := NewFrame(FrameID(3))
	link, ok := f.Links().At(DirNeutral)
	if !ok {
		t.Fatal("neutral slot not attached")
	}
	if link.Frame != FrameID(3) || link.Entry != DirNeutral {
		t.Errorf("neutral link = %v, want self", link)
	}
	for _, dir := range Edges {
		if _, ok := f.Links().At(dir); ok {
			t.Errorf("fresh frame has %s attached", dir)
		}
	}
}

func TestPopulatedFrameDeterminism(t *testing.T) {
	a := NewPopulatedFrame(FrameFront, rand.New(rand.NewSource(7)), 0.17)
	b := NewPopulatedFrame(FrameFront, rand.New(rand.NewSource(7)), 0.17)
	at, bt := a.Tiles(), b.Tiles()
	for i := range at {
		if at[i] != bt[i] {
			t.Fatalf("same seed produced different tile %d", i)
		}
	}
	if a.SolidCount() == 0 {
		t.Error("populated frame has no solid tiles")
	}

	empty := NewPopulatedFrame(FrameFront, rand.New(rand.NewSource(7)), 0)
	if empty.SolidCount() != 0 {
		t.Errorf("zero density frame has %d solid tiles", empty.SolidCount())
	}
}

func TestSetTilesValidates(t *testing.T) {
	f := NewFrame(FrameFront)
	if err := f.SetTiles(make([]byte, 3)); err == nil {
		t.Error("short snapshot accepted")
	}
	bad := make([]byte, FrameWidth*FrameWidth)
	bad[5] = byte(TileInvalid)
	if err := f.SetTiles(bad); err == nil {
		t.Error("snapshot with invalid tile accepted")
	}

	good := make([]byte, FrameWidth*FrameWidth)
	good[17] = byte(TileSolid)
	if err := f.SetTiles(good); err != nil {
		t.Fatalf("SetTiles() failed: %v", err)
	}
	if f.Tile(1, 1) != TileSolid {
		t.Error("restored tile not solid")
	}
}
