package world

import (
	"fmt"
	"math/rand"
)

// FrameWidth is the number of tiles along each edge of a frame.
const FrameWidth = 16

// TileSize is the side length of one tile in local frame coordinates,
// which span [-1, 1) on both axes.
const TileSize = 2.0 / FrameWidth

// FrameID identifies a frame within the world's frame collection.
type FrameID int

// InvalidFrame is the reserved sentinel id. It must never be dereferenced.
const InvalidFrame FrameID = -1

// String implements fmt.Stringer for log diagnostics.
func (id FrameID) String() string {
	if id == InvalidFrame {
		return "[invalid]"
	}
	return fmt.Sprintf("[%d]", int(id))
}

// Tile is the state of one grid cell.
type Tile byte

const (
	TileEmpty Tile = iota
	TileSolid
	// TileInvalid is returned for out-of-grid queries. It counts as solid
	// for collision so entities can never leave the surface through an
	// unlinked edge.
	TileInvalid
)

// IsSolid reports whether the tile blocks movement.
func (t Tile) IsSolid() bool {
	return t == TileSolid || t == TileInvalid
}

// FrameLink is a directed border attachment: crossing the border lands you
// in Frame, arriving as though you had entered through its Entry edge.
type FrameLink struct {
	Frame FrameID
	Entry Direction
}

// FrameLinks holds one optional link per direction. The Neutral slot always
// carries a self-link so lookups by Neutral stay total.
type FrameLinks struct {
	slots [5]*FrameLink
}

// At returns the link for the given direction, if attached.
func (l *FrameLinks) At(dir Direction) (FrameLink, bool) {
	link := l.slots[dir]
	if link == nil {
		return FrameLink{}, false
	}
	return *link, true
}

// attach fills a border slot. The caller (World.connect) is responsible for
// rejecting double attachment.
func (l *FrameLinks) attach(dir Direction, link FrameLink) {
	l.slots[dir] = &FrameLink{Frame: link.Frame, Entry: link.Entry}
}

// occupied reports whether the slot for dir is already attached.
func (l *FrameLinks) occupied(dir Direction) bool {
	return l.slots[dir] != nil
}

// String renders the attached edges, for topology diagnostics.
func (l *FrameLinks) String() string {
	out := "links("
	first := true
	for _, dir := range Edges {
		link, ok := l.At(dir)
		if !ok {
			continue
		}
		if !first {
			out += ", "
		}
		out += fmt.Sprintf("%s:%s@%s", dir, link.Frame, link.Entry)
		first = false
	}
	return out + ")"
}

// Frame is one square face of the cube: a fixed-size tile grid plus its
// border links.
type Frame struct {
	id    FrameID
	tiles [FrameWidth * FrameWidth]Tile
	links FrameLinks
}

// NewFrame creates an empty frame with only the Neutral self-link attached.
func NewFrame(id FrameID) *Frame {
	f := &Frame{id: id}
	f.links.attach(DirNeutral, FrameLink{Frame: id, Entry: DirNeutral})
	return f
}

// NewPopulatedFrame creates a frame whose tiles are independently solid
// with the given probability.
func NewPopulatedFrame(id FrameID, rng *rand.Rand, solidDensity float64) *Frame {
	f := NewFrame(id)
	for y := 0; y < FrameWidth; y++ {
		for x := 0; x < FrameWidth; x++ {
			if rng.Float64() < solidDensity {
				f.setTile(x, y, TileSolid)
			}
		}
	}
	return f
}

// ID returns the frame's identifier.
func (f *Frame) ID() FrameID {
	return f.id
}

// Links returns the frame's border links.
func (f *Frame) Links() *FrameLinks {
	return &f.links
}

// Tile reports the tile at integer grid coordinates. Queries outside
// [0, FrameWidth) on either axis return TileInvalid.
func (f *Frame) Tile(x, y int) Tile {
	if x < 0 || y < 0 || x >= FrameWidth || y >= FrameWidth {
		return TileInvalid
	}
	return f.tiles[y*FrameWidth+x]
}

// setTile writes a tile state. Out-of-range writes are ignored; callers
// resolve cross-frame indices before writing.
func (f *Frame) setTile(x, y int, t Tile) {
	if x < 0 || y < 0 || x >= FrameWidth || y >= FrameWidth {
		return
	}
	f.tiles[y*FrameWidth+x] = t
}

// Tiles returns a copy of the tile grid in row-major order, suitable for
// persistence.
func (f *Frame) Tiles() []byte {
	out := make([]byte, len(f.tiles))
	for i, t := range f.tiles {
		out[i] = byte(t)
	}
	return out
}

// SetTiles restores the tile grid from a row-major snapshot produced by
// Tiles.
func (f *Frame) SetTiles(data []byte) error {
	if len(data) != len(f.tiles) {
		return fmt.Errorf("world: tile snapshot for frame %s has %d bytes, want %d", f.id, len(data), len(f.tiles))
	}
	for i, b := range data {
		if Tile(b) != TileEmpty && Tile(b) != TileSolid {
			return fmt.Errorf("world: tile snapshot for frame %s has invalid tile %d at index %d", f.id, b, i)
		}
		f.tiles[i] = Tile(b)
	}
	return nil
}

// SolidCount returns the number of solid tiles, used by the worlds browser.
func (f *Frame) SolidCount() int {
	n := 0
	for _, t := range f.tiles {
		if t == TileSolid {
			n++
		}
	}
	return n
}
