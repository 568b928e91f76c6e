package world

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
)

// WorldPosition is a canonical location on the cube surface: a frame plus
// local coordinates with x, y in [-1, 1).
type WorldPosition struct {
	Frame FrameID
	X, Y  float32
}

// String implements fmt.Stringer for diagnostics.
func (p WorldPosition) String() string {
	return fmt.Sprintf("%s(%.4f, %.4f)", p.Frame, p.X, p.Y)
}

// RawWorldPosition is an unnormalized candidate position whose coordinates
// may lie outside [-1, 1). It exists only as the working value of the
// normalization algorithm and of sub-stepped movement.
type RawWorldPosition struct {
	Root FrameID
	X, Y float32
}

// Rotated applies a clockwise quarter-turn rotation to the coordinate pair.
func (p RawWorldPosition) Rotated(angle Angle) RawWorldPosition {
	var x, y float32
	switch angle {
	case Clockwise90:
		x, y = -p.Y, p.X
	case Clockwise180:
		x, y = -p.X, -p.Y
	case Clockwise270:
		x, y = p.Y, -p.X
	default:
		x, y = p.X, p.Y
	}
	return RawWorldPosition{Root: p.Root, X: x, Y: y}
}

// maxNormalizeHops bounds the border-crossing loop. A single movement step
// crosses at most two borders on a healthy topology; anything deeper means
// the link graph is corrupted.
const maxNormalizeHops = 4

// Normalize resolves a raw position to its canonical frame and in-bounds
// local coordinates, following border links and rotating coordinates as
// each crossing demands. Topology violations are unrecoverable: a missing
// link, a NaN coordinate, or a position out of bounds on both axes at once
// terminates the process after logging a diagnostic.
func (w *World) Normalize(raw RawWorldPosition) WorldPosition {
	pos := raw
	for hop := 0; hop < maxNormalizeHops; hop++ {
		if math.IsNaN(float64(pos.X)) || math.IsNaN(float64(pos.Y)) {
			log.Error("NaN coordinate during normalization", "frame", pos.Root, "origin", raw)
			panic("world: NaN raw world position")
		}

		frame, ok := w.frames[pos.Root]
		if !ok {
			log.Error("normalization reached unknown frame", "frame", pos.Root, "origin", raw)
			panic("world: frame neighbor access error")
		}

		inX := pos.X >= -1 && pos.X < 1
		inY := pos.Y >= -1 && pos.Y < 1
		if inX && inY {
			return WorldPosition{Frame: pos.Root, X: pos.X, Y: pos.Y}
		}
		if !inX && !inY {
			log.Error("position out of bounds on both axes",
				"frame", pos.Root, "x", pos.X, "y", pos.Y, "origin", raw)
			panic("world: raw position exceeds single-step displacement bound")
		}

		var exit Direction
		switch {
		case pos.X >= 1:
			exit = DirRight
			pos.X -= 2
		case pos.X < -1:
			exit = DirLeft
			pos.X += 2
		case pos.Y >= 1:
			exit = DirDown
			pos.Y -= 2
		default:
			exit = DirUp
			pos.Y += 2
		}

		link, ok := frame.Links().At(exit)
		if !ok {
			log.Error("crossed an unlinked border",
				"frame", pos.Root, "edge", exit, "links", frame.Links(), "origin", raw)
			panic("world: frame neighbor access error")
		}

		angle := exit.AngleTo(link.Entry.Reverse())
		pos = RawWorldPosition{Root: link.Frame, X: pos.X, Y: pos.Y}.Rotated(angle)
	}

	log.Error("normalization did not terminate", "origin", raw, "hops", maxNormalizeHops)
	panic("world: normalization hop limit exceeded")
}

// NormalizePosition re-normalizes an already-tagged position. Positions
// inside [-1, 1) come back unchanged.
func (w *World) NormalizePosition(pos WorldPosition) WorldPosition {
	return w.Normalize(RawWorldPosition{Root: pos.Frame, X: pos.X, Y: pos.Y})
}

// resolveTile maps a possibly out-of-range integer tile index through the
// border links into the owning frame's index space. It is the tile-index
// twin of Normalize: same link following, same rotation, with FrameWidth as
// the modulus instead of the ±1.0 floats. Axes resolve one at a time in the
// same x-before-y priority, so a corner-adjacent query takes two hops.
func (w *World) resolveTile(id FrameID, tx, ty int) (FrameID, int, int) {
	for hop := 0; hop < maxNormalizeHops; hop++ {
		frame, ok := w.frames[id]
		if !ok {
			log.Error("tile resolution reached unknown frame", "frame", id, "tx", tx, "ty", ty)
			panic("world: frame neighbor access error")
		}

		var exit Direction
		switch {
		case tx >= FrameWidth:
			exit = DirRight
			tx -= FrameWidth
		case tx < 0:
			exit = DirLeft
			tx += FrameWidth
		case ty >= FrameWidth:
			exit = DirDown
			ty -= FrameWidth
		case ty < 0:
			exit = DirUp
			ty += FrameWidth
		default:
			return id, tx, ty
		}

		link, ok := frame.Links().At(exit)
		if !ok {
			log.Error("tile query crossed an unlinked border",
				"frame", id, "edge", exit, "links", frame.Links())
			panic("world: frame neighbor access error")
		}

		angle := exit.AngleTo(link.Entry.Reverse())
		tx, ty = rotateTileIndex(tx, ty, angle)
		id = link.Frame
	}

	log.Error("tile resolution did not terminate", "frame", id, "tx", tx, "ty", ty)
	panic("world: normalization hop limit exceeded")
}

// rotateTileIndex rotates an integer tile index about the frame center,
// matching the float rotation table on tile centers.
func rotateTileIndex(tx, ty int, angle Angle) (int, int) {
	switch angle {
	case Clockwise90:
		return FrameWidth - 1 - ty, tx
	case Clockwise180:
		return FrameWidth - 1 - tx, FrameWidth - 1 - ty
	case Clockwise270:
		return ty, FrameWidth - 1 - tx
	default:
		return tx, ty
	}
}

// TileIndex converts an in-bounds local coordinate to its tile index.
func TileIndex(x, y float32) (int, int) {
	tx := int(math.Floor(float64((x + 1) / TileSize)))
	ty := int(math.Floor(float64((y + 1) / TileSize)))
	return tx, ty
}

// TileAt reads a tile by index, resolving out-of-range indices through the
// border links. Every index on a fully connected cube resolves to a real
// tile.
func (w *World) TileAt(id FrameID, tx, ty int) Tile {
	rid, rx, ry := w.resolveTile(id, tx, ty)
	return w.frames[rid].Tile(rx, ry)
}

// TileIndexAt returns the tile index under a normalized world position.
func (w *World) TileIndexAt(pos WorldPosition) (int, int) {
	return TileIndex(pos.X, pos.Y)
}
