package world

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
)

// Contacts is the solidity of the 2x2 tiles surrounding a probe point's
// fractional grid position. Quad sampling lets the resolver tell which side
// of the point is blocked.
type Contacts struct {
	TopLeft     bool
	TopRight    bool
	BottomLeft  bool
	BottomRight bool
}

// String implements fmt.Stringer for collision diagnostics.
func (c Contacts) String() string {
	return fmt.Sprintf("contacts(tl=%t tr=%t bl=%t br=%t)",
		c.TopLeft, c.TopRight, c.BottomLeft, c.BottomRight)
}

// contactsAt samples the contact quad around a raw position. The quad
// columns and rows are the two tiles nearest the point on each axis, so a
// point resting exactly on a tile boundary touches tiles on both sides.
// Queries past the frame border resolve through the topology.
func (w *World) contactsAt(pos RawWorldPosition) Contacts {
	gx := (pos.X + 1) / TileSize
	gy := (pos.Y + 1) / TileSize
	cx := int(math.Floor(float64(gx) + 0.5))
	cy := int(math.Floor(float64(gy) + 0.5))

	return Contacts{
		TopLeft:     w.TileAt(pos.Root, cx-1, cy-1).IsSolid(),
		TopRight:    w.TileAt(pos.Root, cx, cy-1).IsSolid(),
		BottomLeft:  w.TileAt(pos.Root, cx-1, cy).IsSolid(),
		BottomRight: w.TileAt(pos.Root, cx, cy).IsSolid(),
	}
}

// xDirection classifies a horizontal step sign.
func xDirection(v float32) Direction {
	switch {
	case v > 0:
		return DirRight
	case v < 0:
		return DirLeft
	default:
		return DirNeutral
	}
}

// yDirection classifies a vertical step sign. Increasing y is downward.
func yDirection(v float32) Direction {
	switch {
	case v > 0:
		return DirDown
	case v < 0:
		return DirUp
	default:
		return DirNeutral
	}
}

// snapToward moves a coordinate to the nearest tile boundary in the
// direction of travel.
func snapToward(v float32, dir Direction) float32 {
	scaled := float64(v / TileSize)
	switch dir {
	case DirRight, DirDown:
		return float32(math.Ceil(scaled)) * TileSize
	case DirLeft, DirUp:
		return float32(math.Floor(scaled)) * TileSize
	default:
		return v
	}
}

// blockedX decides whether a horizontal step is blocked, given the contact
// quads before and after the step, the per-axis movement history, and the
// vertical step direction of this tick.
func blockedX(dir Direction, before, after Contacts, lastX, lastY, moveY Direction) bool {
	var leadTop, leadBottom, trailTop, trailBottom, beforeTop, beforeBottom bool
	switch dir {
	case DirRight:
		leadTop, leadBottom = after.TopRight, after.BottomRight
		trailTop, trailBottom = after.TopLeft, after.BottomLeft
		beforeTop, beforeBottom = before.TopRight, before.BottomRight
	case DirLeft:
		leadTop, leadBottom = after.TopLeft, after.BottomLeft
		trailTop, trailBottom = after.TopRight, after.BottomRight
		beforeTop, beforeBottom = before.TopLeft, before.BottomLeft
	default:
		return false
	}

	switch {
	case leadTop && leadBottom:
		// Full wall across the leading edge.
		return true
	case leadTop:
		return cornerBlocks(cornerCase{
			trailSolid:   trailTop,
			beforeSolid:  beforeTop,
			oppDiagSolid: trailBottom,
			side:         DirUp,
			yields:       true,
		}, dir, lastX, lastY, moveY)
	case leadBottom:
		return cornerBlocks(cornerCase{
			trailSolid:   trailBottom,
			beforeSolid:  beforeBottom,
			oppDiagSolid: trailTop,
			side:         DirDown,
			yields:       true,
		}, dir, lastX, lastY, moveY)
	default:
		return false
	}
}

// blockedY is the transpose of blockedX: leading corners sit on the rows,
// surfaces slide along the columns, and the corner sides become Left/Right.
// Unlike the x axis, the y axis does not yield lone corners, so an entity
// falling onto an isolated tile corner lands on it instead of clipping
// through.
func blockedY(dir Direction, before, after Contacts, lastY, lastX, moveX Direction) bool {
	var leadLeft, leadRight, trailLeft, trailRight, beforeLeft, beforeRight bool
	switch dir {
	case DirDown:
		leadLeft, leadRight = after.BottomLeft, after.BottomRight
		trailLeft, trailRight = after.TopLeft, after.TopRight
		beforeLeft, beforeRight = before.BottomLeft, before.BottomRight
	case DirUp:
		leadLeft, leadRight = after.TopLeft, after.TopRight
		trailLeft, trailRight = after.BottomLeft, after.BottomRight
		beforeLeft, beforeRight = before.TopLeft, before.TopRight
	default:
		return false
	}

	switch {
	case leadLeft && leadRight:
		return true
	case leadLeft:
		return cornerBlocks(cornerCase{
			trailSolid:   trailLeft,
			beforeSolid:  beforeLeft,
			oppDiagSolid: trailRight,
			side:         DirLeft,
			yields:       false,
		}, dir, lastY, lastX, moveX)
	case leadRight:
		return cornerBlocks(cornerCase{
			trailSolid:   trailRight,
			beforeSolid:  beforeRight,
			oppDiagSolid: trailLeft,
			side:         DirRight,
			yields:       false,
		}, dir, lastY, lastX, moveX)
	default:
		return false
	}
}

// cornerCase captures one isolated leading-corner contact.
type cornerCase struct {
	trailSolid   bool      // trailing corner on the same side: a surface along the movement axis
	beforeSolid  bool      // the corner was already in contact before the step
	oppDiagSolid bool      // the opposite diagonal corner: a diagonal gap configuration
	side         Direction // which perpendicular side the corner sits on
	yields       bool      // whether lone diagonal corners defer to the other axis
}

// cornerBlocks resolves the ambiguous single-corner contact cases. The
// movement history tie-break keeps diagonal movement from clipping through
// diagonal tile gaps.
func cornerBlocks(c cornerCase, moveDir, lastThis, lastPerp, movePerp Direction) bool {
	if c.trailSolid {
		// The corner extends a surface we slide along (floor, ceiling, or
		// side wall); the perpendicular axis resolves it.
		return false
	}
	if c.beforeSolid {
		if movePerp == c.side {
			// The perpendicular axis presses us onto this corner (our
			// floor or ceiling); it is not an obstacle on this axis.
			return false
		}
		// Pressed frontally onto the corner: keep blocking.
		return true
	}
	if movePerp == c.side {
		// Diagonal approach to a fresh corner.
		if c.oppDiagSolid {
			// Perfect diagonal gap: block only when the previous movement
			// was already diagonal-consistent.
			return lastThis == moveDir && lastPerp == c.side
		}
		return !c.yields
	}
	// Frontal approach to a fresh corner.
	return true
}

// moveEntity integrates one entity's velocity into a new normalized
// position, resolving collisions per axis over sub-steps bounded to one
// tile of displacement each.
func (w *World) moveEntity(e *Entity) {
	if math.IsNaN(float64(e.Velocity.X)) || math.IsNaN(float64(e.Velocity.Y)) {
		log.Error("NaN velocity", "entity", e.ID, "position", e.Position)
		panic("world: NaN entity velocity")
	}

	speed := float32(math.Hypot(float64(e.Velocity.X), float64(e.Velocity.Y)))
	steps := int(math.Ceil(math.Max(1, float64(speed/TileSize))))
	subX := e.Velocity.X / float32(steps)
	subY := e.Velocity.Y / float32(steps)

	moveX := xDirection(subX)
	moveY := yDirection(subY)

	pos := RawWorldPosition{Root: e.Position.Frame, X: e.Position.X, Y: e.Position.Y}
	grounded := false

	for i := 0; i < steps; i++ {
		if subX != 0 {
			before := w.contactsAt(pos)
			cand := pos
			cand.X += subX
			after := w.contactsAt(cand)

			if blockedX(moveX, before, after, e.lastDirX, e.lastDirY, moveY) {
				pos.X = snapToward(pos.X, moveX)
				e.Velocity.X = 0
				subX = 0
				e.lastDirX = moveX
			} else {
				pos = cand
			}
		}

		if subY != 0 {
			before := w.contactsAt(pos)
			cand := pos
			cand.Y += subY
			after := w.contactsAt(cand)

			if blockedY(moveY, before, after, e.lastDirY, e.lastDirX, moveX) {
				pos.Y = snapToward(pos.Y, moveY)
				e.Velocity.Y = 0
				subY = 0
				e.lastDirY = moveY
				if moveY == DirDown {
					grounded = true
				}
			} else {
				pos = cand
			}
		}
	}

	e.Grounded = grounded
	e.Position = w.Normalize(pos)

	// Isotropic damping with a rest snap, so entities come to an exact stop
	// instead of creeping forever.
	e.Velocity.X *= w.params.Friction
	e.Velocity.Y *= w.params.Friction
	if absf(e.Velocity.X) < w.params.RestEpsilon {
		e.Velocity.X = 0
	}
	if absf(e.Velocity.Y) < w.params.RestEpsilon {
		e.Velocity.Y = 0
	}

	// Combined direction: vertical movement wins for orientation purposes;
	// a fully idle tick keeps the previous value.
	switch {
	case moveY != DirNeutral:
		e.lastDir = moveY
	case moveX != DirNeutral:
		e.lastDir = moveX
	}
	if e.lastDir != DirNeutral {
		e.Orientation = e.lastDir
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
