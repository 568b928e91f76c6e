// Package world implements the cube-surface simulation: six square tile
// frames glued into a closed cube topology, position normalization across
// frame borders, and tile collision for entities moving on the surface.
package world

// Direction identifies one of the four cardinal edges of a frame, or
// Neutral for "no edge" / self.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	DirNeutral
)

// Edges lists the four cardinal directions in a stable order.
// Neutral is excluded.
var Edges = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirNeutral:
		return "neutral"
	default:
		return "invalid"
	}
}

// Reverse returns the opposite direction. Neutral is its own reverse.
func (d Direction) Reverse() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNeutral
	}
}

// asAngle maps a direction to its canonical clockwise rotation from Up.
// Neutral maps to zero.
func (d Direction) asAngle() Angle {
	switch d {
	case DirRight:
		return Clockwise90
	case DirDown:
		return Clockwise180
	case DirLeft:
		return Clockwise270
	default:
		return Clockwise0
	}
}

// Rotated returns the direction reached by rotating d clockwise by the
// given angle. Neutral is a fixed point of every rotation.
func (d Direction) Rotated(angle Angle) Direction {
	if d == DirNeutral {
		return DirNeutral
	}
	switch (d.asAngle() + angle) % 4 {
	case Clockwise0:
		return DirUp
	case Clockwise90:
		return DirRight
	case Clockwise180:
		return DirDown
	default:
		return DirLeft
	}
}

// AngleTo computes the clockwise rotation that carries this direction's
// canonical orientation onto other's.
func (d Direction) AngleTo(other Direction) Angle {
	return other.Rotated(d.asAngle().Negative()).asAngle()
}

// Angle is a clockwise rotation in multiples of 90 degrees, applied to a
// coordinate pair when crossing into a neighbor frame whose attached edge
// orientation differs from the identity mapping.
type Angle int

const (
	Clockwise0 Angle = iota
	Clockwise90
	Clockwise180
	Clockwise270
)

// String returns a human-readable name for the angle.
func (a Angle) String() string {
	switch a {
	case Clockwise0:
		return "0°"
	case Clockwise90:
		return "90°"
	case Clockwise180:
		return "180°"
	case Clockwise270:
		return "270°"
	default:
		return "invalid"
	}
}

// Reverse adds a half turn.
func (a Angle) Reverse() Angle {
	return (a + Clockwise180) % 4
}

// Negative returns the inverse rotation: 90° and 270° swap, 0° and 180°
// are self-inverse.
func (a Angle) Negative() Angle {
	return (4 - a) % 4
}
