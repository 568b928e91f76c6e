package world

import "github.com/vovakirdan/cubeworld/internal/core"

// EntityID identifies an entity. IDs come from the world's monotonic
// counter and are never reused.
type EntityID int

// EntityKind distinguishes entity behaviors.
type EntityKind int

const (
	// EntityPlayer is the input-driven entity.
	EntityPlayer EntityKind = iota
)

// Entity is something that moves on the cube surface under velocity physics.
type Entity struct {
	ID       EntityID
	Kind     EntityKind
	Position WorldPosition
	Velocity core.Vec3 // z unused

	// Orientation is the facing direction, derived from the combined last
	// movement direction. It selects the tile-edit target and the sprite
	// pose.
	Orientation Direction

	// Grounded reports whether the entity rested on a solid tile below it
	// at the end of its last movement resolution. It gates jumping.
	Grounded bool

	// Last movement directions, kept per axis and combined. A per-axis
	// value updates only when that axis gets blocked; the collision
	// tie-breaks read the stale value on the frames in between.
	lastDir  Direction
	lastDirX Direction
	lastDirY Direction
}

func newPlayer(id EntityID, frame FrameID) *Entity {
	return &Entity{
		ID:   id,
		Kind: EntityPlayer,
		Position: WorldPosition{
			Frame: frame,
			X:     0.3,
			Y:     0.1,
		},
		Orientation: DirUp,
		lastDir:     DirNeutral,
		lastDirX:    DirNeutral,
		lastDirY:    DirNeutral,
	}
}

// LastDirection returns the combined last movement direction.
func (e *Entity) LastDirection() Direction {
	return e.lastDir
}
