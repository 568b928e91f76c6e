// Package world implements a tile platformer on the surface of a cube: six
// square frames glued edge to edge into a closed topology, entities moving
// under velocity physics with per-tile collision, and positions that
// normalize seamlessly across frame borders.
package world

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cubeworld/internal/core"
)

// Well-known frame ids of the standard cube. Front is the spawn frame.
const (
	FrameFront FrameID = iota
	FrameUp
	FrameDown
	FrameLeft
	FrameRight
	FrameBack
)

var frameLabels = [...]string{"front", "up", "down", "left", "right", "back"}

// FrameLabel returns the human-readable name of a standard cube frame.
func FrameLabel(id FrameID) string {
	if int(id) >= 0 && int(id) < len(frameLabels) {
		return frameLabels[id]
	}
	return id.String()
}

// Params are the physics tuning constants consumed by Tick.
type Params struct {
	MoveImpulse  float32 // horizontal impulse per held movement key per tick
	JumpVelocity float32 // vertical velocity set on jump (negative is up)
	Gravity      float32 // downward impulse per tick
	Friction     float32 // per-tick velocity damping factor
	RestEpsilon  float32 // velocities below this snap to zero
	SolidDensity float64 // solid tile probability on generated frames
}

// DefaultParams returns the standard tuning.
func DefaultParams() Params {
	return Params{
		MoveImpulse:  0.002,
		JumpVelocity: -0.018,
		Gravity:      0.001,
		Friction:     0.8,
		RestEpsilon:  1e-5,
		SolidDensity: 0.17,
	}
}

// World is the complete simulation state: the frame graph, its entities and
// the physics tuning. All mutation goes through Tick; queries are read-only.
type World struct {
	frames   map[FrameID]*Frame
	entities map[EntityID]*Entity
	order    []EntityID
	focus    EntityID
	nextID   int
	params   Params
	seed     int64
	ticks    uint64
}

// NewCube builds the standard six-frame cube world with one player entity on
// the front frame. The seed drives tile population deterministically.
func NewCube(seed int64, params Params) *World {
	w := &World{
		frames:   make(map[FrameID]*Frame),
		entities: make(map[EntityID]*Entity),
		params:   params,
		seed:     seed,
	}
	w.generate()
	return w
}

func (w *World) generate() {
	rng := rand.New(rand.NewSource(w.seed))
	for id := FrameFront; id <= FrameBack; id++ {
		w.frames[id] = NewPopulatedFrame(id, rng, w.params.SolidDensity)
	}

	// Front face neighbors, identity gluing.
	w.connect(FrameFront, DirUp, FrameUp, DirDown)
	w.connect(FrameFront, DirDown, FrameDown, DirUp)
	w.connect(FrameFront, DirLeft, FrameLeft, DirRight)
	w.connect(FrameFront, DirRight, FrameRight, DirLeft)

	// Back face closes the cube with a half-turn twist against up/down and a
	// quarter-turn against left/right.
	w.connect(FrameUp, DirUp, FrameBack, DirUp)
	w.connect(FrameDown, DirDown, FrameBack, DirDown)
	w.connect(FrameLeft, DirLeft, FrameBack, DirRight)
	w.connect(FrameRight, DirRight, FrameBack, DirLeft)

	// Corner seams between the side faces.
	w.connect(FrameUp, DirLeft, FrameLeft, DirUp)
	w.connect(FrameUp, DirRight, FrameRight, DirUp)
	w.connect(FrameDown, DirLeft, FrameLeft, DirDown)
	w.connect(FrameDown, DirRight, FrameRight, DirDown)

	player := newPlayer(w.allocID(), FrameFront)
	w.carveSpawn(player.Position)
	w.entities[player.ID] = player
	w.order = append(w.order, player.ID)
	w.focus = player.ID
}

// connect attaches two frames along an edge pair, both ways. Attaching an
// already-occupied edge is a construction bug and panics.
func (w *World) connect(a FrameID, aEdge Direction, b FrameID, bEdge Direction) {
	fa, ok := w.frames[a]
	if !ok {
		log.Error("connect: unknown frame", "frame", a)
		panic("world: connect unknown frame")
	}
	fb, ok := w.frames[b]
	if !ok {
		log.Error("connect: unknown frame", "frame", b)
		panic("world: connect unknown frame")
	}
	if fa.links.occupied(aEdge) {
		log.Error("connect: edge already attached", "frame", a, "edge", aEdge, "links", fa.Links())
		panic("world: frame edge attached twice")
	}
	if fb.links.occupied(bEdge) {
		log.Error("connect: edge already attached", "frame", b, "edge", bEdge, "links", fb.Links())
		panic("world: frame edge attached twice")
	}
	fa.links.attach(aEdge, FrameLink{Frame: b, Entry: bEdge})
	fb.links.attach(bEdge, FrameLink{Frame: a, Entry: aEdge})
}

// carveSpawn clears a pocket of tiles around the spawn point so the player
// never starts inside a wall.
func (w *World) carveSpawn(pos WorldPosition) {
	tx, ty := TileIndex(pos.X, pos.Y)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			id, rx, ry := w.resolveTile(pos.Frame, tx+dx, ty+dy)
			w.frames[id].setTile(rx, ry, TileEmpty)
		}
	}
}

func (w *World) allocID() EntityID {
	id := EntityID(w.nextID)
	w.nextID++
	return id
}

// Tick advances the simulation by one step: apply input impulses and
// gravity to the focus entity, then integrate and collide every entity.
func (w *World) Tick(input *core.InputFrame) {
	if input != nil {
		w.applyInput(input)
	}
	for _, id := range w.order {
		e := w.entities[id]
		e.Velocity.Y += w.params.Gravity
		w.moveEntity(e)
	}
	w.ticks++
}

func (w *World) applyInput(input *core.InputFrame) {
	e, ok := w.entities[w.focus]
	if !ok {
		return
	}

	if input.IsHeld(core.ActionMoveLeft) {
		e.Velocity.X -= w.params.MoveImpulse
	}
	if input.IsHeld(core.ActionMoveRight) {
		e.Velocity.X += w.params.MoveImpulse
	}
	if input.WasPressed(core.ActionJump) && e.Grounded {
		e.Velocity.Y = w.params.JumpVelocity
	}
	if input.WasPressed(core.ActionPlaceTile) {
		w.editFacingTile(e, TileSolid)
	}
	if input.WasPressed(core.ActionRemoveTile) {
		w.editFacingTile(e, TileEmpty)
	}
}

// editFacingTile writes a tile one step ahead of the entity's orientation,
// resolving across frame borders like any other tile access.
func (w *World) editFacingTile(e *Entity, t Tile) {
	dx, dy := 0, 0
	switch e.Orientation {
	case DirUp:
		dy = -1
	case DirDown:
		dy = 1
	case DirLeft:
		dx = -1
	case DirRight:
		dx = 1
	default:
		return
	}
	tx, ty := TileIndex(e.Position.X, e.Position.Y)
	id, rx, ry := w.resolveTile(e.Position.Frame, tx+dx, ty+dy)
	w.frames[id].setTile(rx, ry, t)
}

// Ticks returns the number of completed simulation steps.
func (w *World) Ticks() uint64 { return w.ticks }

// Physics returns the active tuning constants.
func (w *World) Physics() Params { return w.params }

// Seed returns the generation seed.
func (w *World) Seed() int64 { return w.seed }

// FocusEntity returns the id of the entity input is routed to.
func (w *World) FocusEntity() EntityID { return w.focus }

// EntityIDs returns the entity ids in stable creation order.
func (w *World) EntityIDs() []EntityID {
	out := make([]EntityID, len(w.order))
	copy(out, w.order)
	return out
}

// Entity returns a copy of an entity's state.
func (w *World) Entity(id EntityID) (Entity, bool) {
	e, ok := w.entities[id]
	if !ok {
		return Entity{}, false
	}
	return *e, true
}

// FrameIDs returns the frame ids in ascending order.
func (w *World) FrameIDs() []FrameID {
	out := make([]FrameID, 0, len(w.frames))
	for id := FrameFront; int(id) < len(w.frames); id++ {
		if _, ok := w.frames[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// Frame returns a frame by id.
func (w *World) Frame(id FrameID) (*Frame, bool) {
	f, ok := w.frames[id]
	return f, ok
}

// LinkedFrame returns the neighbor attached to a frame's edge.
func (w *World) LinkedFrame(id FrameID, edge Direction) (FrameID, bool) {
	f, ok := w.frames[id]
	if !ok {
		return InvalidFrame, false
	}
	link, ok := f.Links().At(edge)
	if !ok {
		return InvalidFrame, false
	}
	return link.Frame, true
}

// TileSnapshot copies every frame's tile grid, keyed by frame id. The
// storage layer persists these snapshots.
func (w *World) TileSnapshot() map[FrameID][]byte {
	out := make(map[FrameID][]byte, len(w.frames))
	for id, f := range w.frames {
		out[id] = f.Tiles()
	}
	return out
}

// RestoreTiles overwrites frame grids from a snapshot. Frames missing from
// the snapshot keep their generated tiles.
func (w *World) RestoreTiles(snapshot map[FrameID][]byte) error {
	for id, tiles := range snapshot {
		f, ok := w.frames[id]
		if !ok {
			continue
		}
		if err := f.SetTiles(tiles); err != nil {
			return err
		}
	}
	return nil
}

// Reset regenerates the world from a new seed, discarding edits and
// entities.
func (w *World) Reset(seed int64) {
	w.frames = make(map[FrameID]*Frame)
	w.entities = make(map[EntityID]*Entity)
	w.order = nil
	w.nextID = 0
	w.seed = seed
	w.ticks = 0
	w.generate()
}
