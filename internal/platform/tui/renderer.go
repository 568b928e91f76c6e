package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/cubeworld/internal/core"
	"github.com/vovakirdan/cubeworld/internal/world"
)

// faceSpec positions one cube face: which border of the focus frame it
// extends, the fold rotation that lifts its plane into place, and the tile
// index shift that makes the topology resolve its tiles.
type faceSpec struct {
	dir    world.Direction
	pitch  float32
	roll   float32
	shiftX int
	shiftY int
}

var cubeFaces = []faceSpec{
	{dir: world.DirNeutral},
	{dir: world.DirUp, pitch: math.Pi / 2, shiftY: -world.FrameWidth},
	{dir: world.DirDown, pitch: -math.Pi / 2, shiftY: world.FrameWidth},
	{dir: world.DirLeft, roll: -math.Pi / 2, shiftX: -world.FrameWidth},
	{dir: world.DirRight, roll: math.Pi / 2, shiftX: world.FrameWidth},
}

// Renderer draws the world as a folded cube: the focus frame faces the
// camera and its four neighbors bend away from it. Neighbor tiles are read
// through the border links, so the seams stay continuous whatever the
// gluing rotation is.
type Renderer struct {
	camera Camera
}

// NewRenderer creates a renderer with the given camera.
func NewRenderer(camera Camera) *Renderer {
	return &Renderer{camera: camera}
}

// Render draws the world into the screen buffer.
func (r *Renderer) Render(w *world.World, s *core.Screen) {
	s.Clear()
	if s.Width() < 2 || s.Height() < 3 {
		return
	}

	focus, ok := w.Entity(w.FocusEntity())
	if !ok {
		s.DrawTextCentered(s.Height()/2, "no focus entity")
		return
	}

	// Ease the view rotation toward the frame border the entity approaches,
	// so the upcoming face swings into view before the crossing.
	fx := easeToward(focus.Position.X)
	fy := easeToward(focus.Position.Y)
	view := core.Mat4Identity().Rotated(fy*math.Pi/4, -fx*math.Pi/4, 0)

	// Keep the HUD line out of the projection viewport.
	proj := r.camera.Projector(float32(s.Width()), float32(s.Height()-1))

	for _, face := range cubeFaces {
		r.drawFace(w, s, proj, view, face, focus.Position.Frame)
	}

	for _, id := range w.EntityIDs() {
		e, ok := w.Entity(id)
		if !ok || e.Position.Frame != focus.Position.Frame {
			continue
		}
		r.drawEntity(s, proj, view, e)
	}

	r.drawHUD(w, s, focus)
}

// easeToward biases a coordinate toward its frame border, keeping the view
// steady near the center.
func easeToward(v float32) float32 {
	return float32(math.Pow(math.Abs(float64(v)), 1.5)) * sign(v)
}

func sign(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func (r *Renderer) drawFace(w *world.World, s *core.Screen, proj Projector, view core.Mat4, face faceSpec, focusFrame world.FrameID) {
	fold := core.Mat4Identity().Rotated(face.pitch, face.roll, 0)
	transform := view.Mul(fold)

	borderColor := core.ColorGray
	tileColor := core.ColorCyan
	if face.dir == world.DirNeutral {
		borderColor = core.ColorWhite
		tileColor = core.ColorGreen
	}

	// Face border.
	r.drawQuad(s, proj, transform,
		core.V3(-1, -1, 1), core.V3(1, -1, 1), core.V3(1, 1, 1), core.V3(-1, 1, 1),
		'.', borderColor)

	// Solid tiles, read through the topology via extended indices.
	f := float32(1) / world.FrameWidth
	for ty := 0; ty < world.FrameWidth; ty++ {
		for tx := 0; tx < world.FrameWidth; tx++ {
			tile := w.TileAt(focusFrame, tx+face.shiftX, ty+face.shiftY)
			if !tile.IsSolid() {
				continue
			}
			ox := float32(tx)/world.FrameWidth*2 - 1
			oy := float32(ty)/world.FrameWidth*2 - 1
			r.drawQuad(s, proj, transform,
				core.V3(ox, oy, 1),
				core.V3(ox+2*f, oy, 1),
				core.V3(ox+2*f, oy+2*f, 1),
				core.V3(ox, oy+2*f, 1),
				'#', tileColor)
		}
	}
}

func (r *Renderer) drawEntity(s *core.Screen, proj Projector, view core.Mat4, e world.Entity) {
	p := view.Apply(core.V3(e.Position.X, e.Position.Y, 1))
	x, y, _ := proj.Project(p)
	cx := int(math.Round(float64(x)))
	cy := int(math.Round(float64(y))) + 1
	s.SetCell(cx, cy, '@', core.ColorBrightWhite)
}

// drawQuad projects four corners and rasterizes the outline.
func (r *Renderer) drawQuad(s *core.Screen, proj Projector, transform core.Mat4, a, b, c, d core.Vec3, ch rune, color core.Color) {
	corners := [4]core.Vec3{a, b, c, d}
	var px, py [4]int
	for i, corner := range corners {
		x, y, _ := proj.Project(transform.Apply(corner))
		px[i] = int(math.Round(float64(x)))
		// Row 0 is the HUD.
		py[i] = int(math.Round(float64(y))) + 1
	}
	for i := range corners {
		j := (i + 1) % 4
		s.DrawLine(px[i], py[i], px[j], py[j], ch, color)
	}
}

func (r *Renderer) drawHUD(w *world.World, s *core.Screen, focus world.Entity) {
	hud := fmt.Sprintf("%s (%.3f, %.3f) v=(%.4f, %.4f)",
		world.FrameLabel(focus.Position.Frame),
		focus.Position.X, focus.Position.Y,
		focus.Velocity.X, focus.Velocity.Y)
	if focus.Grounded {
		hud += " grounded"
	}
	hud += fmt.Sprintf(" t=%d", w.Ticks())
	s.DrawTextColored(0, 0, hud, core.ColorBrightCyan)
}
