package tui

import (
	"math"

	"github.com/vovakirdan/cubeworld/internal/config"
	"github.com/vovakirdan/cubeworld/internal/core"
)

// cellAspect is the width:height ratio of a terminal cell. Cells are about
// twice as tall as they are wide, which the projector folds into the aspect
// ratio so the cube does not render squashed.
const cellAspect = 0.5

// Camera describes the viewpoint for the cube renderer.
type Camera struct {
	Position   core.Vec3
	Rotation   core.Vec3
	FOVDegrees float32
}

// NewCamera builds a camera from the configured projection parameters,
// placed on the +z axis looking at the origin.
func NewCamera(cfg config.CameraConfig) Camera {
	return Camera{
		Position:   core.V3(0, 0, float32(cfg.Distance)),
		FOVDegrees: float32(cfg.FOVDegrees),
	}
}

// Projector projects 3D points into viewport cell coordinates.
type Projector struct {
	pmv    core.Mat4
	width  float32
	height float32
}

// Projector builds the projection·model-view matrix for a viewport measured
// in terminal cells.
func (c Camera) Projector(viewportW, viewportH float32) Projector {
	return Projector{
		pmv:    createPMVMatrix(c, viewportW, viewportH),
		width:  viewportW,
		height: viewportH,
	}
}

// Project maps a point to viewport coordinates, with the perspective divide
// applied. The z result is the post-projection depth.
func (p Projector) Project(point core.Vec3) (x, y, depth float32) {
	projected := p.pmv.Apply(point)
	hw := p.width / 2
	hh := p.height / 2
	return projected.X*hw + hw, projected.Y*hh + hh, projected.Z
}

func createPMVMatrix(c Camera, viewportW, viewportH float32) core.Mat4 {
	aspectRatio := viewportW * cellAspect / viewportH

	const (
		near = 0.1
		far  = 50000.0
	)

	fov := float64(c.FOVDegrees) * math.Pi / 180
	height := float32(2 * near * math.Tan(fov))
	width := aspectRatio * height

	projection := core.Mat4FromValues([16]float32{
		2 * near / width, 0, 0, 0,
		0, 2 * near / height, 0, 0,
		0, 0, (far + near) / (near - far), 2 * far * near / (near - far),
		0, 0, -1, 0,
	})

	modelView := core.Mat4Identity().
		Rotated(c.Rotation.X, c.Rotation.Y, c.Rotation.Z).
		Translated(c.Position.Neg())

	return projection.Mul(modelView)
}
