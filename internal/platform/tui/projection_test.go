package tui

import (
	"testing"

	"github.com/vovakirdan/cubeworld/internal/config"
	"github.com/vovakirdan/cubeworld/internal/core"
)

func testCamera() Camera {
	return NewCamera(config.CameraConfig{FOVDegrees: 60, Distance: 2.6})
}

func TestProjectCenterRay(t *testing.T) {
	proj := testCamera().Projector(80, 24)

	x, y, depth := proj.Project(core.V3(0, 0, 0))

	if x != 40 || y != 12 {
		t.Errorf("origin should project to viewport center, got (%.2f, %.2f)", x, y)
	}
	if depth <= -1 || depth >= 1 {
		t.Errorf("origin depth %.4f outside clip range", depth)
	}
}

func TestProjectDirections(t *testing.T) {
	proj := testCamera().Projector(80, 24)

	rx, _, _ := proj.Project(core.V3(0.5, 0, 0))
	if rx <= 40 {
		t.Errorf("+x point should land right of center, got x=%.2f", rx)
	}

	// Negative y is up in world space and must land on a lower row index.
	_, uy, _ := proj.Project(core.V3(0, -0.5, 0))
	if uy >= 12 {
		t.Errorf("-y point should land above center, got y=%.2f", uy)
	}
}

func TestProjectDepthOrdering(t *testing.T) {
	proj := testCamera().Projector(80, 24)

	_, _, nearDepth := proj.Project(core.V3(0, 0, 1))
	_, _, farDepth := proj.Project(core.V3(0, 0, -1))

	if nearDepth >= farDepth {
		t.Errorf("point closer to the camera should have smaller depth: near=%.4f far=%.4f",
			nearDepth, farDepth)
	}
}
