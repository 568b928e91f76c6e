package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWorldEmbeddedDefault(t *testing.T) {
	cfg, err := LoadWorld("")
	if err != nil {
		t.Fatalf("LoadWorld() failed: %v", err)
	}
	def := DefaultWorldConfig()
	if cfg.Physics != def.Physics {
		t.Errorf("embedded physics = %+v, want %+v", cfg.Physics, def.Physics)
	}
	if cfg.Generation != def.Generation {
		t.Errorf("embedded generation = %+v, want %+v", cfg.Generation, def.Generation)
	}
}

func TestLoadWorldCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.yaml")
	content := []byte("physics:\n  move_impulse: 0.004\n  jump_velocity: -0.02\n  gravity: 0.002\n  friction: 0.9\n  rest_epsilon: 0.0001\ngeneration:\n  solid_density: 0.25\ncamera:\n  fov_degrees: 75\n  distance: 3\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWorld(path)
	if err != nil {
		t.Fatalf("LoadWorld() failed: %v", err)
	}
	if cfg.Physics.MoveImpulse != 0.004 {
		t.Errorf("move_impulse = %v, want 0.004", cfg.Physics.MoveImpulse)
	}
	if cfg.Generation.SolidDensity != 0.25 {
		t.Errorf("solid_density = %v, want 0.25", cfg.Generation.SolidDensity)
	}
	if cfg.Camera.FOVDegrees != 75 {
		t.Errorf("fov_degrees = %v, want 75", cfg.Camera.FOVDegrees)
	}
}

func TestLoadWorldMissingCustomPath(t *testing.T) {
	if _, err := LoadWorld("/nonexistent/world.yaml"); err == nil {
		t.Error("missing explicit config path did not error")
	}
}

func TestValidateClampsBadValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.yaml")
	content := []byte("physics:\n  move_impulse: 0.002\n  jump_velocity: -0.018\n  gravity: -5\n  friction: 3\n  rest_epsilon: 0\ngeneration:\n  solid_density: 2\ncamera:\n  fov_degrees: 200\n  distance: -1\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWorld(path)
	if err != nil {
		t.Fatalf("LoadWorld() failed: %v", err)
	}
	def := DefaultWorldConfig()
	if cfg.Physics.Friction != def.Physics.Friction {
		t.Errorf("friction not clamped: %v", cfg.Physics.Friction)
	}
	if cfg.Physics.Gravity != def.Physics.Gravity {
		t.Errorf("gravity not clamped: %v", cfg.Physics.Gravity)
	}
	if cfg.Generation.SolidDensity != def.Generation.SolidDensity {
		t.Errorf("solid_density not clamped: %v", cfg.Generation.SolidDensity)
	}
	if cfg.Camera.FOVDegrees != def.Camera.FOVDegrees {
		t.Errorf("fov not clamped: %v", cfg.Camera.FOVDegrees)
	}
	if cfg.Camera.Distance != def.Camera.Distance {
		t.Errorf("distance not clamped: %v", cfg.Camera.Distance)
	}
}

func TestParamsBridge(t *testing.T) {
	cfg := DefaultWorldConfig()
	p := cfg.Params()
	if p.MoveImpulse != cfg.Physics.MoveImpulse || p.SolidDensity != cfg.Generation.SolidDensity {
		t.Errorf("Params() lost values: %+v", p)
	}
}
