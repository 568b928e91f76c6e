package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/cubeworld/internal/world"
)

func testSnapshot() map[world.FrameID][]byte {
	w := world.NewCube(7, world.DefaultParams())
	return w.TileSnapshot()
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndLoadWorld(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	tiles := testSnapshot()
	if _, err := store.SaveWorld("alpha", 7, tiles); err != nil {
		t.Fatalf("SaveWorld() failed: %v", err)
	}

	rec, err := store.LoadWorld("alpha")
	if err != nil {
		t.Fatalf("LoadWorld() failed: %v", err)
	}
	if rec == nil {
		t.Fatal("LoadWorld() returned nil for saved world")
	}
	if rec.Seed != 7 {
		t.Errorf("Seed = %d, want 7", rec.Seed)
	}
	if len(rec.Tiles) != len(tiles) {
		t.Fatalf("loaded %d frames, want %d", len(rec.Tiles), len(tiles))
	}
	for id, grid := range tiles {
		got := rec.Tiles[id]
		if len(got) != len(grid) {
			t.Fatalf("frame %s has %d bytes, want %d", id, len(got), len(grid))
		}
		for i := range grid {
			if got[i] != grid[i] {
				t.Fatalf("frame %s tile %d = %d, want %d", id, i, got[i], grid[i])
			}
		}
	}
}

func TestStoreLoadMissingWorld(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	rec, err := store.LoadWorld("nope")
	if err != nil {
		t.Fatalf("LoadWorld() failed: %v", err)
	}
	if rec != nil {
		t.Errorf("LoadWorld() = %+v for missing world, want nil", rec)
	}
}

func TestStoreSaveWorldUpsert(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	tiles := testSnapshot()
	id1, err := store.SaveWorld("alpha", 7, tiles)
	if err != nil {
		t.Fatalf("SaveWorld() failed: %v", err)
	}

	// Edit a tile and save again under the same name.
	tiles[world.FrameFront][0] = byte(world.TileSolid)
	id2, err := store.SaveWorld("alpha", 9, tiles)
	if err != nil {
		t.Fatalf("SaveWorld() upsert failed: %v", err)
	}
	if id1 != id2 {
		t.Errorf("upsert changed world id from %d to %d", id1, id2)
	}

	rec, err := store.LoadWorld("alpha")
	if err != nil {
		t.Fatalf("LoadWorld() failed: %v", err)
	}
	if rec.Seed != 9 {
		t.Errorf("Seed after upsert = %d, want 9", rec.Seed)
	}
	if world.Tile(rec.Tiles[world.FrameFront][0]) != world.TileSolid {
		t.Error("edited tile not persisted by upsert")
	}

	worlds, err := store.ListWorlds()
	if err != nil {
		t.Fatalf("ListWorlds() failed: %v", err)
	}
	if len(worlds) != 1 {
		t.Errorf("ListWorlds() has %d rows after upsert, want 1", len(worlds))
	}
}

func TestStoreSaveWorldRejectsBadSnapshot(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	bad := map[world.FrameID][]byte{world.FrameFront: make([]byte, 5)}
	if _, err := store.SaveWorld("broken", 1, bad); err == nil {
		t.Error("short frame snapshot accepted")
	}
}

func TestStoreListWorlds(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	tiles := testSnapshot()
	solid := 0
	for _, grid := range tiles {
		for _, b := range grid {
			if world.Tile(b) == world.TileSolid {
				solid++
			}
		}
	}

	if _, err := store.SaveWorld("alpha", 1, tiles); err != nil {
		t.Fatalf("SaveWorld() failed: %v", err)
	}
	if _, err := store.SaveWorld("beta", 2, tiles); err != nil {
		t.Fatalf("SaveWorld() failed: %v", err)
	}

	worlds, err := store.ListWorlds()
	if err != nil {
		t.Fatalf("ListWorlds() failed: %v", err)
	}
	if len(worlds) != 2 {
		t.Fatalf("ListWorlds() has %d rows, want 2", len(worlds))
	}
	for _, sum := range worlds {
		if sum.Frames != 6 {
			t.Errorf("world %s has %d frames, want 6", sum.Name, sum.Frames)
		}
		if sum.SolidTiles != solid {
			t.Errorf("world %s has %d solid tiles, want %d", sum.Name, sum.SolidTiles, solid)
		}
	}
}

func TestStoreDeleteWorld(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveWorld("alpha", 1, testSnapshot()); err != nil {
		t.Fatalf("SaveWorld() failed: %v", err)
	}
	if err := store.DeleteWorld("alpha"); err != nil {
		t.Fatalf("DeleteWorld() failed: %v", err)
	}

	rec, err := store.LoadWorld("alpha")
	if err != nil {
		t.Fatalf("LoadWorld() failed: %v", err)
	}
	if rec != nil {
		t.Error("world still loadable after delete")
	}

	// Deleting a missing world is not an error.
	if err := store.DeleteWorld("alpha"); err != nil {
		t.Errorf("DeleteWorld() on missing world failed: %v", err)
	}
}

func TestStoreSessions(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.RecordSession("alpha", 1200); err != nil {
		t.Fatalf("RecordSession() failed: %v", err)
	}
	if _, err := store.RecordSession("alpha", 90); err != nil {
		t.Fatalf("RecordSession() failed: %v", err)
	}
	if _, err := store.RecordSession("beta", 10); err != nil {
		t.Fatalf("RecordSession() failed: %v", err)
	}

	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("RecentSessions() has %d rows, want 3", len(sessions))
	}
	// Most recent first.
	if sessions[0].WorldName != "beta" || sessions[0].Ticks != 10 {
		t.Errorf("newest session = %+v, want beta/10", sessions[0])
	}

	limited, err := store.RecentSessions(2)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("RecentSessions(2) has %d rows, want 2", len(limited))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Nested directories are created on open.
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
