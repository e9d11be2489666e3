package systems

import (
	"testing"

	"github.com/automoto/voidscrubbers/components"
	cfg "github.com/automoto/voidscrubbers/config"
	factory2 "github.com/automoto/voidscrubbers/systems/factory"
	"github.com/automoto/voidscrubbers/tags"
	"github.com/automoto/voidscrubbers/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestBuildRandomWorld(t *testing.T) {
	data, err := BuildWorld("", 99)
	if err != nil {
		t.Fatalf("BuildWorld: %v", err)
	}

	chunk := cfg.World.TileSize * float64(cfg.World.ChunkTiles)
	if data.Width != float64(cfg.World.ChunksX)*chunk || data.Height != float64(cfg.World.ChunksY)*chunk {
		t.Errorf("Unexpected world size %vx%v", data.Width, data.Height)
	}
	if len(data.Chunks) != cfg.World.ChunksX*cfg.World.ChunksY {
		t.Errorf("Expected %d chunks, got %d", cfg.World.ChunksX*cfg.World.ChunksY, len(data.Chunks))
	}
	if len(data.Spawns) != cfg.PlayerSelect.MaxPlayers {
		t.Fatalf("Expected a spawn per possible player, got %d", len(data.Spawns))
	}
	for _, s := range data.Spawns {
		if tt, ok := data.TileAt(s.X, s.Y); !ok || tt != tilemap.Grass {
			t.Errorf("Expected spawn %v on grass", s)
		}
	}
}

func TestBuildRandomWorldSeeded(t *testing.T) {
	a, _ := BuildWorld("", 5)
	b, _ := BuildWorld("", 5)
	for _, c := range a.Chunks {
		pa, pb := a.Source.ChunkData(c), b.Source.ChunkData(c)
		for i := range pa {
			if pa[i] != pb[i] {
				t.Fatalf("Expected equal seeds to build equal worlds, chunk %v differs", c)
			}
		}
	}
}

func TestBuildMapWorld(t *testing.T) {
	data, err := BuildWorld("arena", 0)
	if err != nil {
		t.Fatalf("BuildWorld: %v", err)
	}
	if data.Width != 40*32 || data.Height != 24*32 {
		t.Errorf("Expected the arena size, got %vx%v", data.Width, data.Height)
	}
	if len(data.Spawns) != 4 {
		t.Errorf("Expected the arena's 4 spawns, got %d", len(data.Spawns))
	}
	// the arena has a river in column 7
	if tt, ok := data.TileAt(7*32+16, 16); !ok || tt != tilemap.Water {
		t.Error("Expected water at tile (7, 0)")
	}
}

func TestBuildMissingMap(t *testing.T) {
	if _, err := BuildWorld("does-not-exist", 0); err == nil {
		t.Error("Expected an error for an unknown map")
	}
}

func TestCreateWorldAddsWaterBodies(t *testing.T) {
	data, err := BuildWorld("arena", 0)
	if err != nil {
		t.Fatalf("BuildWorld: %v", err)
	}
	e := ecs.NewECS(donburi.NewWorld())
	factory2.CreateWorld(e, data)

	want := 0
	for _, c := range data.Chunks {
		for _, p := range data.Source.ChunkData(c) {
			if p.Type == tilemap.Water {
				want++
			}
		}
	}
	got := 0
	tags.Water.Each(e.World, func(*donburi.Entry) { got++ })
	if want == 0 || got != want {
		t.Errorf("Expected %d water bodies, got %d", want, got)
	}

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		t.Fatal("Expected a collision space")
	}
	if n := len(components.Space.Get(spaceEntry).Objects()); n != want {
		t.Errorf("Expected %d objects in the space, got %d", want, n)
	}
}
