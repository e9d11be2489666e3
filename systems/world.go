package systems

import (
	"fmt"
	"log"
	"math"

	"github.com/automoto/voidscrubbers/assets"
	"github.com/automoto/voidscrubbers/components"
	cfg "github.com/automoto/voidscrubbers/config"
	"github.com/automoto/voidscrubbers/tilemap"
	dmath "github.com/yohamta/donburi/features/math"
)

// BuildWorld resolves the configured map: a named embedded TMX map, or a
// random world from seed when mapName is empty.
func BuildWorld(mapName string, seed int64) (components.WorldData, error) {
	grid := tilemap.Grid{TileSize: cfg.World.TileSize, ChunkTiles: cfg.World.ChunkTiles}

	if mapName == "" {
		src := tilemap.NewRandomSource(fmt.Sprintf("random#%d", seed), grid, seed, cfg.World.WaterChance)
		data := components.WorldData{
			Source: src,
			Grid:   grid,
			Width:  float64(cfg.World.ChunksX) * grid.ChunkSize(),
			Height: float64(cfg.World.ChunksY) * grid.ChunkSize(),
		}
		data.Chunks = chunksCovering(src, data.Width, data.Height)
		data.Spawns = ringSpawns(&data, cfg.PlayerSelect.MaxPlayers)
		return data, nil
	}

	src, err := assets.LoadMap(mapName, cfg.World.ChunkTiles)
	if err != nil {
		return components.WorldData{}, fmt.Errorf("build world %q: %w", mapName, err)
	}
	w, h := src.Size()
	data := components.WorldData{
		Source: src,
		Grid:   src.Grid,
		Width:  w,
		Height: h,
	}
	data.Chunks = chunksCovering(src, w, h)
	for _, s := range src.Spawns {
		data.Spawns = append(data.Spawns, dmath.NewVec2(s.X, s.Y))
	}
	if len(data.Spawns) == 0 {
		log.Printf("[world] map %q has no spawns, using defaults", mapName)
		data.Spawns = ringSpawns(&data, cfg.PlayerSelect.MaxPlayers)
	}
	return data, nil
}

func chunksCovering(src tilemap.Source, w, h float64) []tilemap.ChunkCoord {
	last := src.WorldToChunk(math.Max(0, w-1), math.Max(0, h-1))
	var out []tilemap.ChunkCoord
	for y := 0; y <= last.Y; y++ {
		for x := 0; x <= last.X; x++ {
			out = append(out, tilemap.ChunkCoord{X: x, Y: y})
		}
	}
	return out
}

// ringSpawns places n spawns on a circle around the world centre, each moved
// to the nearest grass tile.
func ringSpawns(w *components.WorldData, n int) []dmath.Vec2 {
	cx, cy := w.Width/2, w.Height/2
	r := math.Min(w.Width, w.Height) / 4
	out := make([]dmath.Vec2, 0, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		x, y := nearestGrass(w, cx+r*math.Cos(a), cy+r*math.Sin(a))
		out = append(out, dmath.NewVec2(x, y))
	}
	return out
}

// nearestGrass searches outward in tile steps for a grass tile and returns
// its centre.
func nearestGrass(w *components.WorldData, x, y float64) (float64, float64) {
	ts := w.Grid.TileSize
	tx, ty := math.Floor(x/ts), math.Floor(y/ts)
	for radius := 0; radius < 64; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if max(abs(dx), abs(dy)) != radius {
					continue
				}
				px := (tx+float64(dx))*ts + ts/2
				py := (ty+float64(dy))*ts + ts/2
				if t, ok := w.TileAt(px, py); ok && t == tilemap.Grass {
					return px, py
				}
			}
		}
	}
	return x, y
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
