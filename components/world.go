package components

import (
	"github.com/automoto/voidscrubbers/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// WorldData is the loaded tile world
type WorldData struct {
	Source tilemap.Source
	Grid   tilemap.Grid
	Width  float64 // world pixels
	Height float64
	Chunks []tilemap.ChunkCoord
	Spawns []math.Vec2
}

var World = donburi.NewComponentType[WorldData]()

// TileAt returns the tile under world position (x, y).
func (w *WorldData) TileAt(x, y float64) (tilemap.TileType, bool) {
	if x < 0 || y < 0 || x >= w.Width || y >= w.Height {
		return tilemap.Grass, false
	}
	c := w.Source.WorldToChunk(x, y)
	size := w.Grid.ChunkSize()
	tx := int((x - float64(c.X)*size) / w.Grid.TileSize)
	ty := int((y - float64(c.Y)*size) / w.Grid.TileSize)
	for _, p := range w.Source.ChunkData(c) {
		if p.X == tx && p.Y == ty {
			return p.Type, true
		}
	}
	return tilemap.Grass, false
}
