// Package tilemap provides the ground tiles the world scene is built from.
package tilemap

import "math"

// TileType is the kind of ground at a tile.
type TileType int

const (
	Grass TileType = iota
	Water
)

func (t TileType) String() string {
	if t == Water {
		return "water"
	}
	return "grass"
}

// Point is one tile, in tile coordinates local to its chunk.
type Point struct {
	X, Y int
	Type TileType
}

// ChunkCoord addresses a square block of tiles.
type ChunkCoord struct {
	X, Y int
}

// Source produces chunked tile data.
type Source interface {
	ID() string
	// WorldToChunk returns the chunk containing world position (x, y).
	WorldToChunk(x, y float64) ChunkCoord
	// ChunkData returns every tile of a chunk. Repeated calls for the same
	// chunk return the same data.
	ChunkData(c ChunkCoord) []Point
}

// Grid describes the chunk geometry shared by sources.
type Grid struct {
	TileSize   float64
	ChunkTiles int
}

// ChunkSize is the world size of one chunk side.
func (g Grid) ChunkSize() float64 {
	return g.TileSize * float64(g.ChunkTiles)
}

func (g Grid) WorldToChunk(x, y float64) ChunkCoord {
	size := g.ChunkSize()
	return ChunkCoord{X: int(math.Floor(x / size)), Y: int(math.Floor(y / size))}
}

// TileOrigin returns the world position of the top-left corner of p.
func (g Grid) TileOrigin(c ChunkCoord, p Point) (float64, float64) {
	size := g.ChunkSize()
	return float64(c.X)*size + float64(p.X)*g.TileSize, float64(c.Y)*size + float64(p.Y)*g.TileSize
}
