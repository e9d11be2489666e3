package tilemap

import "math/rand"

// RandomSource generates grass with scattered water. Chunks are generated on
// first use and cached; the same seed always yields the same world.
type RandomSource struct {
	Grid
	id          string
	seed        int64
	waterChance float64
	chunks      map[ChunkCoord][]Point
}

func NewRandomSource(id string, grid Grid, seed int64, waterChance float64) *RandomSource {
	return &RandomSource{
		Grid:        grid,
		id:          id,
		seed:        seed,
		waterChance: waterChance,
		chunks:      map[ChunkCoord][]Point{},
	}
}

func (r *RandomSource) ID() string { return r.id }

func (r *RandomSource) ChunkData(c ChunkCoord) []Point {
	if pts, ok := r.chunks[c]; ok {
		return pts
	}

	rng := rand.New(rand.NewSource(r.chunkSeed(c)))
	pts := make([]Point, 0, r.ChunkTiles*r.ChunkTiles)
	for x := 0; x < r.ChunkTiles; x++ {
		for y := 0; y < r.ChunkTiles; y++ {
			t := Grass
			if rng.Float64() < r.waterChance {
				t = Water
			}
			pts = append(pts, Point{X: x, Y: y, Type: t})
		}
	}
	r.chunks[c] = pts
	return pts
}

func (r *RandomSource) chunkSeed(c ChunkCoord) int64 {
	const p1, p2 = 73856093, 19349663
	return r.seed ^ int64(c.X)*p1 ^ int64(c.Y)*p2
}
