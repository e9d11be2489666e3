package tilemap

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

const (
	groundLayer      = "ground"
	spawnObjectGroup = "PlayerSpawn"
)

// SpawnPoint is a player start position from the map.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// TiledSource serves chunks cut from a TMX map. Tiles whose tileset entry has
// type=water are water; everything else on the ground layer is grass.
// Chunks outside the map are empty.
type TiledSource struct {
	Grid
	id     string
	width  int
	height int
	tiles  []TileType
	Spawns []SpawnPoint
	chunks map[ChunkCoord][]Point
}

// LoadTiledSource parses tmxPath from fsys. The map's tile width sets the
// grid's tile size.
func LoadTiledSource(fsys fs.FS, tmxPath string, chunkTiles int) (*TiledSource, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	src := &TiledSource{
		Grid:   Grid{TileSize: float64(m.TileWidth), ChunkTiles: chunkTiles},
		id:     tmxPath,
		width:  m.Width,
		height: m.Height,
		tiles:  make([]TileType, m.Width*m.Height),
		chunks: map[ChunkCoord][]Point{},
	}

	found := false
	for _, layer := range m.Layers {
		if layer.Name != groundLayer {
			continue
		}
		found = true
		for i, tile := range layer.Tiles {
			if i >= len(src.tiles) || tile.IsNil() {
				continue
			}
			if ts, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil && ts.Properties.GetString("type") == "water" {
				src.tiles[i] = Water
			}
		}
		break
	}
	if !found {
		return nil, fmt.Errorf("TMX %s: no %q layer", tmxPath, groundLayer)
	}

	for _, og := range m.ObjectGroups {
		if og.Name != spawnObjectGroup {
			continue
		}
		for _, o := range og.Objects {
			src.Spawns = append(src.Spawns, SpawnPoint{
				X:     o.X,
				Y:     o.Y,
				Index: o.Properties.GetInt("spawnIndex"),
			})
		}
	}
	sort.Slice(src.Spawns, func(i, j int) bool {
		return src.Spawns[i].Index < src.Spawns[j].Index
	})

	return src, nil
}

func (t *TiledSource) ID() string { return t.id }

// Size returns the map size in world pixels.
func (t *TiledSource) Size() (float64, float64) {
	return float64(t.width) * t.TileSize, float64(t.height) * t.TileSize
}

// TileAt returns the tile at map tile coordinates.
func (t *TiledSource) TileAt(x, y int) (TileType, bool) {
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return Grass, false
	}
	return t.tiles[y*t.width+x], true
}

func (t *TiledSource) ChunkData(c ChunkCoord) []Point {
	if pts, ok := t.chunks[c]; ok {
		return pts
	}
	var pts []Point
	for x := 0; x < t.ChunkTiles; x++ {
		for y := 0; y < t.ChunkTiles; y++ {
			tt, ok := t.TileAt(c.X*t.ChunkTiles+x, c.Y*t.ChunkTiles+y)
			if !ok {
				continue
			}
			pts = append(pts, Point{X: x, Y: y, Type: tt})
		}
	}
	t.chunks[c] = pts
	return pts
}
