package factory

import (
	"github.com/automoto/voidscrubbers/archetypes"
	"github.com/automoto/voidscrubbers/components"
	"github.com/automoto/voidscrubbers/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWorld spawns the world entity, its collision space and a solid body
// for every water tile.
func CreateWorld(ecs *ecs.ECS, data components.WorldData) *donburi.Entry {
	world := archetypes.World.Spawn(ecs)
	components.World.SetValue(world, data)

	CreateSpace(ecs, data.Width, data.Height, int(data.Grid.TileSize))

	for _, c := range data.Chunks {
		for _, p := range data.Source.ChunkData(c) {
			if p.Type != tilemap.Water {
				continue
			}
			x, y := data.Grid.TileOrigin(c, p)
			CreateWater(ecs, x, y, data.Grid.TileSize)
		}
	}

	return world
}
