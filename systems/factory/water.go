package factory

import (
	"github.com/automoto/voidscrubbers/archetypes"
	"github.com/automoto/voidscrubbers/components"
	"github.com/automoto/voidscrubbers/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWater adds one impassable water tile.
func CreateWater(ecs *ecs.ECS, x, y, size float64) *donburi.Entry {
	water := archetypes.Water.Spawn(ecs)

	obj := resolv.NewObject(x, y, size, size, tags.ResolvSolid, tags.ResolvWater)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = water // Link for O(1) lookup

	components.Object.SetValue(water, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return water
}
