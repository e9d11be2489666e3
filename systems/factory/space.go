package factory

import (
	"github.com/automoto/voidscrubbers/archetypes"
	"github.com/automoto/voidscrubbers/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height float64, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(int(width), int(height), cellSize, cellSize)
	components.Space.Set(space, spaceData)
	return space
}
