package archetypes

import (
	"github.com/automoto/voidscrubbers/components"
	cfg "github.com/automoto/voidscrubbers/config"
	"github.com/automoto/voidscrubbers/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
	)
	Water = newArchetype(
		tags.Water,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	World = newArchetype(
		components.World,
	)
	Camera = newArchetype(
		components.Camera,
	)
	EventLog = newArchetype(
		components.EventLog,
	)
	Title = newArchetype(
		components.Title,
	)
	PlayerSelect = newArchetype(
		components.PlayerSelect,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
