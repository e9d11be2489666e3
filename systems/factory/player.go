package factory

import (
	"math/rand"

	"github.com/automoto/voidscrubbers/archetypes"
	"github.com/automoto/voidscrubbers/components"
	cfg "github.com/automoto/voidscrubbers/config"
	"github.com/automoto/voidscrubbers/controls"
	"github.com/automoto/voidscrubbers/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the robot for seat with its feet at (x, y).
func CreatePlayer(ecs *ecs.ECS, seat *controls.PlayerSeat, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := resolv.NewObject(x-w/2, y-h, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	colors := cfg.Player.Colors
	components.Player.SetValue(player, components.PlayerData{
		Seat:        seat,
		Color:       colors[seat.Index%len(colors)],
		Facing:      cfg.DirectionRight,
		BlinkOffset: rand.Intn(cfg.Player.BlinkInterval),
		BlinkJitter: rand.Intn(100),
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
