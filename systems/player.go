package systems

import (
	"math"

	"github.com/automoto/voidscrubbers/components"
	cfg "github.com/automoto/voidscrubbers/config"
	"github.com/automoto/voidscrubbers/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayers eases every robot toward its target velocity and moves it
// through the collision space.
func UpdatePlayers(e *ecs.ECS) {
	world, ok := components.World.First(e.World)
	if !ok {
		return
	}
	worldData := components.World.Get(world)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		obj := components.Object.Get(entry)

		easeVelocity(player, 1)
		updateFacing(player)

		dx := player.Velocity.X * cfg.Player.MovementSpeed
		dy := player.Velocity.Y * cfg.Player.MovementSpeed
		moveObject(obj, dx, dy)
		clampToWorld(obj, worldData.Width, worldData.Height)
		obj.Update()
	})
}

// easeVelocity moves Velocity a 1/Floatyness step toward TargetVelocity,
// snapping once the step gets tiny.
func easeVelocity(p *components.PlayerData, delta float64) {
	step := 1 / cfg.Player.Floatyness * delta

	dx := (p.TargetVelocity.X - p.Velocity.X) * step
	if math.Abs(dx) > cfg.Player.SnapThreshold {
		p.Velocity.X += dx
	} else {
		p.Velocity.X = p.TargetVelocity.X
	}

	dy := (p.TargetVelocity.Y - p.Velocity.Y) * step
	if math.Abs(dy) > cfg.Player.SnapThreshold {
		p.Velocity.Y += dy
	} else {
		p.Velocity.Y = p.TargetVelocity.Y
	}
}

func updateFacing(p *components.PlayerData) {
	if p.Velocity.X > cfg.Player.FacingDeadband {
		p.Facing = cfg.DirectionRight
	} else if p.Velocity.X < -cfg.Player.FacingDeadband {
		p.Facing = cfg.DirectionLeft
	}
}

func clampToWorld(obj *components.ObjectData, w, h float64) {
	obj.X = math.Max(0, math.Min(w-obj.W, obj.X))
	obj.Y = math.Max(0, math.Min(h-obj.H, obj.Y))
}
