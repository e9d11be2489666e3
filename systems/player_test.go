package systems

import (
	"math"
	"testing"

	"github.com/automoto/voidscrubbers/components"
	cfg "github.com/automoto/voidscrubbers/config"
	"github.com/automoto/voidscrubbers/controls"
	factory2 "github.com/automoto/voidscrubbers/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestEaseVelocityApproachesTarget(t *testing.T) {
	p := &components.PlayerData{TargetVelocity: dmath.NewVec2(1, 0)}

	easeVelocity(p, 1)
	want := 1 / cfg.Player.Floatyness
	if math.Abs(p.Velocity.X-want) > 1e-9 {
		t.Errorf("Expected first step to %v, got %v", want, p.Velocity.X)
	}

	for i := 0; i < 200; i++ {
		easeVelocity(p, 1)
	}
	if p.Velocity.X != 1 || p.Velocity.Y != 0 {
		t.Errorf("Expected velocity to snap onto the target, got %v", p.Velocity)
	}
}

func TestEaseVelocityStops(t *testing.T) {
	p := &components.PlayerData{Velocity: dmath.NewVec2(0, -1)}

	for i := 0; i < 200; i++ {
		easeVelocity(p, 1)
	}
	if p.Moving() {
		t.Errorf("Expected the robot to come to rest, got %v", p.Velocity)
	}
}

func TestUpdateFacing(t *testing.T) {
	p := &components.PlayerData{Facing: cfg.DirectionRight}

	p.Velocity = dmath.NewVec2(-0.5, 0)
	updateFacing(p)
	if p.Facing != cfg.DirectionLeft {
		t.Error("Expected to face left when moving left")
	}

	// inside the deadband nothing changes
	p.Velocity = dmath.NewVec2(cfg.Player.FacingDeadband/2, 0)
	updateFacing(p)
	if p.Facing != cfg.DirectionLeft {
		t.Error("Expected facing to hold inside the deadband")
	}
}

// newTestWorld builds a small all-grass world with one robot.
func newTestWorld(t *testing.T, seat *controls.PlayerSeat, x, y float64) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	data, err := BuildWorld("", 1)
	if err != nil {
		t.Fatal(err)
	}
	e := ecs.NewECS(donburi.NewWorld())
	factory2.CreateSpace(e, data.Width, data.Height, int(data.Grid.TileSize))
	world := e.World.Entry(e.World.Create(components.World))
	components.World.SetValue(world, data)
	factory2.CreateEventLog(e)
	return e, factory2.CreatePlayer(e, seat, x, y)
}

func TestUpdatePlayersMoves(t *testing.T) {
	e, robot := newTestWorld(t, &controls.PlayerSeat{Index: 0}, 200, 200)
	p := components.Player.Get(robot)
	obj := components.Object.Get(robot)
	startX := obj.X

	p.TargetVelocity = dmath.NewVec2(1, 0)
	for i := 0; i < 10; i++ {
		UpdatePlayers(e)
	}

	if obj.X <= startX {
		t.Errorf("Expected the robot to move right, x went %v -> %v", startX, obj.X)
	}
	if p.Facing != cfg.DirectionRight {
		t.Error("Expected to face right")
	}
}

func TestUpdatePlayersClampsToWorld(t *testing.T) {
	e, robot := newTestWorld(t, &controls.PlayerSeat{Index: 0}, 40, 40)
	p := components.Player.Get(robot)
	obj := components.Object.Get(robot)

	p.TargetVelocity = dmath.NewVec2(-1, -1)
	p.Velocity = p.TargetVelocity
	for i := 0; i < 100; i++ {
		UpdatePlayers(e)
	}

	if obj.X < 0 || obj.Y < 0 {
		t.Errorf("Expected the robot to stay inside the world, at (%v, %v)", obj.X, obj.Y)
	}
}

func TestMoveObjectStopsAtWater(t *testing.T) {
	e, robot := newTestWorld(t, &controls.PlayerSeat{Index: 0}, 100, 100)
	obj := components.Object.Get(robot)

	// a water tile just right of the robot
	wall := obj.X + obj.W + 10
	factory2.CreateWater(e, wall, obj.Y-8, 32)

	moveObject(obj, 50, 0)
	obj.Update()

	if obj.X+obj.W > wall+1e-6 {
		t.Errorf("Expected the robot to stop at the water edge %v, right side at %v", wall, obj.X+obj.W)
	}
}
