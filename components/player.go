package components

import (
	"image/color"

	"github.com/automoto/voidscrubbers/controls"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PlayerData is a robot driven by one seat's controller
type PlayerData struct {
	Seat  *controls.PlayerSeat
	Color color.RGBA

	TargetVelocity math.Vec2 // latest VelocityEvent, unit length or zero
	Velocity       math.Vec2 // eased toward TargetVelocity each tick
	Facing         float64   // config.DirectionLeft or DirectionRight
	Aim            math.Vec2 // latest aim event, screen space for mouse, stick deflection for gamepads

	BlinkOffset int // randomises blinking between robots
	BlinkJitter int
}

// Moving reports whether the robot has any velocity left.
func (p *PlayerData) Moving() bool {
	return p.Velocity.X != 0 || p.Velocity.Y != 0
}

var Player = donburi.NewComponentType[PlayerData]()
