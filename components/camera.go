package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the viewport onto the world. Position is the world point
// drawn at the centre of the screen.
type CameraData struct {
	Position       math.Vec2
	Zoom           float64
	TargetPosition math.Vec2
	TargetZoom     float64

	// Intro eases Zoom in when the world scene starts; nil once finished
	Intro *gween.Tween

	// Debug bounds of the followed targets, world space
	BoundsMin, BoundsMax math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
