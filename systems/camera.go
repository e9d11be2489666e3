package systems

import (
	"math"

	"github.com/automoto/voidscrubbers/components"
	cfg "github.com/automoto/voidscrubbers/config"
	"github.com/automoto/voidscrubbers/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

const tickSeconds = 1.0 / 60

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	var targets []dmath.Vec2
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		x, y := components.Object.Get(entry).Center()
		targets = append(targets, dmath.NewVec2(x, y))
	})

	FollowTargets(camera, targets, float64(cfg.C.Width), float64(cfg.C.Height))
	StepCamera(camera, tickSeconds)
}

// FollowTargets aims the camera at the centroid of targets and picks the zoom
// that fits their bounding box plus padding on screen.
func FollowTargets(camera *components.CameraData, targets []dmath.Vec2, screenW, screenH float64) {
	if len(targets) == 0 {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	var sumX, sumY float64
	for _, t := range targets {
		sumX, sumY = sumX+t.X, sumY+t.Y
		minX, minY = math.Min(minX, t.X), math.Min(minY, t.Y)
		maxX, maxY = math.Max(maxX, t.X), math.Max(maxY, t.Y)
	}
	n := float64(len(targets))
	camera.TargetPosition = dmath.NewVec2(sumX/n, sumY/n)

	boundW := maxX - minX + cfg.Viewport.Padding*2
	boundH := maxY - minY + cfg.Viewport.Padding*2
	zoom := math.Min(screenW/boundW, screenH/boundH)
	camera.TargetZoom = clampZoom(zoom)

	camera.BoundsMin = dmath.NewVec2(minX-cfg.Viewport.Padding, minY-cfg.Viewport.Padding)
	camera.BoundsMax = dmath.NewVec2(maxX+cfg.Viewport.Padding, maxY+cfg.Viewport.Padding)
}

// StepCamera eases position and zoom toward their targets. While the intro
// tween runs it owns the zoom.
func StepCamera(camera *components.CameraData, dt float64) {
	camera.Position.X += (camera.TargetPosition.X - camera.Position.X) * cfg.Viewport.FollowSpeed
	camera.Position.Y += (camera.TargetPosition.Y - camera.Position.Y) * cfg.Viewport.FollowSpeed

	if camera.Intro != nil {
		z, done := camera.Intro.Update(float32(dt))
		camera.Zoom = float64(z)
		if done {
			camera.Intro = nil
		}
		return
	}
	camera.Zoom += (camera.TargetZoom - camera.Zoom) * cfg.Viewport.ZoomSpeed
}

// SetZoom sets the zoom immediately, clamped to the configured range.
func SetZoom(camera *components.CameraData, zoom float64) {
	camera.TargetZoom = clampZoom(zoom)
	camera.Zoom = camera.TargetZoom
	camera.Intro = nil
}

// MoveTo centres the camera on (x, y) immediately.
func MoveTo(camera *components.CameraData, x, y float64) {
	camera.TargetPosition = dmath.NewVec2(x, y)
	camera.Position = camera.TargetPosition
}

func clampZoom(z float64) float64 {
	return math.Max(cfg.Viewport.MinZoom, math.Min(cfg.Viewport.MaxZoom, z))
}

// WorldToScreen converts a world position to screen pixels.
func WorldToScreen(camera *components.CameraData, x, y, screenW, screenH float64) (float64, float64) {
	return (x-camera.Position.X)*camera.Zoom + screenW/2, (y-camera.Position.Y)*camera.Zoom + screenH/2
}

// ScreenToWorld converts screen pixels to a world position.
func ScreenToWorld(camera *components.CameraData, x, y, screenW, screenH float64) (float64, float64) {
	return (x-screenW/2)/camera.Zoom + camera.Position.X, (y-screenH/2)/camera.Zoom + camera.Position.Y
}
