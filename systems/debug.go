package systems

import (
	"image/color"

	"github.com/automoto/voidscrubbers/components"
	cfg "github.com/automoto/voidscrubbers/config"
	"github.com/automoto/voidscrubbers/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines collision bodies and the camera's follow bounds.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Viewport.DebugDraw {
		return
	}

	// Get camera for world-space rendering.
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvWater) {
				c = color.RGBA{0, 0, 255, 255}
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{255, 0, 0, 255}
			}
			x, y := WorldToScreen(camera, obj.X, obj.Y, sw, sh)
			vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W*camera.Zoom), float32(obj.H*camera.Zoom), 1, c, false)
		}
	}

	// Follow bounds (red), followed centre (green), screen centre (blue)
	minX, minY := WorldToScreen(camera, camera.BoundsMin.X, camera.BoundsMin.Y, sw, sh)
	maxX, maxY := WorldToScreen(camera, camera.BoundsMax.X, camera.BoundsMax.Y, sw, sh)
	vector.StrokeRect(screen, float32(minX), float32(minY), float32(maxX-minX), float32(maxY-minY), 1, color.RGBA{255, 0, 0, 255}, false)
	tx, ty := WorldToScreen(camera, camera.TargetPosition.X, camera.TargetPosition.Y, sw, sh)
	vector.StrokeCircle(screen, float32(tx), float32(ty), 5, 1, color.RGBA{0, 255, 0, 255}, false)
	vector.StrokeCircle(screen, float32(sw/2), float32(sh/2), 7, 1, color.RGBA{0, 0, 255, 255}, false)
}
