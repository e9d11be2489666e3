package factory

import (
	"github.com/automoto/voidscrubbers/archetypes"
	"github.com/automoto/voidscrubbers/components"
	cfg "github.com/automoto/voidscrubbers/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera centres the camera on (x, y). The zoom eases from the intro
// zoom down to 1 before following takes over.
func CreateCamera(ecs *ecs.ECS, x, y float64) {
	camera := archetypes.Camera.Spawn(ecs)
	pos := math.NewVec2(x, y)
	components.Camera.Set(camera, &components.CameraData{
		Position:       pos,
		TargetPosition: pos,
		Zoom:           cfg.Viewport.IntroZoom,
		TargetZoom:     1,
		Intro:          gween.New(float32(cfg.Viewport.IntroZoom), 1, cfg.Viewport.IntroTime, ease.OutCubic),
	})
}
