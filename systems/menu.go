package systems

import (
	"image/color"

	"github.com/automoto/voidscrubbers/archetypes"
	"github.com/automoto/voidscrubbers/components"
	cfg "github.com/automoto/voidscrubbers/config"
	"github.com/automoto/voidscrubbers/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTitle advances the hint pulse.
func UpdateTitle(e *ecs.ECS) {
	title := GetOrCreateTitle(e)
	alpha, _, _ := title.Pulse.Update(float32(tickSeconds))
	title.HintAlpha = alpha
}

// DrawTitle renders the title screen
func DrawTitle(e *ecs.ECS, screen *ebiten.Image) {
	title := GetOrCreateTitle(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw background
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	// Draw title
	titleFont := fonts.Title.Get()
	label := cfg.Menu.Title
	titleWidth := text.BoundString(titleFont, label).Dx()
	text.Draw(screen, label, titleFont, int(width-float64(titleWidth))/2, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	// Draw pulsing start hint
	hintFont := fonts.Bold.Get()
	hint := "Press Enter or any gamepad button"
	hintWidth := text.BoundString(hintFont, hint).Dx()
	c := cfg.Menu.TextColorNormal
	c.A = uint8(255 * title.HintAlpha)
	text.Draw(screen, hint, hintFont, int(width-float64(hintWidth))/2, int(cfg.Menu.HintY), color.NRGBA(c))
}

// GetOrCreateTitle returns the singleton Title component, creating if needed
func GetOrCreateTitle(e *ecs.ECS) *components.TitleData {
	if _, ok := components.Title.First(e.World); !ok {
		pulse := gween.NewSequence(
			gween.New(1, 0.2, cfg.Menu.PulseTime, ease.InOutSine),
			gween.New(0.2, 1, cfg.Menu.PulseTime, ease.InOutSine),
		)
		pulse.SetLoop(-1)

		ent := archetypes.Title.Spawn(e)
		components.Title.SetValue(ent, components.TitleData{
			Pulse:     pulse,
			HintAlpha: 1,
		})
	}

	ent, _ := components.Title.First(e.World)
	return components.Title.Get(ent)
}
