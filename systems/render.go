package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/automoto/voidscrubbers/components"
	cfg "github.com/automoto/voidscrubbers/config"
	"github.com/automoto/voidscrubbers/fonts"
	"github.com/automoto/voidscrubbers/tags"
	"github.com/automoto/voidscrubbers/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var frameCount int

// DrawWorld renders the visible ground tiles.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	worldEntry, ok := components.World.First(e.World)
	if !ok {
		return
	}
	world := components.World.Get(worldEntry)

	sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	screen.Fill(cfg.World.WaterColor)

	// Viewport in world coordinates, for culling
	viewMinX, viewMinY := ScreenToWorld(camera, 0, 0, sw, sh)
	viewMaxX, viewMaxY := ScreenToWorld(camera, sw, sh, sw, sh)

	ts := world.Grid.TileSize
	size := float32(ts * camera.Zoom)
	for _, c := range world.Chunks {
		for _, p := range world.Source.ChunkData(c) {
			x, y := world.Grid.TileOrigin(c, p)
			if x+ts < viewMinX || x > viewMaxX || y+ts < viewMinY || y > viewMaxY {
				continue
			}
			tileColor := cfg.World.GrassColor
			if p.Type == tilemap.Water {
				tileColor = cfg.World.WaterColor
			}
			sx, sy := WorldToScreen(camera, x, y, sw, sh)
			vector.DrawFilledRect(screen, float32(sx), float32(sy), size, size, tileColor, false)
			vector.StrokeRect(screen, float32(sx), float32(sy), size, size, 1, cfg.World.GridColor, false)
		}
	}
}

// DrawPlayers renders every robot, lowest on screen last.
func DrawPlayers(e *ecs.ECS, screen *ebiten.Image) {
	frameCount++
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	var entries []*donburi.Entry
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	sortByFeet(entries)

	for _, entry := range entries {
		player := components.Player.Get(entry)
		fx, fy := components.Object.Get(entry).Feet()
		x, y := WorldToScreen(camera, fx, fy, sw, sh)
		drawRobot(screen, player, x, y, cfg.Player.Size*camera.Zoom/2)

		name := player.Seat.Data.DisplayName
		face := fonts.Small.Get()
		text.Draw(screen, name, face, int(x)-len(name)*3, int(y)+16, cfg.White)
	}
}

func sortByFeet(entries []*donburi.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		_, a := components.Object.Get(entries[i]).Feet()
		_, b := components.Object.Get(entries[j]).Feet()
		return a < b
	})
}

// drawRobot draws a 10x16 unit robot standing at (x, y); unit is the screen
// size of one unit.
func drawRobot(screen *ebiten.Image, p *components.PlayerData, x, y, unit float64) {
	body := color.RGBA{R: 200, G: 205, B: 215, A: 255}
	dark := color.RGBA{R: 60, G: 64, B: 72, A: 255}
	u := float32(unit)
	fx, fy := float32(x), float32(y)

	bob := float32(0)
	if p.Moving() {
		bob = float32(math.Sin(float64(frameCount)/4)) * u * 0.5
	}

	// legs, body, head
	vector.DrawFilledRect(screen, fx-3*u, fy-3*u, 2*u, 3*u, dark, false)
	vector.DrawFilledRect(screen, fx+1*u, fy-3*u, 2*u, 3*u, dark, false)
	vector.DrawFilledRect(screen, fx-5*u, fy-9*u+bob, 10*u, 6*u, body, false)
	vector.DrawFilledRect(screen, fx-4*u, fy-15*u+bob, 8*u, 6*u, body, false)
	vector.StrokeRect(screen, fx-5*u, fy-9*u+bob, 10*u, 6*u, 1, p.Color, false)
	vector.StrokeRect(screen, fx-4*u, fy-15*u+bob, 8*u, 6*u, 1, p.Color, false)

	// antenna on the side the robot faces away from
	ax := fx + 2*u
	if p.Facing == cfg.DirectionLeft {
		ax = fx - 3*u
	}
	vector.DrawFilledRect(screen, ax, fy-17*u+bob, u, 2*u, p.Color, false)

	// eyes look where the robot is going
	openness := float32(1)
	interval := cfg.Player.BlinkInterval + p.BlinkJitter
	if (frameCount+p.BlinkOffset)%interval < cfg.Player.BlinkInterval/10 {
		openness = 0.2
	}
	lookX := float32(p.Velocity.X) * u * 0.8
	lookY := float32(p.Velocity.Y) * u * 0.6
	eyeH := 1.5 * u * openness
	eyeY := fy - 12.5*u + bob + lookY - eyeH/2
	vector.DrawFilledRect(screen, fx-2.5*u+lookX, eyeY, u, eyeH, p.Color, false)
	vector.DrawFilledRect(screen, fx+1.5*u+lookX, eyeY, u, eyeH, p.Color, false)
}
