package config

import "image/color"

// PlayerConfig contains robot movement and appearance values
type PlayerConfig struct {
	MovementSpeed   float64 // pixels per tick at full deflection
	Floatyness      float64 // higher = slower to reach target velocity
	SnapThreshold   float64 // velocity delta below which we snap to the target
	FacingDeadband  float64 // |dx| needed to flip facing
	Size            float64 // sprite scale (robot body is 10x16 units)
	CollisionWidth  float64
	CollisionHeight float64
	BlinkInterval   int // frames
	Colors          []color.RGBA
}

// ViewportConfig contains camera follow and zoom values
type ViewportConfig struct {
	Padding     float64 // world pixels kept around the players' bounding box
	MinZoom     float64
	MaxZoom     float64
	FollowSpeed float64 // 0.0-1.0 per tick
	ZoomSpeed   float64 // 0.0-1.0 per tick
	IntroZoom   float64 // zoom the intro tween starts from
	IntroTime   float32 // seconds
	DebugDraw   bool
}

// WorldConfig contains tile world generation values
type WorldConfig struct {
	TileSize    float64 // world pixels per tile
	ChunkTiles  int     // tiles per chunk side
	ChunksX     int     // chunks loaded for the playfield
	ChunksY     int
	WaterChance float64 // 0.0-1.0
	Seed        int64
	MapName     string // "" = random world, otherwise an embedded TMX map
	GrassColor  color.RGBA
	WaterColor  color.RGBA
	GridColor   color.RGBA
}

// PlayerSelectConfig contains player select screen values
type PlayerSelectConfig struct {
	MaxPlayers     int
	MinPlayers     int
	DefaultPlayers []PlayerDefaults
}

// PlayerDefaults names a player offered on the select screen
type PlayerDefaults struct {
	DisplayName string
	UniqueID    string
}

// MenuConfig contains title screen configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	HintY             float64
	PulseTime         float32 // seconds per hint fade
}

// EventLogConfig contains on-screen controller event log values
type EventLogConfig struct {
	MaxEntries int
	Lifetime   int // frames an entry stays visible
	FadeFrames int // frames of fade at the end of Lifetime
	LineHeight float64
	Margin     float64
	TextColor  color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width   int
	Height  int
	Title   string
	AppName string // persistence namespace
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Viewport ViewportConfig
var World WorldConfig
var PlayerSelect PlayerSelectConfig
var Menu MenuConfig
var EventLog EventLogConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool // Skip title and player select, keyboard takes seat 0
	TraceEvents  bool // Print every controller event to the console
	ShowEventLog bool
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 230, G: 60, B: 60, A: 255}
	Blue         = color.RGBA{R: 60, G: 120, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 220, B: 60, A: 255}
	Magenta      = color.RGBA{R: 220, G: 80, B: 220, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for robot facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:   1280,
		Height:  720,
		Title:   "Void Scrubbers",
		AppName: "voidscrubbers",
	}

	Player = PlayerConfig{
		MovementSpeed:   5,
		Floatyness:      5,
		SnapThreshold:   0.01,
		FacingDeadband:  0.1,
		Size:            6,
		CollisionWidth:  36,
		CollisionHeight: 24, // feet only, so robots overlap water edges a little
		BlinkInterval:   200,
		Colors:          []color.RGBA{Red, Blue, Yellow, Magenta},
	}

	Viewport = ViewportConfig{
		Padding:     100,
		MinZoom:     0.5,
		MaxZoom:     2,
		FollowSpeed: 0.1,
		ZoomSpeed:   0.05,
		IntroZoom:   2,
		IntroTime:   1.5,
	}

	World = WorldConfig{
		TileSize:    32,
		ChunkTiles:  16,
		ChunksX:     4,
		ChunksY:     3,
		WaterChance: 0.2,
		GrassColor:  color.RGBA{R: 70, G: 140, B: 70, A: 255},
		WaterColor:  color.RGBA{R: 40, G: 90, B: 180, A: 255},
		GridColor:   color.RGBA{R: 0, G: 0, B: 0, A: 40},
	}

	PlayerSelect = PlayerSelectConfig{
		MaxPlayers: 4,
		MinPlayers: 1,
		DefaultPlayers: []PlayerDefaults{
			{DisplayName: "Player 1", UniqueID: "player#1"},
			{DisplayName: "Player 2", UniqueID: "player#2"},
		},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		Title:             "VOID SCRUBBERS",
		TitleY:            240,
		HintY:             420,
		PulseTime:         1.2,
	}

	EventLog = EventLogConfig{
		MaxEntries: 12,
		Lifetime:   300, // 5 seconds at 60fps
		FadeFrames: 60,
		LineHeight: 16,
		Margin:     10,
		TextColor:  White,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:     false,
		TraceEvents:  false,
		ShowEventLog: true,
	}
}
