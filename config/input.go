package config

import "github.com/hajimehoshi/ebiten/v2"

// ControlsConfig holds controller tuning and keyboard bindings
type ControlsConfig struct {
	// Analog stick magnitude below which input is treated as zero (0.0 to 1.0)
	Deadzone float64
	// Minimum change since the last emitted stick vector before re-firing
	Denoise float64
	// Stick deflection that counts as a menu direction press
	MenuStickThreshold float64

	// Held movement keys, combined into a velocity
	MoveUp    ebiten.Key
	MoveDown  ebiten.Key
	MoveLeft  ebiten.Key
	MoveRight ebiten.Key

	MenuAccept ebiten.Key
	MenuReject ebiten.Key
}

// Controls is the global controls configuration
var Controls ControlsConfig

func init() {
	Controls = ControlsConfig{
		Deadzone:           0.2,
		Denoise:            0.05,
		MenuStickThreshold: 0.5,

		MoveUp:    ebiten.KeyW,
		MoveDown:  ebiten.KeyS,
		MoveLeft:  ebiten.KeyA,
		MoveRight: ebiten.KeyD,

		MenuAccept: ebiten.KeyEnter,
		MenuReject: ebiten.KeyEscape,
	}
}
