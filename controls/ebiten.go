package controls

import "github.com/hajimehoshi/ebiten/v2"

// EbitenGamepads reads gamepads through ebiten. Devices with a standard
// layout mapping are reported in standard order; others report raw indices.
type EbitenGamepads struct {
	ids []ebiten.GamepadID
}

func (e *EbitenGamepads) Gamepads() []GamepadInfo {
	e.ids = ebiten.AppendGamepadIDs(e.ids[:0])
	out := make([]GamepadInfo, 0, len(e.ids))
	for _, id := range e.ids {
		out = append(out, GamepadInfo{ID: id, Name: ebiten.GamepadName(id)})
	}
	return out
}

func (e *EbitenGamepads) State(id ebiten.GamepadID) (GamepadState, bool) {
	if !e.connected(id) {
		return GamepadState{}, false
	}

	if ebiten.IsStandardGamepadLayoutAvailable(id) {
		axes := make([]float64, standardAxisCount)
		for i := range axes {
			axes[i] = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxis(i))
		}
		buttons := make([]bool, standardButtonCount)
		for i := range buttons {
			buttons[i] = ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButton(i))
		}
		return GamepadState{axes: axes, buttons: buttons}, true
	}

	axes := make([]float64, ebiten.GamepadAxisCount(id))
	for i := range axes {
		axes[i] = ebiten.GamepadAxisValue(id, ebiten.GamepadAxisType(i))
	}
	buttons := make([]bool, ebiten.GamepadButtonCount(id))
	for i := range buttons {
		buttons[i] = ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton(i))
	}
	return GamepadState{axes: axes, buttons: buttons}, true
}

func (e *EbitenGamepads) connected(id ebiten.GamepadID) bool {
	for _, g := range ebiten.AppendGamepadIDs(nil) {
		if g == id {
			return true
		}
	}
	return false
}
