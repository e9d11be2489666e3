package controls

import "github.com/hajimehoshi/ebiten/v2"

// GamepadState is an immutable snapshot of one device's axes and buttons.
type GamepadState struct {
	axes    []float64
	buttons []bool
}

// NewGamepadState copies axes and buttons into a new snapshot.
func NewGamepadState(axes []float64, buttons []bool) GamepadState {
	s := GamepadState{
		axes:    make([]float64, len(axes)),
		buttons: make([]bool, len(buttons)),
	}
	copy(s.axes, axes)
	copy(s.buttons, buttons)
	return s
}

// Axis returns axis i, or 0 when out of range.
func (s GamepadState) Axis(i int) float64 {
	if i < 0 || i >= len(s.axes) {
		return 0
	}
	return s.axes[i]
}

// Button returns button i, or false when out of range.
func (s GamepadState) Button(i int) bool {
	if i < 0 || i >= len(s.buttons) {
		return false
	}
	return s.buttons[i]
}

func (s GamepadState) AxisCount() int   { return len(s.axes) }
func (s GamepadState) ButtonCount() int { return len(s.buttons) }

// GamepadInfo describes a connected device.
type GamepadInfo struct {
	ID   ebiten.GamepadID
	Name string
}

// ShortName is Name without parenthesised parts or the word "Controller".
func (g GamepadInfo) ShortName() string {
	return ShortGamepadName(g.Name)
}

// GamepadSource is the platform polling primitive.
type GamepadSource interface {
	// Gamepads lists connected devices in a stable order.
	Gamepads() []GamepadInfo
	// State reports the device snapshot, or false if it is not connected.
	State(id ebiten.GamepadID) (GamepadState, bool)
}
