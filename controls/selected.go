package controls

import (
	"fmt"
	"time"
)

// SelectedInput is a device choice made on the player select screen, before
// any controller exists for it.
type SelectedInput interface {
	SelectedAt() time.Time
	Equal(other SelectedInput) bool
	// Controller builds an uninitialised controller for the choice.
	Controller(ctx *Context) Controller
	Describe() string
	// PreferenceKey identifies the device kind in saved preferences.
	PreferenceKey() string
}

type KeyboardMouseInput struct {
	At time.Time
}

func NewKeyboardMouseInput() KeyboardMouseInput {
	return KeyboardMouseInput{At: now()}
}

func (k KeyboardMouseInput) SelectedAt() time.Time { return k.At }

// Equal is true for any other keyboard choice: there is only one keyboard.
func (k KeyboardMouseInput) Equal(other SelectedInput) bool {
	_, ok := other.(KeyboardMouseInput)
	return ok
}

func (k KeyboardMouseInput) Controller(ctx *Context) Controller {
	return NewKeyboardMouseController(ctx.Window)
}

func (k KeyboardMouseInput) Describe() string { return "Keyboard" }

func (k KeyboardMouseInput) PreferenceKey() string { return "keyboard" }

type GamepadInput struct {
	Gamepad GamepadInfo
	At      time.Time
}

func NewGamepadInput(g GamepadInfo) GamepadInput {
	return GamepadInput{Gamepad: g, At: now()}
}

func (g GamepadInput) SelectedAt() time.Time { return g.At }

// Equal is true for a choice of the same device.
func (g GamepadInput) Equal(other SelectedInput) bool {
	o, ok := other.(GamepadInput)
	return ok && o.Gamepad.ID == g.Gamepad.ID
}

func (g GamepadInput) Controller(ctx *Context) Controller {
	return NewGamepadController(g.Gamepad.ID, ctx.Gamepads, ctx.Loop)
}

func (g GamepadInput) Describe() string {
	return fmt.Sprintf("%s (%d)", g.Gamepad.ShortName(), g.Gamepad.ID)
}

func (g GamepadInput) PreferenceKey() string {
	return "gamepad:" + g.Gamepad.Name
}
