package controls

import (
	"regexp"
	"strings"
)

// GamepadStateMapper gives names to the raw indices of a GamepadState.
type GamepadStateMapper interface {
	A(s GamepadState) bool
	B(s GamepadState) bool
	X(s GamepadState) bool
	Y(s GamepadState) bool
	DPadUp(s GamepadState) bool
	DPadDown(s GamepadState) bool
	DPadLeft(s GamepadState) bool
	DPadRight(s GamepadState) bool
	LeftShoulder(s GamepadState) bool
	RightShoulder(s GamepadState) bool
	LeftTrigger(s GamepadState) bool
	RightTrigger(s GamepadState) bool
	LeftStickButton(s GamepadState) bool
	RightStickButton(s GamepadState) bool
	LeftStick(s GamepadState) (x, y float64)
	RightStick(s GamepadState) (x, y float64)
	ButtonName(i int) string
	TypeName() string
}

// Standard layout indices.
const (
	ButtonA = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonLeftTrigger
	ButtonRightTrigger
	ButtonBack
	ButtonStart
	ButtonLeftStick
	ButtonRightStick
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
	ButtonHome

	standardButtonCount
)

const (
	AxisLeftX = iota
	AxisLeftY
	AxisRightX
	AxisRightY

	standardAxisCount
)

var standardButtonNames = [standardButtonCount]string{
	ButtonA:             "A",
	ButtonB:             "B",
	ButtonX:             "X",
	ButtonY:             "Y",
	ButtonLeftShoulder:  "LB",
	ButtonRightShoulder: "RB",
	ButtonLeftTrigger:   "LT",
	ButtonRightTrigger:  "RT",
	ButtonBack:          "Back",
	ButtonStart:         "Start",
	ButtonLeftStick:     "LS",
	ButtonRightStick:    "RS",
	ButtonDPadUp:        "Up",
	ButtonDPadDown:      "Down",
	ButtonDPadLeft:      "Left",
	ButtonDPadRight:     "Right",
	ButtonHome:          "Home",
}

// GenericMapper maps the standard gamepad layout.
type GenericMapper struct{}

func (GenericMapper) A(s GamepadState) bool                { return s.Button(ButtonA) }
func (GenericMapper) B(s GamepadState) bool                { return s.Button(ButtonB) }
func (GenericMapper) X(s GamepadState) bool                { return s.Button(ButtonX) }
func (GenericMapper) Y(s GamepadState) bool                { return s.Button(ButtonY) }
func (GenericMapper) DPadUp(s GamepadState) bool           { return s.Button(ButtonDPadUp) }
func (GenericMapper) DPadDown(s GamepadState) bool         { return s.Button(ButtonDPadDown) }
func (GenericMapper) DPadLeft(s GamepadState) bool         { return s.Button(ButtonDPadLeft) }
func (GenericMapper) DPadRight(s GamepadState) bool        { return s.Button(ButtonDPadRight) }
func (GenericMapper) LeftShoulder(s GamepadState) bool     { return s.Button(ButtonLeftShoulder) }
func (GenericMapper) RightShoulder(s GamepadState) bool    { return s.Button(ButtonRightShoulder) }
func (GenericMapper) LeftTrigger(s GamepadState) bool      { return s.Button(ButtonLeftTrigger) }
func (GenericMapper) RightTrigger(s GamepadState) bool     { return s.Button(ButtonRightTrigger) }
func (GenericMapper) LeftStickButton(s GamepadState) bool  { return s.Button(ButtonLeftStick) }
func (GenericMapper) RightStickButton(s GamepadState) bool { return s.Button(ButtonRightStick) }

func (GenericMapper) LeftStick(s GamepadState) (float64, float64) {
	return s.Axis(AxisLeftX), s.Axis(AxisLeftY)
}

func (GenericMapper) RightStick(s GamepadState) (float64, float64) {
	return s.Axis(AxisRightX), s.Axis(AxisRightY)
}

func (GenericMapper) ButtonName(i int) string {
	if i < 0 || i >= len(standardButtonNames) {
		return "?"
	}
	return standardButtonNames[i]
}

func (GenericMapper) TypeName() string { return "Generic" }

var parenthesised = regexp.MustCompile(`\([^)]*\)`)

// ShortGamepadName trims vendor noise from a device name, e.g.
// "Xbox 360 Controller (XInput STANDARD GAMEPAD)" becomes "Xbox 360".
func ShortGamepadName(name string) string {
	s := parenthesised.ReplaceAllString(name, "")
	s = strings.ReplaceAll(s, "Controller", "")
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return "Gamepad"
	}
	return s
}
