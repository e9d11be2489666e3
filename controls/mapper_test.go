package controls

import "testing"

func TestShortGamepadName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Xbox 360 Controller (XInput STANDARD GAMEPAD)", "Xbox 360"},
		{"Wireless Controller", "Wireless"},
		{"8BitDo SN30 Pro (Vendor: 2dc8 Product: 6101)", "8BitDo SN30 Pro"},
		{"Logitech  Dual   Action", "Logitech Dual Action"},
		{"(STANDARD GAMEPAD)", "Gamepad"},
		{"Controller", "Gamepad"},
		{"", "Gamepad"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShortGamepadName(tt.name); got != tt.want {
				t.Errorf("ShortGamepadName(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestGenericMapperButtons(t *testing.T) {
	m := GenericMapper{}
	s := padState(nil, []int{ButtonA, ButtonDPadLeft, ButtonRightTrigger})

	if !m.A(s) || m.B(s) {
		t.Error("Expected only A of the face buttons")
	}
	if !m.DPadLeft(s) || m.DPadRight(s) {
		t.Error("Expected only D-pad left")
	}
	if !m.RightTrigger(s) || m.LeftTrigger(s) {
		t.Error("Expected only the right trigger")
	}
	if m.TypeName() != "Generic" {
		t.Errorf("Expected TypeName Generic, got %q", m.TypeName())
	}
}

func TestGenericMapperSticks(t *testing.T) {
	m := GenericMapper{}
	s := padState(map[int]float64{AxisLeftX: 0.5, AxisLeftY: -0.25, AxisRightX: -1, AxisRightY: 1}, nil)

	if x, y := m.LeftStick(s); x != 0.5 || y != -0.25 {
		t.Errorf("Expected left stick (0.5, -0.25), got (%v, %v)", x, y)
	}
	if x, y := m.RightStick(s); x != -1 || y != 1 {
		t.Errorf("Expected right stick (-1, 1), got (%v, %v)", x, y)
	}
}

func TestGenericMapperButtonName(t *testing.T) {
	m := GenericMapper{}
	if got := m.ButtonName(ButtonA); got != "A" {
		t.Errorf("Expected A, got %q", got)
	}
	if got := m.ButtonName(ButtonHome); got != "Home" {
		t.Errorf("Expected Home, got %q", got)
	}
	for _, i := range []int{-1, standardButtonCount, 40} {
		if got := m.ButtonName(i); got != "?" {
			t.Errorf("ButtonName(%d) = %q, want ?", i, got)
		}
	}
}

func TestGamepadStateOutOfRange(t *testing.T) {
	s := NewGamepadState([]float64{0.5}, []bool{true})

	if s.Axis(3) != 0 || s.Axis(-1) != 0 {
		t.Error("Expected missing axes to read 0")
	}
	if s.Button(5) || s.Button(-1) {
		t.Error("Expected missing buttons to read false")
	}
	if s.AxisCount() != 1 || s.ButtonCount() != 1 {
		t.Errorf("Expected 1 axis and 1 button, got %d and %d", s.AxisCount(), s.ButtonCount())
	}
}

func TestGamepadStateCopies(t *testing.T) {
	axes := []float64{0.5}
	buttons := []bool{true}
	s := NewGamepadState(axes, buttons)

	axes[0] = -1
	buttons[0] = false

	if s.Axis(0) != 0.5 || !s.Button(0) {
		t.Error("Snapshot changed when its source slices did")
	}
}
