package systems

import (
	"testing"

	"github.com/automoto/voidscrubbers/controls"
	"github.com/hajimehoshi/ebiten/v2"
)

// memStore keeps preferences in memory.
type memStore struct {
	items map[string][]byte
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	m.items[key] = data
	return nil
}

// useMemStore swaps the preference store for the duration of a test.
func useMemStore(t *testing.T) *memStore {
	t.Helper()
	prev := store
	m := &memStore{items: map[string][]byte{}}
	store = m
	t.Cleanup(func() { store = prev })
	return m
}

// pads is a GamepadSource with fixed devices and pressable buttons.
type pads struct {
	list    []controls.GamepadInfo
	pressed map[ebiten.GamepadID][]bool
}

func newPads(list ...controls.GamepadInfo) *pads {
	p := &pads{list: list, pressed: map[ebiten.GamepadID][]bool{}}
	for _, g := range list {
		p.pressed[g.ID] = make([]bool, 17)
	}
	return p
}

func (p *pads) Gamepads() []controls.GamepadInfo { return p.list }

func (p *pads) State(id ebiten.GamepadID) (controls.GamepadState, bool) {
	b, ok := p.pressed[id]
	if !ok {
		return controls.GamepadState{}, false
	}
	return controls.NewGamepadState(make([]float64, 4), b), true
}

func (p *pads) press(id ebiten.GamepadID, button int) {
	p.pressed[id][button] = true
}
