package controls

import (
	"log"
	"sort"
)

type binding struct {
	seat       *PlayerSeat
	controller Controller
	forwarder  ListenerID
}

// PlayerManager owns the seat to controller bindings and republishes every
// seat's events to global listeners.
//
// Dispatch iterates listener snapshots. RemoveSeat and AssignSeat take effect
// immediately even from inside a listener, and no event from a removed seat
// reaches a global listener after RemoveSeat returns.
type PlayerManager struct {
	bindings map[int]*binding
	global   listenerList
	menuMode bool
}

func NewPlayerManager() *PlayerManager {
	p := &PlayerManager{}
	p.Init()
	return p
}

// Init resets the manager to an empty registry. Existing controllers are not
// destroyed; call Reset for that.
func (p *PlayerManager) Init() {
	p.bindings = map[int]*binding{}
	p.global = listenerList{}
	p.menuMode = false
}

// AssignSeat binds c to a new seat at index, replacing and destroying any
// controller already bound there.
func (p *PlayerManager) AssignSeat(index int, data PlayerData, c Controller) *PlayerSeat {
	if old, ok := p.bindings[index]; ok {
		p.RemoveSeat(old.seat)
	}

	seat := &PlayerSeat{Index: index, Data: data}
	b := &binding{seat: seat, controller: c}
	p.bindings[index] = b

	c.Init(seat)
	c.SetMenuMode(p.menuMode)
	b.forwarder = c.Register(func(ev Event) {
		for _, e := range p.global.snapshot() {
			// a listener may have removed the seat
			if !p.live(seat) {
				return
			}
			e.fn(ev)
		}
	})

	log.Printf("[controls] %s bound to %s", seat, c.Describe())
	return seat
}

// RemoveSeat unbinds and destroys the seat's controller. Removing an unknown
// or already removed seat does nothing.
func (p *PlayerManager) RemoveSeat(seat *PlayerSeat) {
	if !p.live(seat) {
		return
	}
	b := p.bindings[seat.Index]
	delete(p.bindings, seat.Index)
	b.controller.Unregister(b.forwarder)
	b.controller.Destroy()
	log.Printf("[controls] %s released", seat)
}

// Reset removes every seat.
func (p *PlayerManager) Reset() {
	for _, s := range p.Seats() {
		p.RemoveSeat(s)
	}
}

func (p *PlayerManager) live(seat *PlayerSeat) bool {
	if seat == nil {
		return false
	}
	b, ok := p.bindings[seat.Index]
	return ok && b.seat == seat
}

// RegisterListener adds fn for one seat, or for every seat when seat is nil.
// An unknown seat is ignored and the zero ListenerID returned.
func (p *PlayerManager) RegisterListener(seat *PlayerSeat, fn Listener) ListenerID {
	if seat == nil {
		return p.global.add(fn)
	}
	if !p.live(seat) {
		return 0
	}
	return p.bindings[seat.Index].controller.Register(fn)
}

func (p *PlayerManager) UnregisterListener(seat *PlayerSeat, id ListenerID) {
	if seat == nil {
		p.global.remove(id)
		return
	}
	if !p.live(seat) {
		return
	}
	p.bindings[seat.Index].controller.Unregister(id)
}

// SetMenuMode switches one seat, or every seat and the default for later
// seats when seat is nil.
func (p *PlayerManager) SetMenuMode(seat *PlayerSeat, enabled bool) {
	if seat == nil {
		p.menuMode = enabled
		for _, b := range p.bindings {
			b.controller.SetMenuMode(enabled)
		}
		return
	}
	if !p.live(seat) {
		return
	}
	p.bindings[seat.Index].controller.SetMenuMode(enabled)
}

// MenuMode is the default applied to newly assigned seats.
func (p *PlayerManager) MenuMode() bool { return p.menuMode }

// Assignments returns a copy of the current bindings.
func (p *PlayerManager) Assignments() map[*PlayerSeat]Controller {
	out := make(map[*PlayerSeat]Controller, len(p.bindings))
	for _, b := range p.bindings {
		out[b.seat] = b.controller
	}
	return out
}

// Seat returns the live seat at index.
func (p *PlayerManager) Seat(index int) (*PlayerSeat, bool) {
	b, ok := p.bindings[index]
	if !ok {
		return nil, false
	}
	return b.seat, true
}

// Seats returns live seats ordered by index.
func (p *PlayerManager) Seats() []*PlayerSeat {
	out := make([]*PlayerSeat, 0, len(p.bindings))
	for _, b := range p.bindings {
		out = append(out, b.seat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

func (p *PlayerManager) Len() int { return len(p.bindings) }
