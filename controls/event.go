package controls

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EventKind discriminates the Event union.
type EventKind int

const (
	EventVelocity EventKind = iota
	EventAbsoluteAim
	EventRelativeAim
	EventKeyboardButtonPressed
	EventMenuAccept
	EventMenuReject
	EventMenuDirection
)

func (k EventKind) String() string {
	switch k {
	case EventVelocity:
		return "VelocityEvent"
	case EventAbsoluteAim:
		return "AbsoluteAimEvent"
	case EventRelativeAim:
		return "RelativeAimEvent"
	case EventKeyboardButtonPressed:
		return "KeyboardButtonPressedEvent"
	case EventMenuAccept:
		return "MenuAcceptEvent"
	case EventMenuReject:
		return "MenuRejectEvent"
	case EventMenuDirection:
		return "MenuDirectionEvent"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Direction is a discrete menu navigation direction.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return "unknown"
}

// Event is a controller event. Which payload fields are meaningful depends on
// Kind; the constructors below are the only supported way to build one.
type Event struct {
	Kind      EventKind
	Seat      *PlayerSeat
	Timestamp time.Time

	// Velocity and RelativeAim
	DX, DY float64
	// AbsoluteAim
	X, Y float64
	// KeyboardButtonPressed
	Key       ebiten.Key
	Formatted string
	// MenuDirection
	Direction Direction
}

// now is swapped in tests.
var now = time.Now

func newEvent(kind EventKind, seat *PlayerSeat) Event {
	return Event{Kind: kind, Seat: seat, Timestamp: now()}
}

// NewVelocityEvent normalizes (dx, dy) to unit length. The zero vector stays zero.
func NewVelocityEvent(seat *PlayerSeat, dx, dy float64) Event {
	e := newEvent(EventVelocity, seat)
	if l := math.Hypot(dx, dy); l > 0 {
		dx, dy = dx/l, dy/l
	} else {
		dx, dy = 0, 0
	}
	e.DX, e.DY = dx, dy
	return e
}

func NewAbsoluteAimEvent(seat *PlayerSeat, x, y float64) Event {
	e := newEvent(EventAbsoluteAim, seat)
	e.X, e.Y = x, y
	return e
}

// NewRelativeAimEvent keeps the raw stick deflection.
func NewRelativeAimEvent(seat *PlayerSeat, dx, dy float64) Event {
	e := newEvent(EventRelativeAim, seat)
	e.DX, e.DY = dx, dy
	return e
}

func NewKeyboardButtonPressedEvent(seat *PlayerSeat, key ebiten.Key, formatted string) Event {
	e := newEvent(EventKeyboardButtonPressed, seat)
	e.Key = key
	e.Formatted = formatted
	return e
}

func NewMenuAcceptEvent(seat *PlayerSeat) Event {
	return newEvent(EventMenuAccept, seat)
}

func NewMenuRejectEvent(seat *PlayerSeat) Event {
	return newEvent(EventMenuReject, seat)
}

func NewMenuDirectionEvent(seat *PlayerSeat, dir Direction) Event {
	e := newEvent(EventMenuDirection, seat)
	e.Direction = dir
	return e
}

// IsMenu reports whether the event is one of the menu navigation kinds.
func (e Event) IsMenu() bool {
	switch e.Kind {
	case EventMenuAccept, EventMenuReject, EventMenuDirection:
		return true
	}
	return false
}

// SeatIndex returns the index of the originating seat, or -1.
func (e Event) SeatIndex() int {
	if e.Seat == nil {
		return -1
	}
	return e.Seat.Index
}

func (e Event) String() string {
	p := e.SeatIndex()
	switch e.Kind {
	case EventVelocity, EventRelativeAim:
		return fmt.Sprintf("%s(player=%d, dx=%s, dy=%s)", e.Kind, p, fmtFloat(e.DX), fmtFloat(e.DY))
	case EventAbsoluteAim:
		return fmt.Sprintf("%s(player=%d, x=%s, y=%s)", e.Kind, p, fmtFloat(e.X), fmtFloat(e.Y))
	case EventKeyboardButtonPressed:
		return fmt.Sprintf("%s(player=%d, key=%s)", e.Kind, p, e.Formatted)
	case EventMenuDirection:
		return fmt.Sprintf("%s(player=%d, direction=%s)", e.Kind, p, e.Direction)
	}
	return fmt.Sprintf("%s(player=%d)", e.Kind, p)
}

func fmtFloat(v float64) string {
	return fmt.Sprintf("%.3g", v)
}
