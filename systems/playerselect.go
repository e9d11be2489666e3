package systems

import (
	"fmt"
	"log"
	"sort"

	"github.com/automoto/voidscrubbers/components"
	cfg "github.com/automoto/voidscrubbers/config"
	"github.com/automoto/voidscrubbers/controls"
)

// NewPlayerSelectData returns the default roster with no inputs chosen.
func NewPlayerSelectData() components.PlayerSelectData {
	ps := components.PlayerSelectData{
		Inputs:    map[string]controls.SelectedInput{},
		Selecting: components.NotSelecting,
	}
	for _, d := range cfg.PlayerSelect.DefaultPlayers {
		ps.Players = append(ps.Players, controls.PlayerData{DisplayName: d.DisplayName, UniqueID: d.UniqueID})
	}
	return ps
}

// AssignPlayerInput gives in to the player with uniqueID. Any other player
// holding an equal input loses it, and if more than MaxPlayers players then
// hold inputs only the most recently chosen MaxPlayers are kept.
func AssignPlayerInput(ps *components.PlayerSelectData, uniqueID string, in controls.SelectedInput) {
	for id, other := range ps.Inputs {
		if id != uniqueID && other.Equal(in) {
			delete(ps.Inputs, id)
		}
	}
	ps.Inputs[uniqueID] = in

	if len(ps.Inputs) > cfg.PlayerSelect.MaxPlayers {
		ids := make([]string, 0, len(ps.Inputs))
		for id := range ps.Inputs {
			ids = append(ids, id)
		}
		sort.SliceStable(ids, func(i, j int) bool {
			a, b := ps.Inputs[ids[i]].SelectedAt(), ps.Inputs[ids[j]].SelectedAt()
			if a.Equal(b) {
				// the input just chosen wins ties
				return ids[i] == uniqueID
			}
			return a.After(b)
		})
		for _, id := range ids[cfg.PlayerSelect.MaxPlayers:] {
			delete(ps.Inputs, id)
		}
	}
	ps.Version++
}

// CanStartRound reports whether enough players have chosen an input.
func CanStartRound(ps *components.PlayerSelectData) bool {
	return len(ps.Inputs) >= cfg.PlayerSelect.MinPlayers
}

// AddPlayer appends a new default-named player if the roster has room.
func AddPlayer(ps *components.PlayerSelectData) bool {
	if len(ps.Players) >= cfg.PlayerSelect.MaxPlayers {
		return false
	}
	n := len(ps.Players) + 1
	for playerIndex(ps, fmt.Sprintf("player#%d", n)) >= 0 {
		n++
	}
	ps.Players = append(ps.Players, controls.PlayerData{
		DisplayName: fmt.Sprintf("Player %d", n),
		UniqueID:    fmt.Sprintf("player#%d", n),
	})
	ps.Version++
	return true
}

func playerIndex(ps *components.PlayerSelectData, uniqueID string) int {
	for i, p := range ps.Players {
		if p.UniqueID == uniqueID {
			return i
		}
	}
	return -1
}

// InputLabel describes the input chosen by the player with uniqueID.
func InputLabel(ps *components.PlayerSelectData, uniqueID string) string {
	switch in := ps.Inputs[uniqueID].(type) {
	case controls.KeyboardMouseInput:
		return "Keyboard and Mouse"
	case controls.GamepadInput:
		return in.Gamepad.ShortName()
	}
	return "<none>"
}

// BeginSelectingInput waits for the next key press or gamepad button and
// gives that device to player index.
func BeginSelectingInput(ctx *controls.Context, ps *components.PlayerSelectData, index int) {
	StopSelectingInput(ctx, ps)
	if index < 0 || index >= len(ps.Players) {
		return
	}
	ps.Selecting = index
	player := ps.Players[index]

	key := ctx.Window.AddKeyListener(func(ev *controls.KeyEvent) {
		if !ev.Down || ev.Repeat {
			return
		}
		ev.PreventDefault()
		AssignPlayerInput(ps, player.UniqueID, controls.NewKeyboardMouseInput())
		log.Printf("[select] %s chose the keyboard", player.DisplayName)
		StopSelectingInput(ctx, ps)
	})
	activity := ctx.Activity.Register(func(a controls.Activity) {
		if a.Button == controls.NoButton {
			// connects are not a choice
			return
		}
		AssignPlayerInput(ps, player.UniqueID, controls.NewGamepadInput(a.Gamepad))
		log.Printf("[select] %s chose %s", player.DisplayName, a.Gamepad.Name)
		StopSelectingInput(ctx, ps)
	})
	ps.SetListeners(key, activity)
	ps.Version++
}

// StopSelectingInput cancels a pending BeginSelectingInput.
func StopSelectingInput(ctx *controls.Context, ps *components.PlayerSelectData) {
	if key, activity, ok := ps.TakeListeners(); ok {
		ctx.Window.RemoveListener(key)
		ctx.Activity.Unregister(activity)
	}
	if ps.Selecting != components.NotSelecting {
		ps.Selecting = components.NotSelecting
		ps.Version++
	}
}

// StartRound binds a seat for every player with an input, in roster order,
// and returns the seats.
func StartRound(ctx *controls.Context, ps *components.PlayerSelectData) []*controls.PlayerSeat {
	StopSelectingInput(ctx, ps)
	RememberRoster(ps)

	var seats []*controls.PlayerSeat
	for _, p := range ps.Players {
		in, ok := ps.Inputs[p.UniqueID]
		if !ok {
			continue
		}
		seats = append(seats, ctx.Players.AssignSeat(len(seats), p, in.Controller(ctx)))
	}
	return seats
}
