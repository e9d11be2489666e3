package systems

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/automoto/voidscrubbers/components"
	cfg "github.com/automoto/voidscrubbers/config"
	"github.com/automoto/voidscrubbers/controls"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

const preferencesKey = "preferences"

// SavedPreferences is the data stored on disk between runs
type SavedPreferences struct {
	Fullscreen bool          `json:"fullscreen"`
	Players    []SavedPlayer `json:"players"`
	// Preferred input per PlayerData.UniqueID, as SelectedInput.PreferenceKey
	Inputs map[string]string `json:"inputs"`
}

type SavedPlayer struct {
	DisplayName string `json:"displayName"`
	UniqueID    string `json:"uniqueId"`
}

// itemStore is the subset of *gdata.Manager persistence needs
type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var store itemStore

// InitPersistence initializes the gdata manager for preference storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.C.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

// LoadPreferences loads preferences from disk. It returns nil when nothing
// is stored yet or persistence is unavailable.
func LoadPreferences() (*SavedPreferences, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(preferencesKey)
	if err != nil {
		log.Printf("Warning: Could not load preferences: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved preferences yet, use defaults
		return nil, nil
	}

	var prefs SavedPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		log.Printf("Warning: Could not parse saved preferences: %v", err)
		return nil, err
	}
	return &prefs, nil
}

// SavePreferences saves preferences to disk
func SavePreferences(p *SavedPreferences) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("Warning: Could not serialize preferences: %v", err)
		return err
	}

	if err := store.SaveItem(preferencesKey, data); err != nil {
		log.Printf("Warning: Could not save preferences: %v", err)
		return err
	}
	return nil
}

// ApplyPreferencesGlobal applies window preferences at startup
func ApplyPreferencesGlobal(p *SavedPreferences) {
	if p == nil {
		return
	}
	ebiten.SetFullscreen(p.Fullscreen)
}

// RememberRoster stores the configured players and their chosen inputs.
// Inputs of players without a choice this round are kept from before.
func RememberRoster(ps *components.PlayerSelectData) {
	prefs, _ := LoadPreferences()
	if prefs == nil {
		prefs = &SavedPreferences{}
	}
	if prefs.Inputs == nil {
		prefs.Inputs = map[string]string{}
	}

	prefs.Players = prefs.Players[:0]
	for _, p := range ps.Players {
		prefs.Players = append(prefs.Players, SavedPlayer{DisplayName: p.DisplayName, UniqueID: p.UniqueID})
		if in, ok := ps.Inputs[p.UniqueID]; ok {
			prefs.Inputs[p.UniqueID] = in.PreferenceKey()
		}
	}
	_ = SavePreferences(prefs)
}

// RestoreRoster fills ps from saved preferences. Saved gamepad choices are
// matched by device name against the connected gamepads.
func RestoreRoster(ps *components.PlayerSelectData, prefs *SavedPreferences, gamepads []controls.GamepadInfo) {
	if prefs == nil {
		return
	}
	if len(prefs.Players) > 0 {
		ps.Players = ps.Players[:0]
		for _, p := range prefs.Players {
			if len(ps.Players) >= cfg.PlayerSelect.MaxPlayers {
				break
			}
			ps.Players = append(ps.Players, controls.PlayerData{DisplayName: p.DisplayName, UniqueID: p.UniqueID})
		}
	}

	for _, p := range ps.Players {
		key, ok := prefs.Inputs[p.UniqueID]
		if !ok {
			continue
		}
		if in, ok := inputForPreference(key, ps, gamepads); ok {
			AssignPlayerInput(ps, p.UniqueID, in)
		}
	}
	ps.Version++
}

func inputForPreference(key string, ps *components.PlayerSelectData, gamepads []controls.GamepadInfo) (controls.SelectedInput, bool) {
	if key == (controls.KeyboardMouseInput{}).PreferenceKey() {
		return controls.NewKeyboardMouseInput(), true
	}
	name, ok := strings.CutPrefix(key, "gamepad:")
	if !ok {
		return nil, false
	}
	for _, g := range gamepads {
		if g.Name != name {
			continue
		}
		in := controls.NewGamepadInput(g)
		if !inputTaken(ps, in) {
			return in, true
		}
	}
	return nil, false
}

func inputTaken(ps *components.PlayerSelectData, in controls.SelectedInput) bool {
	for _, other := range ps.Inputs {
		if other.Equal(in) {
			return true
		}
	}
	return false
}
