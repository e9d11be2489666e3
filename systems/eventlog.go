package systems

import (
	"image/color"

	"github.com/automoto/voidscrubbers/components"
	cfg "github.com/automoto/voidscrubbers/config"
	"github.com/automoto/voidscrubbers/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// PushEventLog appends a line to the on-screen log, dropping the oldest
// beyond the configured maximum.
func PushEventLog(e *ecs.ECS, line string) {
	entry, ok := components.EventLog.First(e.World)
	if !ok {
		return
	}
	pushLogEntry(components.EventLog.Get(entry), line, cfg.EventLog.MaxEntries)
}

func pushLogEntry(log *components.EventLogData, line string, max int) {
	log.Entries = append(log.Entries, components.EventLogEntry{Text: line})
	if over := len(log.Entries) - max; over > 0 {
		log.Entries = append(log.Entries[:0], log.Entries[over:]...)
	}
}

// UpdateEventLog ages entries and drops expired ones.
func UpdateEventLog(e *ecs.ECS) {
	entry, ok := components.EventLog.First(e.World)
	if !ok {
		return
	}
	ageLogEntries(components.EventLog.Get(entry), cfg.EventLog.Lifetime)
}

func ageLogEntries(log *components.EventLogData, lifetime int) {
	kept := log.Entries[:0]
	for _, en := range log.Entries {
		en.Age++
		if en.Age < lifetime {
			kept = append(kept, en)
		}
	}
	log.Entries = kept
}

// logAlpha fades an entry out over its last FadeFrames.
func logAlpha(age int) float64 {
	left := cfg.EventLog.Lifetime - age
	if left >= cfg.EventLog.FadeFrames {
		return 1
	}
	if left <= 0 {
		return 0
	}
	return float64(left) / float64(cfg.EventLog.FadeFrames)
}

// DrawEventLog renders the log in the bottom-left corner, newest at the bottom.
func DrawEventLog(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowEventLog {
		return
	}
	entry, ok := components.EventLog.First(e.World)
	if !ok {
		return
	}
	log := components.EventLog.Get(entry)
	face := fonts.Small.Get()
	height := float64(screen.Bounds().Dy())

	for i, en := range log.Entries {
		fromBottom := len(log.Entries) - i
		y := height - cfg.EventLog.Margin - float64(fromBottom-1)*cfg.EventLog.LineHeight
		c := cfg.EventLog.TextColor
		c.A = uint8(float64(c.A) * logAlpha(en.Age))
		text.Draw(screen, en.Text, face, int(cfg.EventLog.Margin), int(y), color.NRGBA(c))
	}
}
