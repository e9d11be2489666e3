package systems

import (
	"fmt"
	"os"

	"github.com/automoto/voidscrubbers/controls"
	cfg "github.com/automoto/voidscrubbers/config"
	"github.com/charmbracelet/lipgloss"
)

var (
	traceSeatStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	}
	traceMenuStyle = lipgloss.NewStyle().Bold(true)
	traceTimeStyle = lipgloss.NewStyle().Faint(true)
)

// TraceEvent prints ev to stderr when event tracing is enabled.
func TraceEvent(ev controls.Event) {
	if !cfg.Debug.TraceEvents {
		return
	}
	fmt.Fprintln(os.Stderr, formatTrace(ev))
}

func formatTrace(ev controls.Event) string {
	style := lipgloss.NewStyle()
	if i := ev.SeatIndex(); i >= 0 {
		style = traceSeatStyles[i%len(traceSeatStyles)]
	}
	if ev.IsMenu() {
		style = style.Inherit(traceMenuStyle)
	}
	return traceTimeStyle.Render(ev.Timestamp.Format("15:04:05.000")) + " " + style.Render(ev.String())
}
