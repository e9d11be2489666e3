package components

import "github.com/yohamta/donburi"

// EventLogEntry is one line of the on-screen controller log
type EventLogEntry struct {
	Text string
	Age  int // frames since added
}

// EventLogData holds recent controller events, newest last
type EventLogData struct {
	Entries []EventLogEntry
}

var EventLog = donburi.NewComponentType[EventLogData]()
