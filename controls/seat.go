package controls

import "fmt"

// PlayerData is the persistent identity attached to a seat. UniqueID survives
// seat reassignment and keys stored input preferences.
type PlayerData struct {
	DisplayName string
	UniqueID    string
}

// PlayerSeat is one logical player slot. Seats are compared by pointer.
type PlayerSeat struct {
	Index int
	Data  PlayerData
}

func (s *PlayerSeat) String() string {
	if s == nil {
		return "<nil seat>"
	}
	return fmt.Sprintf("seat %d (%s)", s.Index, s.Data.DisplayName)
}
