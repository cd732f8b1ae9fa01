package domain

import "github.com/m04kA/SMC-SurgeryBoard/pkg/types"

// Slot represents a candidate start time offered by the booking form picker
type Slot struct {
	StartTime types.TimeString
	Blocked   bool // Start instant falls inside an existing occupied interval
}

// IsSelectable returns true if the slot may be picked
func (s *Slot) IsSelectable() bool {
	return !s.Blocked
}
