package domain

import "github.com/m04kA/SMC-SurgeryBoard/pkg/types"

// RoomID identifies a procedure room; compared by equality only
type RoomID string

// Room represents a procedure room of the facility
type Room struct {
	ID   RoomID
	Name string
}

// Facility represents the facility-wide scheduling configuration
type Facility struct {
	StartHour     int // Operating window start, inclusive
	EndHour       int // Operating window end, exclusive
	StepMinutes   int // Candidate start time grid
	SnapMinutes   int // Click-to-time rounding
	PixelsPerHour float64
	Rooms         []Room

	DefaultDurationMinutes  int
	DefaultCleanTimeMinutes int
}

// HasRoom returns true if the room belongs to the facility
func (f *Facility) HasRoom(id RoomID) bool {
	_, ok := f.Room(id)
	return ok
}

// Room returns the room with the given id
func (f *Facility) Room(id RoomID) (Room, bool) {
	for _, r := range f.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}

// WindowStart returns the operating window start in minutes from midnight
func (f *Facility) WindowStart() int {
	return f.StartHour * types.MinutesPerHour
}

// WindowEnd returns the operating window end in minutes from midnight
func (f *Facility) WindowEnd() int {
	return f.EndHour * types.MinutesPerHour
}

// WindowMinutes returns the total available minutes in the operating window
func (f *Facility) WindowMinutes() int {
	return f.WindowEnd() - f.WindowStart()
}

// Contains returns true if the minute falls inside [start, end) of the operating window
func (f *Facility) Contains(minute int) bool {
	return minute >= f.WindowStart() && minute < f.WindowEnd()
}

// TotalHeight returns the board height in pixels for the whole operating window
func (f *Facility) TotalHeight() float64 {
	return float64(f.EndHour-f.StartHour) * f.PixelsPerHour
}
