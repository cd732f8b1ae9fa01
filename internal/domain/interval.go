package domain

// Interval represents a half-open minute range [Start, End) within a room and day
type Interval struct {
	Start int
	End   int
}

// Overlaps returns true if both intervals share at least one minute
// Touching endpoints are not an overlap
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// Contains returns true if the minute falls inside [Start, End)
func (i Interval) Contains(minute int) bool {
	return minute >= i.Start && minute < i.End
}

// Length returns the interval length in minutes
func (i Interval) Length() int {
	return i.End - i.Start
}
