package domain

import "github.com/m04kA/SMC-SurgeryBoard/pkg/types"

// ProcedureType represents how a procedure was scheduled
type ProcedureType string

const (
	ProcedureScheduled ProcedureType = "Programado"
	ProcedureUrgent    ProcedureType = "Urgencia"
)

// IsValid returns true if the procedure type is one of the known values
func (p ProcedureType) IsValid() bool {
	return p == ProcedureScheduled || p == ProcedureUrgent
}

// Patient carries the patient data shown on the board
type Patient struct {
	FirstName string
	LastName  string
	DNI       string
	Insurance string // Financiador
}

// Booking represents an operating-room booking for a single calendar day
type Booking struct {
	ID               string
	RoomID           RoomID
	Date             string // YYYY-MM-DD, compared by equality
	StartTime        types.TimeString
	DurationMinutes  int
	CleanTimeMinutes int // Turnover time appended after the procedure

	// Opaque payload, carried through unchanged
	Patient            Patient
	Specialty          string
	ProcedureType      ProcedureType
	Surgeon            string
	ProcedureMaterials string
	Equipment          []string
	NeedsRecovery      bool
	Observations       string
}

// IsUrgent returns true if the booking is an urgency
func (b *Booking) IsUrgent() bool {
	return b.ProcedureType == ProcedureUrgent
}

// OccupiedMinutes returns procedure time plus cleaning time
func (b *Booking) OccupiedMinutes() int {
	return b.DurationMinutes + b.CleanTimeMinutes
}

// IsInRoomDay returns true if the booking belongs to the given room and date
func (b *Booking) IsInRoomDay(roomID RoomID, date string) bool {
	return b.RoomID == roomID && b.Date == date
}

// Clone returns a deep copy of the booking
func (b *Booking) Clone() *Booking {
	c := *b
	if b.Equipment != nil {
		c.Equipment = make([]string, len(b.Equipment))
		copy(c.Equipment, b.Equipment)
	}
	return &c
}

// BookingsFilter фильтр для выборки бронирований из рабочего набора
type BookingsFilter struct {
	RoomID *RoomID // Фильтр по операционной (опционально)
	Date   *string // Фильтр по дате YYYY-MM-DD (опционально)
}

// Matches returns true if the booking satisfies every set criterion
func (f BookingsFilter) Matches(b *Booking) bool {
	if f.RoomID != nil && b.RoomID != *f.RoomID {
		return false
	}
	if f.Date != nil && b.Date != *f.Date {
		return false
	}
	return true
}
