package domain

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-SurgeryBoard/pkg/ptr"
	"github.com/m04kA/SMC-SurgeryBoard/pkg/types"
)

// BookingFields are the editable fields of a booking as submitted by the form.
// Nil durations fall back to the facility defaults, an empty procedure type means Programado.
type BookingFields struct {
	RoomID           RoomID
	Date             string
	StartTime        string
	DurationMinutes  *int
	CleanTimeMinutes *int

	Patient            Patient
	Specialty          string
	ProcedureType      string
	Surgeon            string
	ProcedureMaterials string
	Equipment          []string
	NeedsRecovery      bool
	Observations       string
}

// NewBooking validates the fields against the facility and returns a booking without ID.
// Errors wrap ErrUnknownRoom, ErrOutsideWindow or ErrInvalidBooking.
func (f *Facility) NewBooking(fields BookingFields) (*Booking, error) {
	if !f.HasRoom(fields.RoomID) {
		return nil, fmt.Errorf("%w: roomId=%s", ErrUnknownRoom, fields.RoomID)
	}

	if _, err := time.Parse(DateFormat, fields.Date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrInvalidBooking, fields.Date)
	}

	startTime, err := types.NewTimeStringFromString(fields.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidBooking, err)
	}

	startMinute, err := startTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidBooking, err)
	}

	if !f.Contains(startMinute) {
		return nil, fmt.Errorf("%w: %s not in %02d:00-%02d:00", ErrOutsideWindow, startTime, f.StartHour, f.EndHour)
	}

	duration := ptr.Deref(fields.DurationMinutes, f.DefaultDurationMinutes)
	if duration <= 0 {
		return nil, fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidBooking)
	}

	clean := ptr.Deref(fields.CleanTimeMinutes, f.DefaultCleanTimeMinutes)
	if clean < 0 {
		return nil, fmt.Errorf("%w: cleanTimeMinutes must be non-negative", ErrInvalidBooking)
	}

	procedureType := ProcedureScheduled
	if fields.ProcedureType != "" {
		procedureType = ProcedureType(fields.ProcedureType)
		if !procedureType.IsValid() {
			return nil, fmt.Errorf("%w: unknown procedureType %q", ErrInvalidBooking, fields.ProcedureType)
		}
	}

	if utf8.RuneCountInString(fields.Observations) > MaxObservationsLength {
		return nil, fmt.Errorf("%w: observations longer than %d characters", ErrInvalidBooking, MaxObservationsLength)
	}

	booking := &Booking{
		RoomID:             fields.RoomID,
		Date:               fields.Date,
		StartTime:          startTime,
		DurationMinutes:    duration,
		CleanTimeMinutes:   clean,
		Patient:            fields.Patient,
		Specialty:          fields.Specialty,
		ProcedureType:      procedureType,
		Surgeon:            fields.Surgeon,
		ProcedureMaterials: fields.ProcedureMaterials,
		Equipment:          fields.Equipment,
		NeedsRecovery:      fields.NeedsRecovery,
		Observations:       fields.Observations,
	}

	return booking.Clone(), nil
}
