package update_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
)

// buildReplacement валидирует запрос и собирает новую версию записи с тем же ID
func buildReplacement(req *Request, facility *domain.Facility) (*domain.Booking, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.ID == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	replacement, err := facility.NewBooking(domain.BookingFields{
		RoomID:             req.RoomID,
		Date:               req.Date,
		StartTime:          req.StartTime,
		DurationMinutes:    req.DurationMinutes,
		CleanTimeMinutes:   req.CleanTimeMinutes,
		Patient:            req.Patient,
		Specialty:          req.Specialty,
		ProcedureType:      req.ProcedureType,
		Surgeon:            req.Surgeon,
		ProcedureMaterials: req.ProcedureMaterials,
		Equipment:          req.Equipment,
		NeedsRecovery:      req.NeedsRecovery,
		Observations:       req.Observations,
	})
	if err != nil {
		return nil, mapValidationError(err)
	}

	// ID сохраняется: это замена существующей записи
	replacement.ID = req.ID

	return replacement, nil
}

// mapValidationError переводит ошибки домена в ошибки usecase
func mapValidationError(err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownRoom):
		return fmt.Errorf("%w: %v", ErrRoomNotFound, err)
	case errors.Is(err, domain.ErrOutsideWindow):
		return fmt.Errorf("%w: %v", ErrOutsideOperatingHours, err)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
}
