package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
	"github.com/m04kA/SMC-SurgeryBoard/internal/scheduling"
)

var (
	// ErrRoomNotFound возвращается, когда операционная не входит в конфигурацию
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrOutsideOperatingHours возвращается, когда время начала вне рабочего окна
	ErrOutsideOperatingHours = errors.New("create_booking: start time is outside operating hours")

	// ErrConflict возвращается, когда занятый интервал пересекается с существующими
	ErrConflict = errors.New("create_booking: room is already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ConflictError отказ в принятии бронирования с перечнем всех пересечений
// Сообщение называет первое пересечение: фамилию пациента, начало и окончание с учётом уборки
type ConflictError struct {
	Conflicts []*domain.Booking
}

func (e *ConflictError) Error() string {
	if len(e.Conflicts) == 0 {
		return ErrConflict.Error()
	}

	first := e.Conflicts[0]
	start, end, err := scheduling.ConflictWindow(first)
	if err != nil {
		return fmt.Sprintf("%s by %s", ErrConflict.Error(), first.Patient.LastName)
	}

	return fmt.Sprintf("%s by %s from %s to %s", ErrConflict.Error(), first.Patient.LastName, start, end)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
