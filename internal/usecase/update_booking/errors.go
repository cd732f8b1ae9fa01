package update_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
	"github.com/m04kA/SMC-SurgeryBoard/internal/scheduling"
)

var (
	// ErrBookingNotFound возвращается, когда редактируемое бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrRoomNotFound возвращается, когда операционная не входит в конфигурацию
	ErrRoomNotFound = errors.New("update_booking: room not found")

	// ErrOutsideOperatingHours возвращается, когда время начала вне рабочего окна
	ErrOutsideOperatingHours = errors.New("update_booking: start time is outside operating hours")

	// ErrConflict возвращается, когда занятый интервал пересекается с существующими
	ErrConflict = errors.New("update_booking: room is already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
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
