package scheduling

import (
	"fmt"

	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
)

// FindConflicts возвращает все существующие бронирования операционной roomID на дату date,
// чей занятый интервал пересекается с интервалом кандидата
//
// Пустой результат означает, что кандидата можно принять. Пересечение не является ошибкой:
// ошибка возвращается только при некорректном кандидате (ErrInvalidInput) или
// некорректном времени начала (types.ErrInvalidFormat)
//
// excludeID исключает бронирование с тем же id (при редактировании запись не конфликтует сама с собой)
// Порядок результата совпадает с порядком existing
func FindConflicts(
	candidate *domain.Booking,
	existing []*domain.Booking,
	roomID domain.RoomID,
	date string,
	excludeID *string,
) ([]*domain.Booking, error) {
	if err := validateCandidate(candidate); err != nil {
		return nil, err
	}

	candidateInterval, err := OccupiedInterval(candidate)
	if err != nil {
		return nil, err
	}

	bookings, intervals, err := roomDayIntervals(existing, roomID, date, excludeID)
	if err != nil {
		return nil, err
	}

	conflicts := make([]*domain.Booking, 0)
	for i, interval := range intervals {
		if Overlaps(candidateInterval, interval) {
			conflicts = append(conflicts, bookings[i])
		}
	}

	return conflicts, nil
}

// ConflictWindow возвращает время начала и вычисленное время окончания (с уборкой)
// конфликтующего бронирования для сообщения пользователю
func ConflictWindow(b *domain.Booking) (start string, end string, err error) {
	interval, err := OccupiedInterval(b)
	if err != nil {
		return "", "", err
	}
	return FormatClock(interval.Start), FormatClock(interval.End), nil
}

// validateCandidate проверяет длительность и время уборки до любых вычислений пересечений
func validateCandidate(candidate *domain.Booking) error {
	if candidate == nil {
		return fmt.Errorf("%w: candidate is required", ErrInvalidInput)
	}
	if candidate.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive, got %d", ErrInvalidInput, candidate.DurationMinutes)
	}
	if candidate.CleanTimeMinutes < 0 {
		return fmt.Errorf("%w: cleanTimeMinutes must be non-negative, got %d", ErrInvalidInput, candidate.CleanTimeMinutes)
	}
	return nil
}
