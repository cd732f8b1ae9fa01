package scheduling

import (
	"fmt"

	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
	"github.com/m04kA/SMC-SurgeryBoard/pkg/types"
)

// DefaultStepMinutes шаг сетки кандидатов времени начала
const DefaultStepMinutes = 15

// ListCandidateStartTimes генерирует все отметки времени с шагом stepMinutes
// от startHour (включительно) до endHour (не включительно)
// Результат вычисляется заново при каждом вызове и не кэшируется
// stepMinutes <= 0 заменяется на DefaultStepMinutes
func ListCandidateStartTimes(startHour, endHour, stepMinutes int) ([]types.TimeString, error) {
	if stepMinutes <= 0 {
		stepMinutes = DefaultStepMinutes
	}
	if startHour < 0 || endHour > 24 {
		return nil, fmt.Errorf("%w: operating window %d-%d outside of a day", ErrInvalidInput, startHour, endHour)
	}

	slots := make([]types.TimeString, 0)
	for m := startHour * types.MinutesPerHour; m < endHour*types.MinutesPerHour; m += stepMinutes {
		ts, err := types.MinutesToTime(m)
		if err != nil {
			return nil, err
		}
		slots = append(slots, ts)
	}

	return slots, nil
}

// IsSlotBlocked возвращает true, если момент начала кандидата попадает в [start, end)
// занятого интервала любого бронирования операционной на дату (кроме excludeID)
//
// Это дешёвая подсказка для выпадающего списка: длительность кандидата не учитывается.
// Окончательное решение о приёме бронирования принимает FindConflicts
func IsSlotBlocked(
	candidateStartTime types.TimeString,
	existing []*domain.Booking,
	roomID domain.RoomID,
	date string,
	excludeID *string,
) (bool, error) {
	t, err := candidateStartTime.Minutes()
	if err != nil {
		return false, err
	}

	_, intervals, err := roomDayIntervals(existing, roomID, date, excludeID)
	if err != nil {
		return false, err
	}

	for _, interval := range intervals {
		if interval.Contains(t) {
			return true, nil
		}
	}

	return false, nil
}

// ListSlots возвращает сетку кандидатов операционного окна с отметкой занятости
// Интервалы комнаты/дня вычисляются один раз на весь список
func ListSlots(
	facility *domain.Facility,
	existing []*domain.Booking,
	roomID domain.RoomID,
	date string,
	excludeID *string,
) ([]domain.Slot, error) {
	candidates, err := ListCandidateStartTimes(facility.StartHour, facility.EndHour, facility.StepMinutes)
	if err != nil {
		return nil, err
	}

	_, intervals, err := roomDayIntervals(existing, roomID, date, excludeID)
	if err != nil {
		return nil, err
	}

	slots := make([]domain.Slot, len(candidates))
	for i, candidate := range candidates {
		t, err := candidate.Minutes()
		if err != nil {
			return nil, err
		}

		blocked := false
		for _, interval := range intervals {
			if interval.Contains(t) {
				blocked = true
				break
			}
		}

		slots[i] = domain.Slot{StartTime: candidate, Blocked: blocked}
	}

	return slots, nil
}
