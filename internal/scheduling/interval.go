package scheduling

import (
	"fmt"

	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
	"github.com/m04kA/SMC-SurgeryBoard/pkg/types"
)

// OccupiedInterval возвращает интервал, в течение которого операционная занята бронированием:
// [start, start + duration + clean)
// Время уборки при блокировке зала не отличается от времени процедуры
func OccupiedInterval(b *domain.Booking) (domain.Interval, error) {
	start, err := b.StartTime.Minutes()
	if err != nil {
		return domain.Interval{}, err
	}
	return domain.Interval{
		Start: start,
		End:   start + b.DurationMinutes + b.CleanTimeMinutes,
	}, nil
}

// Overlaps строгая проверка пересечения полуоткрытых интервалов
// Касание концами (back-to-back) пересечением не является
func Overlaps(a, b domain.Interval) bool {
	return a.Overlaps(b)
}

// FormatClock форматирует минуты от начала суток как HH:MM без ограничения сверху
// Используется для вывода времени окончания, которое может совпасть с полуночью (24:00)
func FormatClock(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/types.MinutesPerHour, minutes%types.MinutesPerHour)
}

// roomDayIntervals собирает занятые интервалы бронирований операционной на дату
// Бронирование с id == excludeID пропускается (редактирование на месте)
// Порядок совпадает с порядком входного набора
func roomDayIntervals(
	existing []*domain.Booking,
	roomID domain.RoomID,
	date string,
	excludeID *string,
) ([]*domain.Booking, []domain.Interval, error) {
	bookings := make([]*domain.Booking, 0)
	intervals := make([]domain.Interval, 0)

	for _, b := range existing {
		if b == nil || !b.IsInRoomDay(roomID, date) {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}

		interval, err := OccupiedInterval(b)
		if err != nil {
			return nil, nil, fmt.Errorf("booking id=%s: %w", b.ID, err)
		}

		bookings = append(bookings, b)
		intervals = append(intervals, interval)
	}

	return bookings, intervals, nil
}
