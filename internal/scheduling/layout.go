package scheduling

import (
	"fmt"
	"math"

	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
	"github.com/m04kA/SMC-SurgeryBoard/pkg/types"
)

// DefaultSnapMinutes шаг округления времени при клике по сетке
const DefaultSnapMinutes = 15

// Block положение бронирования на сетке доски
type Block struct {
	Booking *domain.Booking

	Top    float64 // Верх полосы процедуры
	Height float64 // Высота полосы процедуры

	// Полоса уборки сразу после процедуры, только при CleanTimeMinutes > 0
	HasCleaning bool
	CleanTop    float64
	CleanHeight float64
}

// TopOffset переводит время начала в вертикальное смещение от начала операционного окна
func TopOffset(startTime types.TimeString, startHour int, pixelsPerHour float64) (float64, error) {
	minutes, err := startTime.Minutes()
	if err != nil {
		return 0, err
	}
	minutesFromStart := minutes - startHour*types.MinutesPerHour
	return float64(minutesFromStart) / types.MinutesPerHour * pixelsPerHour, nil
}

// HeightFor переводит длительность в минутах в высоту в пикселях
func HeightFor(durationMinutes int, pixelsPerHour float64) float64 {
	return float64(durationMinutes) / types.MinutesPerHour * pixelsPerHour
}

// RoomOccupancyPercent возвращает долю операционного окна, занятую процедурами и уборкой,
// в округлённых процентах. Значение не ограничено сверху: перебор при уборке после
// закрытия окна остаётся заботой отображения
// bookings должны быть уже отфильтрованы по операционной и дате
func RoomOccupancyPercent(bookings []*domain.Booking, startHour, endHour int) int {
	available := (endHour - startHour) * types.MinutesPerHour
	if available <= 0 {
		return 0
	}

	used := 0
	for _, b := range bookings {
		used += b.DurationMinutes + b.CleanTimeMinutes
	}

	return int(math.Round(float64(used) / float64(available) * 100))
}

// PointToStartTime переводит вертикальное смещение клика во время начала,
// округлённое вниз до snapMinutes
// Отрицательное смещение прижимается к началу окна
func PointToStartTime(verticalOffset float64, startHour int, pixelsPerHour float64, snapMinutes int) (types.TimeString, error) {
	if pixelsPerHour <= 0 {
		return "", fmt.Errorf("%w: pixelsPerHour must be positive", ErrInvalidInput)
	}
	if snapMinutes <= 0 {
		snapMinutes = DefaultSnapMinutes
	}
	if verticalOffset < 0 {
		verticalOffset = 0
	}

	minutesFromStart := int(math.Floor(verticalOffset * types.MinutesPerHour / pixelsPerHour))
	snapped := minutesFromStart / snapMinutes * snapMinutes

	return types.MinutesToTime(startHour*types.MinutesPerHour + snapped)
}

// LayoutRoomDay раскладывает бронирования операционной на дату по сетке
// Порядок блоков совпадает с порядком входного набора
func LayoutRoomDay(
	existing []*domain.Booking,
	roomID domain.RoomID,
	date string,
	startHour int,
	pixelsPerHour float64,
) ([]Block, error) {
	blocks := make([]Block, 0)

	for _, b := range existing {
		if b == nil || !b.IsInRoomDay(roomID, date) {
			continue
		}

		top, err := TopOffset(b.StartTime, startHour, pixelsPerHour)
		if err != nil {
			return nil, fmt.Errorf("booking id=%s: %w", b.ID, err)
		}

		block := Block{
			Booking: b,
			Top:     top,
			Height:  HeightFor(b.DurationMinutes, pixelsPerHour),
		}
		if b.CleanTimeMinutes > 0 {
			block.HasCleaning = true
			block.CleanTop = block.Top + block.Height
			block.CleanHeight = HeightFor(b.CleanTimeMinutes, pixelsPerHour)
		}

		blocks = append(blocks, block)
	}

	return blocks, nil
}

// FilterRoomDay возвращает бронирования операционной на дату в исходном порядке
func FilterRoomDay(existing []*domain.Booking, roomID domain.RoomID, date string) []*domain.Booking {
	result := make([]*domain.Booking, 0)
	for _, b := range existing {
		if b != nil && b.IsInRoomDay(roomID, date) {
			result = append(result, b)
		}
	}
	return result
}
