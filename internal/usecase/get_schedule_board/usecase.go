package get_schedule_board

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
	"github.com/m04kA/SMC-SurgeryBoard/internal/scheduling"
	"github.com/m04kA/SMC-SurgeryBoard/pkg/types"
)

// UseCase use case для построения доски расписания на дату
type UseCase struct {
	bookingRepo BookingRepository
	facility    *domain.Facility
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	facility *domain.Facility,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		facility:    facility,
		logger:      logger,
	}
}

// Execute раскладывает бронирования даты по колонкам операционных
// Колонки идут в порядке конфигурации, блоки внутри колонки в порядке добавления
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		uc.logger.Warn("GetScheduleBoard: invalid date=%q", req.Date)
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrInvalidInput, req.Date)
	}

	uc.logger.Info("GetScheduleBoard: date=%s", req.Date)

	// 2. Получаем все бронирования даты
	bookings, err := uc.bookingRepo.GetByFilter(ctx, domain.BookingsFilter{Date: &req.Date})
	if err != nil {
		uc.logger.Error("GetScheduleBoard: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	f := uc.facility

	// 3. Колонки операционных
	columns := make([]Column, 0, len(f.Rooms))
	for _, room := range f.Rooms {
		blocks, err := scheduling.LayoutRoomDay(bookings, room.ID, req.Date, f.StartHour, f.PixelsPerHour)
		if err != nil {
			uc.logger.Error("GetScheduleBoard: failed to layout room=%s: %v", room.ID, err)
			return nil, fmt.Errorf("%w: failed to layout room %s: %v", ErrInternal, room.ID, err)
		}

		occupancy := scheduling.RoomOccupancyPercent(
			scheduling.FilterRoomDay(bookings, room.ID, req.Date), f.StartHour, f.EndHour)

		columns = append(columns, Column{
			Room:             room,
			OccupancyPercent: occupancy,
			HighOccupancy:    occupancy > domain.HighOccupancyPercent,
			Blocks:           blocks,
		})
	}

	// 4. Шкала времени
	axis, err := buildTimeAxis(f)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build time axis: %v", ErrInternal, err)
	}

	// 5. Сводка по дате
	summary := Summary{Total: len(bookings)}
	for _, b := range bookings {
		if b.IsUrgent() {
			summary.Urgent++
		}
	}

	uc.logger.Info("GetScheduleBoard: date=%s, total=%d, urgent=%d", req.Date, summary.Total, summary.Urgent)

	return &Response{
		Date:          req.Date,
		StartHour:     f.StartHour,
		EndHour:       f.EndHour,
		PixelsPerHour: f.PixelsPerHour,
		TotalHeight:   f.TotalHeight(),
		TimeAxis:      axis,
		Columns:       columns,
		Summary:       summary,
	}, nil
}

// buildTimeAxis одна отметка на каждый час окна [start, end)
func buildTimeAxis(f *domain.Facility) ([]HourMark, error) {
	marks := make([]HourMark, 0, f.EndHour-f.StartHour)
	for hour := f.StartHour; hour < f.EndHour; hour++ {
		label, err := types.MinutesToTime(hour * types.MinutesPerHour)
		if err != nil {
			return nil, err
		}
		top, err := scheduling.TopOffset(label, f.StartHour, f.PixelsPerHour)
		if err != nil {
			return nil, err
		}
		marks = append(marks, HourMark{Label: label.String(), Top: top})
	}
	return marks, nil
}
