package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
	"github.com/m04kA/SMC-SurgeryBoard/internal/scheduling"
	"github.com/m04kA/SMC-SurgeryBoard/pkg/ptr"
)

// UseCase use case для получения слотов выпадающего списка времени начала
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

// Execute возвращает все кандидаты времени начала операционного окна
// Занятость определяется мгновенной проверкой момента начала, длительность не учитывается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req, uc.facility); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: room=%s, date=%s, excludeId=%s",
		req.RoomID, req.Date, ptr.Deref(req.ExcludeID, "-"))

	// 2. Получаем бронирования операционной на дату
	bookings, err := uc.bookingRepo.GetByFilter(ctx, domain.BookingsFilter{
		RoomID: &req.RoomID,
		Date:   &req.Date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Строим сетку кандидатов с отметкой занятости
	slots, err := scheduling.ListSlots(uc.facility, bookings, req.RoomID, req.Date, req.ExcludeID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	blocked := 0
	for _, s := range slots {
		if s.Blocked {
			blocked++
		}
	}
	uc.logger.Info("GetAvailableSlots: %d slots, %d blocked", len(slots), blocked)

	return &Response{
		RoomID: req.RoomID,
		Date:   req.Date,
		Slots:  slots,
	}, nil
}
