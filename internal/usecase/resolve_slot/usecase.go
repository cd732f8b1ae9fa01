package resolve_slot

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
	"github.com/m04kA/SMC-SurgeryBoard/internal/scheduling"
	"github.com/m04kA/SMC-SurgeryBoard/pkg/types"
)

// UseCase use case для перевода клика по доске во время начала
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

// Execute округляет клик вниз до шага привязки и сообщает, занят ли момент начала
// Отрицательное смещение прижимается к началу окна
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req, uc.facility); err != nil {
		uc.logger.Warn("ResolveSlot: validation failed: %v", err)
		return nil, err
	}

	f := uc.facility

	// 2. Переводим смещение во время
	startTime, err := scheduling.PointToStartTime(req.Offset, f.StartHour, f.PixelsPerHour, f.SnapMinutes)
	if err != nil {
		if errors.Is(err, types.ErrOutOfRange) {
			return nil, fmt.Errorf("%w: offset=%.1f", ErrOutsideOperatingHours, req.Offset)
		}
		uc.logger.Error("ResolveSlot: failed to resolve offset=%.1f: %v", req.Offset, err)
		return nil, fmt.Errorf("%w: failed to resolve offset: %v", ErrInternal, err)
	}

	minute, err := startTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !f.Contains(minute) {
		uc.logger.Warn("ResolveSlot: offset=%.1f resolves to %s outside window", req.Offset, startTime)
		return nil, fmt.Errorf("%w: %s", ErrOutsideOperatingHours, startTime)
	}

	// 3. Мгновенная проверка занятости
	bookings, err := uc.bookingRepo.GetByFilter(ctx, domain.BookingsFilter{
		RoomID: &req.RoomID,
		Date:   &req.Date,
	})
	if err != nil {
		uc.logger.Error("ResolveSlot: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	blocked, err := scheduling.IsSlotBlocked(startTime, bookings, req.RoomID, req.Date, nil)
	if err != nil {
		uc.logger.Error("ResolveSlot: failed to check slot: %v", err)
		return nil, fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
	}

	uc.logger.Info("ResolveSlot: room=%s, date=%s, offset=%.1f -> %s, blocked=%t",
		req.RoomID, req.Date, req.Offset, startTime, blocked)

	return &Response{
		RoomID:    req.RoomID,
		Date:      req.Date,
		StartTime: startTime,
		Blocked:   blocked,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, facility *domain.Facility) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	if !facility.HasRoom(req.RoomID) {
		return fmt.Errorf("%w: roomId=%s", ErrRoomNotFound, req.RoomID)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrInvalidInput, req.Date)
	}
	if math.IsNaN(req.Offset) || math.IsInf(req.Offset, 0) {
		return fmt.Errorf("%w: offset must be a finite number", ErrInvalidInput)
	}
	return nil
}
