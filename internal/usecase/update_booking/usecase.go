package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SurgeryBoard/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SurgeryBoard/internal/scheduling"
)

const operationUpdate = "update"

// UseCase use case для редактирования бронирования
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	facility    *domain.Facility
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	facility *domain.Facility,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		facility:    facility,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет полную замену бронирования
// Сама запись исключается из проверки пересечений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	replacement, err := buildReplacement(req, uc.facility)
	if err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("UpdateBooking: id=%s, room=%s, date=%s, time=%s, duration=%d, clean=%d",
		replacement.ID, replacement.RoomID, replacement.Date, replacement.StartTime,
		replacement.DurationMinutes, replacement.CleanTimeMinutes)

	var result *domain.Booking

	// 2. Проверка пересечений и замена
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Запись должна существовать
		if _, err := uc.bookingRepo.GetByID(txCtx, replacement.ID); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%s not found", replacement.ID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%s: %v", replacement.ID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Получаем весь рабочий набор
		existing, err := uc.bookingRepo.List(txCtx)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		// 2.3. Полная проверка интервала без собственной записи
		conflicts, err := scheduling.FindConflicts(replacement, existing, replacement.RoomID, replacement.Date, &replacement.ID)
		if err != nil {
			if errors.Is(err, scheduling.ErrInvalidInput) {
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			uc.logger.Error("UpdateBooking: failed to find conflicts: %v", err)
			return fmt.Errorf("%w: failed to find conflicts: %v", ErrInternal, err)
		}

		if len(conflicts) > 0 {
			uc.metrics.IncConflict(string(replacement.RoomID))
			conflictErr := &ConflictError{Conflicts: conflicts}
			uc.logger.Warn("UpdateBooking: rejected, %d conflict(s): %v", len(conflicts), conflictErr)
			return conflictErr
		}

		// 2.4. Заменяем запись целиком
		updated, err := uc.bookingRepo.Update(txCtx, replacement)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%s: %v", replacement.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.IncBookingSaved(operationUpdate)
	uc.logger.Info("UpdateBooking: successfully updated booking id=%s", result.ID)

	return &Response{Booking: result}, nil
}
