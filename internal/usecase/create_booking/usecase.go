package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
	"github.com/m04kA/SMC-SurgeryBoard/internal/scheduling"
)

const operationCreate = "create"

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	facility    *domain.Facility
	metrics     Metrics
	idGenerator IDGenerator
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
		idGenerator: &UUIDGenerator{},
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка пересечений и запись выполняются в одной сериализуемой секции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	draft, err := buildDraft(req, uc.facility)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: room=%s, date=%s, time=%s, duration=%d, clean=%d",
		draft.RoomID, draft.Date, draft.StartTime, draft.DurationMinutes, draft.CleanTimeMinutes)

	var result *domain.Booking

	// 2. Проверка пересечений и сохранение
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем весь рабочий набор
		existing, err := uc.bookingRepo.List(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		// 2.2. Полная проверка интервала
		conflicts, err := scheduling.FindConflicts(draft, existing, draft.RoomID, draft.Date, nil)
		if err != nil {
			if errors.Is(err, scheduling.ErrInvalidInput) {
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			uc.logger.Error("CreateBooking: failed to find conflicts: %v", err)
			return fmt.Errorf("%w: failed to find conflicts: %v", ErrInternal, err)
		}

		if len(conflicts) > 0 {
			uc.metrics.IncConflict(string(draft.RoomID))
			conflictErr := &ConflictError{Conflicts: conflicts}
			uc.logger.Warn("CreateBooking: rejected, %d conflict(s): %v", len(conflicts), conflictErr)
			return conflictErr
		}

		// 2.3. Назначаем ID в момент принятия
		draft.ID = uc.idGenerator.NewID()

		// 2.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, draft)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.IncBookingSaved(operationCreate)
	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return &Response{Booking: result}, nil
}
