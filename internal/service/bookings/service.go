package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SurgeryBoard/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SurgeryBoard/internal/service/bookings/models"
)

const operationDelete = "delete"

// Service сервис чтения и удаления бронирований
type Service struct {
	bookingRepo BookingRepository
	facility    *domain.Facility
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	facility *domain.Facility,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		facility:    facility,
		metrics:     metrics,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// ListByDate получает бронирования на дату в порядке добавления
// Опционально фильтрует по операционной
func (s *Service) ListByDate(ctx context.Context, req *models.ListByDateRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListByDate: date=%s", req.Date)

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		s.logger.Warn("ListByDate: invalid date=%q", req.Date)
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	filter := domain.BookingsFilter{Date: &req.Date}

	// Фильтр по операционной, если указан
	if req.RoomID != nil {
		roomID := domain.RoomID(*req.RoomID)
		if !s.facility.HasRoom(roomID) {
			s.logger.Warn("ListByDate: room=%s not found", roomID)
			return nil, ErrRoomNotFound
		}
		filter.RoomID = &roomID
	}

	bookings, err := s.bookingRepo.GetByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListByDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByDate: found %d bookings for date=%s", len(bookings), req.Date)
	return models.FromDomainBookings(bookings), nil
}

// Delete удаляет бронирование из рабочего набора
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting booking id=%s", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.metrics.IncBookingSaved(operationDelete)
	s.logger.Info("Delete: successfully deleted booking id=%s", id)
	return nil
}
