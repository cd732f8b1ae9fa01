package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
)

// BookingRepository интерфейс рабочего набора бронирований
type BookingRepository interface {
	GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
