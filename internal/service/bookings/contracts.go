package bookings

import (
	"context"

	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
)

// BookingRepository интерфейс рабочего набора бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	IncBookingSaved(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
