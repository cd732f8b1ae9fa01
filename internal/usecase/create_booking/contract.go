package create_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
)

// BookingRepository интерфейс рабочего набора бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	IncBookingSaved(operation string)
	IncConflict(room string)
}

// IDGenerator интерфейс генерации идентификаторов (для тестирования)
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UUIDGenerator генератор идентификаторов для production
type UUIDGenerator struct{}

// NewID возвращает новый UUID v4
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
