package booking

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
)

// Repository рабочий набор бронирований текущей сессии
// Данные живут только в памяти процесса. Порядок вставки сохраняется:
// от него зависит порядок возвращаемых конфликтов и блоков доски
// Наружу всегда отдаются копии, чтобы вызывающий код не менял хранимые записи
type Repository struct {
	mu       sync.RWMutex
	bookings []*domain.Booking
	index    map[string]int
}

// NewRepository создает пустой рабочий набор
func NewRepository() *Repository {
	return &Repository{
		bookings: make([]*domain.Booking, 0),
		index:    make(map[string]int),
	}
}

// Create добавляет новое бронирование в конец набора
// ID назначается вызывающей стороной в момент принятия бронирования
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if booking.ID == "" {
		return nil, ErrMissingID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[booking.ID]; ok {
		return nil, fmt.Errorf("%w: Create - id=%s", ErrDuplicateID, booking.ID)
	}

	r.index[booking.ID] = len(r.bookings)
	r.bookings = append(r.bookings, booking.Clone())

	return booking.Clone(), nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, ErrBookingNotFound
	}

	return r.bookings[pos].Clone(), nil
}

// List возвращает весь рабочий набор в порядке вставки
func (r *Repository) List(ctx context.Context) ([]*domain.Booking, error) {
	return r.GetByFilter(ctx, domain.BookingsFilter{})
}

// GetByFilter возвращает бронирования, подходящие под фильтр, в порядке вставки
//
// Примеры использования:
//
// 1. Все бронирования на дату:
//    filter := domain.BookingsFilter{Date: ptr.Ptr("2024-05-01")}
//
// 2. Бронирования операционной на дату:
//    filter := domain.BookingsFilter{RoomID: ptr.Ptr(domain.RoomQ1), Date: ptr.Ptr("2024-05-01")}
func (r *Repository) GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if filter.Matches(b) {
			result = append(result, b.Clone())
		}
	}

	return result, nil
}

// Update полностью заменяет запись с тем же ID, сохраняя её позицию в наборе
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[booking.ID]
	if !ok {
		return nil, ErrBookingNotFound
	}

	r.bookings[pos] = booking.Clone()

	return booking.Clone(), nil
}

// Delete удаляет бронирование из набора
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return ErrBookingNotFound
	}

	r.bookings = append(r.bookings[:pos], r.bookings[pos+1:]...)
	delete(r.index, id)

	// Сдвигаем позиции записей после удалённой
	for i := pos; i < len(r.bookings); i++ {
		r.index[r.bookings[i].ID] = i
	}

	return nil
}

// Count возвращает размер рабочего набора
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bookings)
}
