package txmanager

import (
	"context"
	"sync"
)

// Manager сериализует секции "проверить и записать" над рабочим набором бронирований:
// операции выполняются строго по одной, поэтому проверка пересечений и последующая
// запись не разделяются чужой записью
type Manager struct {
	mu sync.Mutex
}

// NewTransactionManager создает новый менеджер
func NewTransactionManager() *Manager {
	return &Manager{}
}

// DoSerializable выполняет fn под эксклюзивной блокировкой
// Если контекст уже отменён, fn не вызывается
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(ctx)
}
