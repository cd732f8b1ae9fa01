package scheduling

import "errors"

var (
	// ErrInvalidInput возвращается при неположительной длительности, отрицательной уборке
	// или некорректных параметрах сетки
	ErrInvalidInput = errors.New("scheduling: invalid input")
)
