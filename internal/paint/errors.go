package paint

import "errors"

// Errors returned by the paint core. Every operation that returns one of
// these leaves grid and tool state exactly as it was.
var (
	ErrInvalidColorFormat = errors.New("paint: invalid color format")
	ErrInvalidSize        = errors.New("paint: invalid grid size")
	ErrOutOfBounds        = errors.New("paint: coordinate out of bounds")
	ErrNotFound           = errors.New("paint: cell not found")
)
