package puzzle

import "errors"

var (
	// ErrInvalidRows is returned for boards smaller than 2x2.
	ErrInvalidRows = errors.New("puzzle: rows must be at least 2")
	// ErrInvalidFrame is returned when a frame size is not positive.
	ErrInvalidFrame = errors.New("puzzle: frame size must be positive")
	// ErrAlreadyAttached is returned when Attach is called a second time.
	ErrAlreadyAttached = errors.New("puzzle: board already attached to a frame")
	// ErrNotAttached is returned by operations that need board geometry.
	ErrNotAttached = errors.New("puzzle: board not attached to a frame")
	// ErrNoEmptySlot means no slot is empty, which should never happen.
	ErrNoEmptySlot = errors.New("puzzle: no empty slot")
	// ErrInvariant wraps any other broken board invariant.
	ErrInvariant = errors.New("puzzle: board invariant violated")
)
