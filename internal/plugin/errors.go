package plugin

import (
	"errors"
	"fmt"

	"personal-assistant/internal/model"
)

var (
	ErrEmptyName       = fmt.Errorf("%w: plugin name is empty", model.ErrConfiguration)
	ErrDuplicatePlugin = fmt.Errorf("%w: plugin already registered", model.ErrConfiguration)
	ErrNilPlugin       = fmt.Errorf("%w: plugin is nil", model.ErrConfiguration)
	ErrPanic           = errors.New("plugin panicked")
)

// Error reports a failure of a single plugin operation.
// It matches model.ErrPlugin and unwraps to the cause.
type Error struct {
	Plugin string
	Op     string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("plugin %q %s: %v", e.Plugin, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == model.ErrPlugin
}
