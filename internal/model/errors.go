package model

import "fmt"

// Error kinds shared across the assistant. Every kind wraps ErrAssistant so
// callers can match the base kind with errors.Is.
var (
	ErrAssistant     = fmt.Errorf("assistant error")
	ErrConfiguration = fmt.Errorf("%w: configuration", ErrAssistant)
	ErrPlugin        = fmt.Errorf("%w: plugin", ErrAssistant)
)
