package session

import (
	"errors"
	"fmt"

	"personal-assistant/internal/model"
)

var (
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrSessionNotFound  = errors.New("session not found")
	ErrNoFactory        = fmt.Errorf("%w: session factory is nil", model.ErrConfiguration)
)
