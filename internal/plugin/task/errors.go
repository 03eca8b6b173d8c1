package task

import "errors"

var (
	ErrNotFound         = errors.New("task not found")
	ErrAlreadyCompleted = errors.New("task already completed")
	ErrLimitReached     = errors.New("task limit reached")
	ErrEmptyDescription = errors.New("task description is empty")
)
