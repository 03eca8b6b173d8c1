package task

import "time"

// Task is a single to-do item owned by one plugin instance.
type Task struct {
	ID          int
	Description string
	Done        bool
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// Config holds the plugin options from plugins.task.
type Config struct {
	MaxTasks int // 0 means unlimited
}
