package task

import (
	"strings"
	"sync"
	"time"
)

// store is the in-memory task collection of one plugin instance.
// IDs start at 1 and are never reused.
type store struct {
	mu     sync.Mutex
	tasks  []Task
	nextID int
	limit  int
	now    func() time.Time
}

func newStore(limit int) *store {
	return &store{
		nextID: 1,
		limit:  limit,
		now:    time.Now,
	}
}

func (s *store) add(description string) (Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Task{}, ErrEmptyDescription
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.limit > 0 && len(s.tasks) >= s.limit {
		return Task{}, ErrLimitReached
	}

	t := Task{
		ID:          s.nextID,
		Description: description,
		CreatedAt:   s.now(),
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t, nil
}

func (s *store) list() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *store) complete(id int) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Task{}, ErrNotFound
	}
	if s.tasks[i].Done {
		return s.tasks[i], ErrAlreadyCompleted
	}

	now := s.now()
	s.tasks[i].Done = true
	s.tasks[i].CompletedAt = &now
	return s.tasks[i], nil
}

func (s *store) remove(id int) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Task{}, ErrNotFound
	}

	t := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return t, nil
}

func (s *store) indexOf(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
