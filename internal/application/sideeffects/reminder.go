package sideeffects

import (
	"context"
	"sync"
	"time"

	"kontor/internal/domain/shared/events"
	"kontor/internal/domain/task"
	"kontor/internal/shared/logger"
)

// ReminderSweep periodically scans for open tasks whose due date falls
// inside the look-ahead window and emits a task.due_soon event per
// assigned task. Each task is announced once per due date; editing the
// due date re-arms the reminder.
type ReminderSweep struct {
	taskRepo  task.Repository
	publisher events.EventPublisher
	logger    logger.Interface
	window    time.Duration
	now       func() time.Time

	mu        sync.Mutex
	announced map[uint]time.Time
}

func NewReminderSweep(taskRepo task.Repository, publisher events.EventPublisher, logger logger.Interface, window time.Duration) *ReminderSweep {
	if window <= 0 {
		window = 24 * time.Hour
	}
	return &ReminderSweep{
		taskRepo:  taskRepo,
		publisher: publisher,
		logger:    logger.Named("reminder"),
		window:    window,
		now:       time.Now,
		announced: make(map[uint]time.Time),
	}
}

// Run executes a single sweep and returns the number of reminders
// emitted.
func (s *ReminderSweep) Run(ctx context.Context) (int, error) {
	from := s.now().UTC()
	to := from.Add(s.window)

	tasks, err := s.taskRepo.ListDueBetween(ctx, from, to)
	if err != nil {
		s.logger.Errorw("due-date sweep failed", "error", err)
		return 0, err
	}

	emitted := 0
	for _, t := range tasks {
		if t.AssigneeID() == nil || t.DueDate() == nil {
			continue
		}
		if !s.arm(t.ID(), *t.DueDate()) {
			continue
		}
		event := events.NewTaskDueSoon(t.ID(), t.Title(), *t.DueDate(), *t.AssigneeID())
		if err := s.publisher.Publish(event); err != nil {
			s.logger.Errorw("failed to publish due-soon event", "task_id", t.ID(), "error", err)
			s.disarm(t.ID())
			continue
		}
		emitted++
	}

	if emitted > 0 {
		s.logger.Infow("due-date sweep finished", "reminders", emitted, "window", s.window.String())
	}
	return emitted, nil
}

// Start runs the sweep on a fixed interval until the context is
// cancelled. Callers launch it on its own goroutine.
func (s *ReminderSweep) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if _, err := s.Run(ctx); err != nil {
		s.logger.Warnw("initial due-date sweep failed", "error", err)
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Run(ctx); err != nil {
				s.logger.Warnw("due-date sweep failed", "error", err)
			}
		}
	}
}

// arm records the reminder and reports whether it is new for this
// task/due-date pair.
func (s *ReminderSweep) arm(taskID uint, dueDate time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.announced[taskID]; ok && prev.Equal(dueDate) {
		return false
	}
	s.announced[taskID] = dueDate
	return true
}

func (s *ReminderSweep) disarm(taskID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.announced, taskID)
}
