package valueobjects

import "fmt"

type TaskStatus string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
	StatusCancelled  TaskStatus = "CANCELLED"
)

var validTaskStatuses = map[TaskStatus]bool{
	StatusTodo:       true,
	StatusInProgress: true,
	StatusDone:       true,
	StatusCancelled:  true,
}

// DONE is terminal here; the admin/manager reopen override lives on the
// aggregate, not in the table.
var taskStatusTransitions = map[TaskStatus][]TaskStatus{
	StatusTodo: {
		StatusInProgress,
		StatusCancelled,
	},
	StatusInProgress: {
		StatusDone,
		StatusCancelled,
	},
	StatusDone:      {},
	StatusCancelled: {},
}

func (ts TaskStatus) String() string {
	return string(ts)
}

func (ts TaskStatus) IsValid() bool {
	return validTaskStatuses[ts]
}

func (ts TaskStatus) CanTransitionTo(newStatus TaskStatus) bool {
	allowedTransitions, ok := taskStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (ts TaskStatus) IsDone() bool {
	return ts == StatusDone
}

func (ts TaskStatus) IsTerminal() bool {
	return ts == StatusDone || ts == StatusCancelled
}

func NewTaskStatus(s string) (TaskStatus, error) {
	ts := TaskStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid task status: %s", s)
	}
	return ts, nil
}
