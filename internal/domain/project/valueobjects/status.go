package valueobjects

import "fmt"

type ProjectStatus string

const (
	StatusPlanning  ProjectStatus = "PLANNING"
	StatusActive    ProjectStatus = "ACTIVE"
	StatusOnHold    ProjectStatus = "ON_HOLD"
	StatusCompleted ProjectStatus = "COMPLETED"
	StatusCancelled ProjectStatus = "CANCELLED"
)

var validProjectStatuses = map[ProjectStatus]bool{
	StatusPlanning:  true,
	StatusActive:    true,
	StatusOnHold:    true,
	StatusCompleted: true,
	StatusCancelled: true,
}

// COMPLETED and CANCELLED are terminal; every non-terminal status may
// cancel.
var projectStatusTransitions = map[ProjectStatus][]ProjectStatus{
	StatusPlanning: {
		StatusActive,
		StatusCancelled,
	},
	StatusActive: {
		StatusOnHold,
		StatusCompleted,
		StatusCancelled,
	},
	StatusOnHold: {
		StatusActive,
		StatusCancelled,
	},
	StatusCompleted: {},
	StatusCancelled: {},
}

func (ps ProjectStatus) String() string {
	return string(ps)
}

func (ps ProjectStatus) IsValid() bool {
	return validProjectStatuses[ps]
}

func (ps ProjectStatus) CanTransitionTo(newStatus ProjectStatus) bool {
	allowedTransitions, ok := projectStatusTransitions[ps]
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

func (ps ProjectStatus) IsTerminal() bool {
	return ps == StatusCompleted || ps == StatusCancelled
}

func (ps ProjectStatus) IsActive() bool {
	return ps == StatusActive
}

func NewProjectStatus(s string) (ProjectStatus, error) {
	ps := ProjectStatus(s)
	if !ps.IsValid() {
		return "", fmt.Errorf("invalid project status: %s", s)
	}
	return ps, nil
}
