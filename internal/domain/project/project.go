package project

import (
	"fmt"
	"time"

	"kontor/internal/domain/department"
	vo "kontor/internal/domain/project/valueobjects"
	"kontor/internal/shared/biztime"
)

type Project struct {
	id          uint
	name        string
	description string
	customerID  uint
	assigneeID  *uint
	status      vo.ProjectStatus
	departments []department.Department
	startDate   *time.Time
	endDate     *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProject(name, description string, customerID uint, departments []department.Department) (*Project, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("name exceeds maximum length of 200 characters")
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	for _, d := range departments {
		if !d.IsValid() {
			return nil, fmt.Errorf("invalid department: %s", d)
		}
	}

	if departments == nil {
		departments = []department.Department{}
	}

	now := biztime.NowUTC()

	return &Project{
		name:        name,
		description: description,
		customerID:  customerID,
		status:      vo.StatusPlanning,
		departments: departments,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructProject(
	id uint,
	name, description string,
	customerID uint,
	assigneeID *uint,
	status vo.ProjectStatus,
	departments []department.Department,
	startDate, endDate *time.Time,
	createdAt, updatedAt time.Time,
) (*Project, error) {
	if id == 0 {
		return nil, fmt.Errorf("project ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	if departments == nil {
		departments = []department.Department{}
	}

	return &Project{
		id:          id,
		name:        name,
		description: description,
		customerID:  customerID,
		assigneeID:  assigneeID,
		status:      status,
		departments: departments,
		startDate:   startDate,
		endDate:     endDate,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Project) ID() uint {
	return p.id
}

func (p *Project) Name() string {
	return p.name
}

func (p *Project) Description() string {
	return p.description
}

func (p *Project) CustomerID() uint {
	return p.customerID
}

func (p *Project) AssigneeID() *uint {
	return p.assigneeID
}

func (p *Project) Status() vo.ProjectStatus {
	return p.status
}

func (p *Project) Departments() []department.Department {
	departmentsCopy := make([]department.Department, len(p.departments))
	copy(departmentsCopy, p.departments)
	return departmentsCopy
}

func (p *Project) StartDate() *time.Time {
	return p.startDate
}

func (p *Project) EndDate() *time.Time {
	return p.endDate
}

func (p *Project) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Project) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Project) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("project ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("project ID cannot be zero")
	}
	p.id = id
	return nil
}

// UpdateDetails merges the mutable fields of a full edit. Empty strings
// and nil slices leave the current value untouched.
func (p *Project) UpdateDetails(name, description string, departments []department.Department) error {
	if len(name) > 0 {
		if len(name) > 200 {
			return fmt.Errorf("name exceeds maximum length of 200 characters")
		}
		p.name = name
	}
	if len(description) > 0 {
		p.description = description
	}
	if departments != nil {
		for _, d := range departments {
			if !d.IsValid() {
				return fmt.Errorf("invalid department: %s", d)
			}
		}
		p.departments = departments
	}

	p.updatedAt = biztime.NowUTC()
	return nil
}

// ChangeStatus applies a transition from the project status table.
// Transitions absent from the table are rejected regardless of who
// asks.
func (p *Project) ChangeStatus(newStatus vo.ProjectStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if p.status == newStatus {
		return nil
	}
	if !p.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", p.status, newStatus)
	}

	p.status = newStatus
	p.updatedAt = biztime.NowUTC()
	return nil
}

// AssignTo is the quick-assign operation: it changes only the assignee.
// A nil assigneeID clears the assignment.
func (p *Project) AssignTo(assigneeID *uint) error {
	if assigneeID != nil && *assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	p.assigneeID = assigneeID
	p.updatedAt = biztime.NowUTC()
	return nil
}

func (p *Project) SetSchedule(startDate, endDate *time.Time) error {
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return fmt.Errorf("end date cannot be before start date")
	}

	p.startDate = startDate
	p.endDate = endDate
	p.updatedAt = biztime.NowUTC()
	return nil
}
