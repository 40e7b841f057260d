package ticket

import (
	"fmt"
	"time"

	"kontor/internal/domain/department"
	vo "kontor/internal/domain/ticket/valueobjects"
	"kontor/internal/shared/biztime"
)

// Ticket is assignable directly to a customer or optionally attached to
// a project. When a project is set, the owning customer is resolved
// through it.
type Ticket struct {
	id          uint
	title       string
	description string
	ticketType  vo.TicketType
	status      vo.TicketStatus
	priority    vo.Priority
	projectID   *uint
	customerID  *uint
	assigneeID  *uint
	reporterID  *uint
	departments []department.Department
	tags        []string
	createdAt   time.Time
	updatedAt   time.Time
	resolvedAt  *time.Time
	closedAt    *time.Time
}

func NewTicket(
	title, description string,
	ticketType vo.TicketType,
	priority vo.Priority,
	reporterID *uint,
	departments []department.Department,
	tags []string,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	for _, d := range departments {
		if !d.IsValid() {
			return nil, fmt.Errorf("invalid department: %s", d)
		}
	}

	if departments == nil {
		departments = []department.Department{}
	}
	if tags == nil {
		tags = []string{}
	}

	now := biztime.NowUTC()

	return &Ticket{
		title:       title,
		description: description,
		ticketType:  ticketType,
		status:      vo.StatusOpen,
		priority:    priority,
		reporterID:  reporterID,
		departments: departments,
		tags:        tags,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	title, description string,
	ticketType vo.TicketType,
	status vo.TicketStatus,
	priority vo.Priority,
	projectID, customerID, assigneeID, reporterID *uint,
	departments []department.Department,
	tags []string,
	createdAt, updatedAt time.Time,
	resolvedAt, closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	if departments == nil {
		departments = []department.Department{}
	}
	if tags == nil {
		tags = []string{}
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		ticketType:  ticketType,
		status:      status,
		priority:    priority,
		projectID:   projectID,
		customerID:  customerID,
		assigneeID:  assigneeID,
		reporterID:  reporterID,
		departments: departments,
		tags:        tags,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		resolvedAt:  resolvedAt,
		closedAt:    closedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Type() vo.TicketType {
	return t.ticketType
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) ProjectID() *uint {
	return t.projectID
}

func (t *Ticket) CustomerID() *uint {
	return t.customerID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) ReporterID() *uint {
	return t.reporterID
}

func (t *Ticket) Departments() []department.Department {
	departmentsCopy := make([]department.Department, len(t.departments))
	copy(departmentsCopy, t.departments)
	return departmentsCopy
}

func (t *Ticket) Tags() []string {
	tagsCopy := make([]string, len(t.tags))
	copy(tagsCopy, t.tags)
	return tagsCopy
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// AttachToProject links the ticket to a project and its owning
// customer.
func (t *Ticket) AttachToProject(projectID, customerID uint) error {
	if projectID == 0 {
		return fmt.Errorf("project ID cannot be zero")
	}
	if customerID == 0 {
		return fmt.Errorf("customer ID cannot be zero")
	}

	t.projectID = &projectID
	t.customerID = &customerID
	return nil
}

// AttachToCustomer links a project-less ticket directly to a customer.
func (t *Ticket) AttachToCustomer(customerID uint) error {
	if customerID == 0 {
		return fmt.Errorf("customer ID cannot be zero")
	}

	t.customerID = &customerID
	return nil
}

// UpdateDetails merges the mutable fields of a full edit. Empty values
// leave the current value untouched.
func (t *Ticket) UpdateDetails(title, description string, priority vo.Priority, departments []department.Department, tags []string) error {
	if len(title) > 0 {
		if len(title) > 200 {
			return fmt.Errorf("title exceeds maximum length of 200 characters")
		}
		t.title = title
	}
	if len(description) > 0 {
		t.description = description
	}
	if len(priority) > 0 {
		if !priority.IsValid() {
			return fmt.Errorf("invalid priority: %s", priority)
		}
		t.priority = priority
	}
	if departments != nil {
		for _, d := range departments {
			if !d.IsValid() {
				return fmt.Errorf("invalid department: %s", d)
			}
		}
		t.departments = departments
	}
	if tags != nil {
		t.tags = tags
	}

	t.updatedAt = biztime.NowUTC()
	return nil
}

// ChangeStatus applies a transition from the ticket status table.
// Transitions absent from the table are rejected regardless of who
// asks.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if t.status == newStatus {
		return nil
	}
	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus
	now := biztime.NowUTC()
	t.updatedAt = now

	if newStatus.IsResolved() && t.resolvedAt == nil {
		t.resolvedAt = &now
	}
	if newStatus.IsClosed() && t.closedAt == nil {
		t.closedAt = &now
	}

	return nil
}

// AssignTo is the quick-assign operation: it changes only the assignee.
// A nil assigneeID clears the assignment.
func (t *Ticket) AssignTo(assigneeID *uint) error {
	if assigneeID != nil && *assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	t.assigneeID = assigneeID
	t.updatedAt = biztime.NowUTC()
	return nil
}
