package events

import (
	"strconv"
	"time"
)

// Event type names consumed by the side-effect handlers.
const (
	TypeEntityMutated  = "entity.mutated"
	TypeEntityAssigned = "entity.assigned"
	TypeStatusChanged  = "entity.status_changed"
	TypeTaskDueSoon    = "task.due_soon"
	TypeCommentAdded   = "comment.added"
)

// EntityMutatedEvent is published after every committed create, update
// or delete. The audit handler persists exactly one audit entry per
// event; the action mirrors the operation.
type EntityMutatedEvent struct {
	BaseEvent
	Action     string         `json:"action"` // CREATE, UPDATE, DELETE, LOGIN, LOGOUT, EXPORT, IMPORT
	EntityType string         `json:"entity_type"`
	EntityID   uint           `json:"entity_id"`
	ActorID    uint           `json:"actor_id"`
	ActorIP    string         `json:"actor_ip"`
	Changes    map[string]any `json:"changes,omitempty"`
}

// NewEntityMutated builds the audit event for a committed mutation.
func NewEntityMutated(action, entityType string, entityID, actorID uint, actorIP string, changes map[string]any) EntityMutatedEvent {
	return EntityMutatedEvent{
		BaseEvent: BaseEvent{
			AggregateID: strconv.FormatUint(uint64(entityID), 10),
			EventType:   TypeEntityMutated,
			OccurredAt:  time.Now().UTC(),
		},
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		ActorID:    actorID,
		ActorIP:    actorIP,
		Changes:    changes,
	}
}

// EntityAssignedEvent notifies a staff user that work was assigned to
// them via the quick-assign operation or a full edit.
type EntityAssignedEvent struct {
	BaseEvent
	EntityType string `json:"entity_type"`
	EntityID   uint   `json:"entity_id"`
	Title      string `json:"title"`
	AssigneeID uint   `json:"assignee_id"`
	ActorID    uint   `json:"actor_id"`
}

func NewEntityAssigned(entityType string, entityID uint, title string, assigneeID, actorID uint) EntityAssignedEvent {
	return EntityAssignedEvent{
		BaseEvent: BaseEvent{
			AggregateID: strconv.FormatUint(uint64(entityID), 10),
			EventType:   TypeEntityAssigned,
			OccurredAt:  time.Now().UTC(),
		},
		EntityType: entityType,
		EntityID:   entityID,
		Title:      title,
		AssigneeID: assigneeID,
		ActorID:    actorID,
	}
}

// StatusChangedEvent notifies the reporter and assignee of a status
// transition on a ticket, task or project.
type StatusChangedEvent struct {
	BaseEvent
	EntityType string `json:"entity_type"`
	EntityID   uint   `json:"entity_id"`
	Title      string `json:"title"`
	OldStatus  string `json:"old_status"`
	NewStatus  string `json:"new_status"`
	ActorID    uint   `json:"actor_id"`
	AssigneeID *uint  `json:"assignee_id,omitempty"`
	ReporterID *uint  `json:"reporter_id,omitempty"`
}

func NewStatusChanged(entityType string, entityID uint, title, oldStatus, newStatus string, actorID uint, assigneeID, reporterID *uint) StatusChangedEvent {
	return StatusChangedEvent{
		BaseEvent: BaseEvent{
			AggregateID: strconv.FormatUint(uint64(entityID), 10),
			EventType:   TypeStatusChanged,
			OccurredAt:  time.Now().UTC(),
		},
		EntityType: entityType,
		EntityID:   entityID,
		Title:      title,
		OldStatus:  oldStatus,
		NewStatus:  newStatus,
		ActorID:    actorID,
		AssigneeID: assigneeID,
		ReporterID: reporterID,
	}
}

// TaskDueSoonEvent is emitted by the due-date reminder sweep for tasks
// approaching their due date.
type TaskDueSoonEvent struct {
	BaseEvent
	TaskID     uint      `json:"task_id"`
	Title      string    `json:"title"`
	DueDate    time.Time `json:"due_date"`
	AssigneeID uint      `json:"assignee_id"`
}

func NewTaskDueSoon(taskID uint, title string, dueDate time.Time, assigneeID uint) TaskDueSoonEvent {
	return TaskDueSoonEvent{
		BaseEvent: BaseEvent{
			AggregateID: strconv.FormatUint(uint64(taskID), 10),
			EventType:   TypeTaskDueSoon,
			OccurredAt:  time.Now().UTC(),
		},
		TaskID:     taskID,
		Title:      title,
		DueDate:    dueDate,
		AssigneeID: assigneeID,
	}
}

// CommentAddedEvent notifies the parent's assignee and reporter that a
// comment was added.
type CommentAddedEvent struct {
	BaseEvent
	ParentType string `json:"parent_type"` // task or ticket
	ParentID   uint   `json:"parent_id"`
	CommentID  uint   `json:"comment_id"`
	AuthorID   uint   `json:"author_id"`
	AssigneeID *uint  `json:"assignee_id,omitempty"`
	ReporterID *uint  `json:"reporter_id,omitempty"`
}

func NewCommentAdded(parentType string, parentID, commentID, authorID uint, assigneeID, reporterID *uint) CommentAddedEvent {
	return CommentAddedEvent{
		BaseEvent: BaseEvent{
			AggregateID: strconv.FormatUint(uint64(parentID), 10),
			EventType:   TypeCommentAdded,
			OccurredAt:  time.Now().UTC(),
		},
		ParentType: parentType,
		ParentID:   parentID,
		CommentID:  commentID,
		AuthorID:   authorID,
		AssigneeID: assigneeID,
		ReporterID: reporterID,
	}
}
