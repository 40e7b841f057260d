// Package audit holds the append-only audit trail. Entries are never
// mutated or deleted through normal operation.
package audit

import (
	"fmt"
	"time"

	"kontor/internal/shared/biztime"
)

// Action names the audited operation.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
	ActionLogin  Action = "LOGIN"
	ActionLogout Action = "LOGOUT"
	ActionExport Action = "EXPORT"
	ActionImport Action = "IMPORT"
)

var validActions = map[Action]bool{
	ActionCreate: true,
	ActionUpdate: true,
	ActionDelete: true,
	ActionLogin:  true,
	ActionLogout: true,
	ActionExport: true,
	ActionImport: true,
}

func (a Action) String() string {
	return string(a)
}

func (a Action) IsValid() bool {
	return validActions[a]
}

func NewAction(s string) (Action, error) {
	a := Action(s)
	if !a.IsValid() {
		return "", fmt.Errorf("invalid audit action: %s", s)
	}
	return a, nil
}

type Entry struct {
	id         uint
	action     Action
	entityType string
	entityID   uint
	userID     uint
	ipAddress  string
	changes    map[string]any
	occurredAt time.Time
}

func NewEntry(action Action, entityType string, entityID, userID uint, ipAddress string, changes map[string]any) (*Entry, error) {
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid action")
	}
	if len(entityType) == 0 {
		return nil, fmt.Errorf("entity type is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Entry{
		action:     action,
		entityType: entityType,
		entityID:   entityID,
		userID:     userID,
		ipAddress:  ipAddress,
		changes:    changes,
		occurredAt: biztime.NowUTC(),
	}, nil
}

func ReconstructEntry(
	id uint,
	action Action,
	entityType string,
	entityID, userID uint,
	ipAddress string,
	changes map[string]any,
	occurredAt time.Time,
) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("entry ID cannot be zero")
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid action")
	}

	return &Entry{
		id:         id,
		action:     action,
		entityType: entityType,
		entityID:   entityID,
		userID:     userID,
		ipAddress:  ipAddress,
		changes:    changes,
		occurredAt: occurredAt,
	}, nil
}

func (e *Entry) ID() uint {
	return e.id
}

func (e *Entry) Action() Action {
	return e.action
}

func (e *Entry) EntityType() string {
	return e.entityType
}

func (e *Entry) EntityID() uint {
	return e.entityID
}

func (e *Entry) UserID() uint {
	return e.userID
}

func (e *Entry) IPAddress() string {
	return e.ipAddress
}

func (e *Entry) Changes() map[string]any {
	if e.changes == nil {
		return nil
	}
	changesCopy := make(map[string]any, len(e.changes))
	for k, v := range e.changes {
		changesCopy[k] = v
	}
	return changesCopy
}

func (e *Entry) OccurredAt() time.Time {
	return e.occurredAt
}

func (e *Entry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("entry ID cannot be zero")
	}
	e.id = id
	return nil
}
