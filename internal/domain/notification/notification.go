package notification

import (
	"fmt"
	"time"

	"kontor/internal/shared/biztime"
)

type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

var validTypes = map[Type]bool{
	TypeInfo:    true,
	TypeSuccess: true,
	TypeWarning: true,
	TypeError:   true,
}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	return validTypes[t]
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid notification type: %s", s)
	}
	return t, nil
}

// Notification is addressed to exactly one user. The only mutation
// after creation is marking it read.
type Notification struct {
	id        uint
	userID    uint
	notifType Type
	title     string
	message   string
	actionURL string
	read      bool
	createdAt time.Time
	readAt    *time.Time
}

func NewNotification(userID uint, notifType Type, title, message, actionURL string) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !notifType.IsValid() {
		return nil, fmt.Errorf("invalid notification type")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}

	return &Notification{
		userID:    userID,
		notifType: notifType,
		title:     title,
		message:   message,
		actionURL: actionURL,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructNotification(
	id, userID uint,
	notifType Type,
	title, message, actionURL string,
	read bool,
	createdAt time.Time,
	readAt *time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !notifType.IsValid() {
		return nil, fmt.Errorf("invalid notification type")
	}

	return &Notification{
		id:        id,
		userID:    userID,
		notifType: notifType,
		title:     title,
		message:   message,
		actionURL: actionURL,
		read:      read,
		createdAt: createdAt,
		readAt:    readAt,
	}, nil
}

func (n *Notification) ID() uint {
	return n.id
}

func (n *Notification) UserID() uint {
	return n.userID
}

func (n *Notification) Type() Type {
	return n.notifType
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) ActionURL() string {
	return n.actionURL
}

func (n *Notification) IsRead() bool {
	return n.read
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notification) ReadAt() *time.Time {
	return n.readAt
}

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// MarkRead is idempotent.
func (n *Notification) MarkRead() {
	if n.read {
		return
	}
	now := biztime.NowUTC()
	n.read = true
	n.readAt = &now
}
