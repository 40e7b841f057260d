package comment

import (
	"fmt"
	"time"

	"kontor/internal/shared/biztime"
)

// ParentType identifies the entity a comment is attached to.
type ParentType string

const (
	ParentTask   ParentType = "task"
	ParentTicket ParentType = "ticket"
)

func (pt ParentType) IsValid() bool {
	return pt == ParentTask || pt == ParentTicket
}

func NewParentType(s string) (ParentType, error) {
	pt := ParentType(s)
	if !pt.IsValid() {
		return "", fmt.Errorf("invalid comment parent type: %s", s)
	}
	return pt, nil
}

// Comment content is immutable: the only mutation is a full delete by
// the author or an admin.
type Comment struct {
	id         uint
	parentType ParentType
	parentID   uint
	authorID   uint
	content    string
	createdAt  time.Time
}

func NewComment(parentType ParentType, parentID, authorID uint, content string) (*Comment, error) {
	if !parentType.IsValid() {
		return nil, fmt.Errorf("invalid parent type")
	}
	if parentID == 0 {
		return nil, fmt.Errorf("parent ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if len(content) > 5000 {
		return nil, fmt.Errorf("content exceeds maximum length of 5000 characters")
	}

	return &Comment{
		parentType: parentType,
		parentID:   parentID,
		authorID:   authorID,
		content:    content,
		createdAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructComment(
	id uint,
	parentType ParentType,
	parentID, authorID uint,
	content string,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if !parentType.IsValid() {
		return nil, fmt.Errorf("invalid parent type")
	}
	if parentID == 0 {
		return nil, fmt.Errorf("parent ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Comment{
		id:         id,
		parentType: parentType,
		parentID:   parentID,
		authorID:   authorID,
		content:    content,
		createdAt:  createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) ParentType() ParentType {
	return c.parentType
}

func (c *Comment) ParentID() uint {
	return c.parentID
}

func (c *Comment) AuthorID() uint {
	return c.authorID
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

// IsAuthoredBy reports whether the user wrote the comment.
func (c *Comment) IsAuthoredBy(userID uint) bool {
	return c.authorID == userID
}
