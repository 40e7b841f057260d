package sideeffects

import (
	"context"
	"fmt"

	"kontor/internal/domain/notification"
	"kontor/internal/domain/shared/events"
	"kontor/internal/domain/user"
	"kontor/internal/shared/logger"
)

// Mailer sends a templated notification email. Implementations load
// subject/body templates by name; delivery failures are logged by the
// handler and never retried.
type Mailer interface {
	Send(to, template string, data map[string]any) error
}

const (
	mailTemplateAssignment   = "assignment"
	mailTemplateStatusChange = "status_change"
	mailTemplateCommentAdded = "comment_added"
	mailTemplateDueSoon      = "due_soon"
)

// NotificationHandler fans events out into per-user notifications and
// optional email. A nil mailer disables email entirely.
type NotificationHandler struct {
	notificationRepo notification.Repository
	staffRepo        user.StaffRepository
	consumerRepo     user.ConsumerRepository
	mailer           Mailer
	logger           logger.Interface
}

func NewNotificationHandler(
	notificationRepo notification.Repository,
	staffRepo user.StaffRepository,
	consumerRepo user.ConsumerRepository,
	mailer Mailer,
	logger logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		notificationRepo: notificationRepo,
		staffRepo:        staffRepo,
		consumerRepo:     consumerRepo,
		mailer:           mailer,
		logger:           logger.Named("notifications"),
	}
}

func (h *NotificationHandler) CanHandle(eventType string) bool {
	switch eventType {
	case events.TypeEntityAssigned, events.TypeStatusChanged, events.TypeCommentAdded, events.TypeTaskDueSoon:
		return true
	}
	return false
}

func (h *NotificationHandler) Handle(event events.DomainEvent) error {
	switch e := event.(type) {
	case events.EntityAssignedEvent:
		return h.handleAssigned(e)
	case events.StatusChangedEvent:
		return h.handleStatusChanged(e)
	case events.CommentAddedEvent:
		return h.handleCommentAdded(e)
	case events.TaskDueSoonEvent:
		return h.handleDueSoon(e)
	}
	return nil
}

func (h *NotificationHandler) handleAssigned(e events.EntityAssignedEvent) error {
	if e.AssigneeID == 0 || e.AssigneeID == e.ActorID {
		return nil
	}
	message := fmt.Sprintf("You were assigned '%s'", e.Title)
	if err := h.notify(e.AssigneeID, notification.TypeInfo, "New assignment", message, entityPath(e.EntityType, e.EntityID)); err != nil {
		return err
	}
	h.email(e.AssigneeID, mailTemplateAssignment, map[string]any{
		"entity_type": e.EntityType,
		"title":       e.Title,
		"url":         entityPath(e.EntityType, e.EntityID),
	})
	return nil
}

func (h *NotificationHandler) handleStatusChanged(e events.StatusChangedEvent) error {
	message := fmt.Sprintf("'%s' moved from %s to %s", e.Title, e.OldStatus, e.NewStatus)
	for _, userID := range recipients(e.ActorID, e.AssigneeID, e.ReporterID) {
		if err := h.notify(userID, notification.TypeInfo, "Status changed", message, entityPath(e.EntityType, e.EntityID)); err != nil {
			return err
		}
		h.email(userID, mailTemplateStatusChange, map[string]any{
			"entity_type": e.EntityType,
			"title":       e.Title,
			"old_status":  e.OldStatus,
			"new_status":  e.NewStatus,
			"url":         entityPath(e.EntityType, e.EntityID),
		})
	}
	return nil
}

func (h *NotificationHandler) handleCommentAdded(e events.CommentAddedEvent) error {
	message := fmt.Sprintf("A new comment was added on %s #%d", e.ParentType, e.ParentID)
	for _, userID := range recipients(e.AuthorID, e.AssigneeID, e.ReporterID) {
		if err := h.notify(userID, notification.TypeInfo, "New comment", message, entityPath(e.ParentType, e.ParentID)); err != nil {
			return err
		}
		h.email(userID, mailTemplateCommentAdded, map[string]any{
			"parent_type": e.ParentType,
			"url":         entityPath(e.ParentType, e.ParentID),
		})
	}
	return nil
}

func (h *NotificationHandler) handleDueSoon(e events.TaskDueSoonEvent) error {
	if e.AssigneeID == 0 {
		return nil
	}
	message := fmt.Sprintf("'%s' is due on %s", e.Title, e.DueDate.Format("2006-01-02"))
	if err := h.notify(e.AssigneeID, notification.TypeWarning, "Task due soon", message, entityPath("task", e.TaskID)); err != nil {
		return err
	}
	h.email(e.AssigneeID, mailTemplateDueSoon, map[string]any{
		"title":    e.Title,
		"due_date": e.DueDate.Format("2006-01-02"),
		"url":      entityPath("task", e.TaskID),
	})
	return nil
}

func (h *NotificationHandler) notify(userID uint, notifType notification.Type, title, message, actionURL string) error {
	n, err := notification.NewNotification(userID, notifType, title, message, actionURL)
	if err != nil {
		h.logger.Errorw("dropping malformed notification", "user_id", userID, "error", err)
		return nil
	}
	if err := h.notificationRepo.Save(context.Background(), n); err != nil {
		h.logger.Errorw("failed to persist notification", "user_id", userID, "error", err)
		return err
	}
	return nil
}

// email is best effort. Lookup and delivery failures are logged and
// never requeued; the in-app notification already landed.
func (h *NotificationHandler) email(userID uint, template string, data map[string]any) {
	if h.mailer == nil {
		return
	}
	address, err := h.lookupEmail(userID)
	if err != nil || address == "" {
		h.logger.Warnw("skipping notification email, no address", "user_id", userID, "error", err)
		return
	}
	if err := h.mailer.Send(address, template, data); err != nil {
		h.logger.Warnw("failed to send notification email", "user_id", userID, "template", template, "error", err)
	}
}

func (h *NotificationHandler) lookupEmail(userID uint) (string, error) {
	ctx := context.Background()
	if h.staffRepo != nil {
		staff, err := h.staffRepo.FindByID(ctx, userID)
		if err != nil {
			return "", err
		}
		if staff != nil {
			return staff.Email(), nil
		}
	}
	if h.consumerRepo != nil {
		consumer, err := h.consumerRepo.FindByID(ctx, userID)
		if err != nil {
			return "", err
		}
		if consumer != nil {
			return consumer.Email(), nil
		}
	}
	return "", nil
}

// recipients dedupes assignee and reporter and drops the acting user,
// who does not need to hear about their own change.
func recipients(actorID uint, ids ...*uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == nil || *id == 0 || *id == actorID || seen[*id] {
			continue
		}
		seen[*id] = true
		out = append(out, *id)
	}
	return out
}

func entityPath(entityType string, id uint) string {
	switch entityType {
	case "task":
		return fmt.Sprintf("/tasks/%d", id)
	case "ticket":
		return fmt.Sprintf("/tickets/%d", id)
	case "project":
		return fmt.Sprintf("/projects/%d", id)
	case "customer":
		return fmt.Sprintf("/customers/%d", id)
	}
	return ""
}
