// Package deletion implements dependency-ordered cascade deletes.
// Every delete walks Comments -> Subtasks -> Tasks/Tickets -> Projects
// -> Customer inside one transaction; a failure at any step rolls the
// whole cascade back.
package deletion

import (
	"context"
	"fmt"
	"strconv"

	"kontor/internal/domain/comment"
	"kontor/internal/domain/project"
	"kontor/internal/domain/task"
	"kontor/internal/domain/ticket"
	"kontor/internal/domain/user"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

// TransactionManager runs a function inside a single transaction. The
// callback's context carries the transaction for the repositories.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Report counts the rows removed by a cascade.
type Report struct {
	Customers     int64 `json:"customers"`
	Projects      int64 `json:"projects"`
	Tasks         int64 `json:"tasks"`
	Tickets       int64 `json:"tickets"`
	Comments      int64 `json:"comments"`
	ConsumerUsers int64 `json:"consumer_users"`
}

// Total returns the number of removed records across all entity types.
func (r *Report) Total() int64 {
	return r.Customers + r.Projects + r.Tasks + r.Tickets + r.Comments + r.ConsumerUsers
}

type CascadeDeleter struct {
	customerRepo customer
	projectRepo  project.Repository
	taskRepo     task.Repository
	ticketRepo   ticket.Repository
	commentRepo  comment.Repository
	consumerRepo user.ConsumerRepository
	txManager    TransactionManager
	logger       logger.Interface
}

// customer is the narrow slice of the customer repository the cascade
// needs; keeps the dependency direction clean.
type customer interface {
	Delete(ctx context.Context, id uint) error
}

func NewCascadeDeleter(
	customerRepo customer,
	projectRepo project.Repository,
	taskRepo task.Repository,
	ticketRepo ticket.Repository,
	commentRepo comment.Repository,
	consumerRepo user.ConsumerRepository,
	txManager TransactionManager,
	log logger.Interface,
) *CascadeDeleter {
	return &CascadeDeleter{
		customerRepo: customerRepo,
		projectRepo:  projectRepo,
		taskRepo:     taskRepo,
		ticketRepo:   ticketRepo,
		commentRepo:  commentRepo,
		consumerRepo: consumerRepo,
		txManager:    txManager,
		logger:       log,
	}
}

// DeleteCustomer removes a customer with its projects, consumer users,
// directly attached tickets and everything below them.
func (d *CascadeDeleter) DeleteCustomer(ctx context.Context, customerID uint) (*Report, error) {
	report := &Report{}

	err := d.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		projectIDs, err := d.projectRepo.ListIDsByCustomer(txCtx, customerID)
		if err != nil {
			return fmt.Errorf("list projects: %w", err)
		}
		for _, projectID := range projectIDs {
			if err := d.deleteProjectTree(txCtx, projectID, report); err != nil {
				return err
			}
		}

		// Tickets attached to the customer without a project.
		ticketIDs, err := d.ticketRepo.ListIDsByCustomer(txCtx, customerID)
		if err != nil {
			return fmt.Errorf("list customer tickets: %w", err)
		}
		for _, ticketID := range ticketIDs {
			if err := d.deleteTicketTree(txCtx, ticketID, report); err != nil {
				return err
			}
		}

		removedUsers, err := d.consumerRepo.DeleteByCustomer(txCtx, customerID)
		if err != nil {
			return fmt.Errorf("delete consumer users: %w", err)
		}
		report.ConsumerUsers += removedUsers

		if err := d.customerRepo.Delete(txCtx, customerID); err != nil {
			return fmt.Errorf("delete customer: %w", err)
		}
		report.Customers++
		return nil
	})
	if err != nil {
		d.logger.Errorw("customer cascade delete rolled back", "customer_id", customerID, "error", err)
		return nil, errors.NewCascadeFailureError("customer", strconv.FormatUint(uint64(customerID), 10), err)
	}

	d.logger.Infow("customer cascade delete committed",
		"customer_id", customerID,
		"projects", report.Projects,
		"tasks", report.Tasks,
		"tickets", report.Tickets,
		"comments", report.Comments,
		"consumer_users", report.ConsumerUsers,
	)
	return report, nil
}

// DeleteProject removes a project with its tasks, tickets and their
// comments.
func (d *CascadeDeleter) DeleteProject(ctx context.Context, projectID uint) (*Report, error) {
	report := &Report{}

	err := d.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return d.deleteProjectTree(txCtx, projectID, report)
	})
	if err != nil {
		d.logger.Errorw("project cascade delete rolled back", "project_id", projectID, "error", err)
		return nil, errors.NewCascadeFailureError("project", strconv.FormatUint(uint64(projectID), 10), err)
	}

	return report, nil
}

// DeleteTask removes a task together with its subtasks and all
// comments on either level.
func (d *CascadeDeleter) DeleteTask(ctx context.Context, taskID uint) (*Report, error) {
	report := &Report{}

	err := d.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return d.deleteTaskTree(txCtx, taskID, report)
	})
	if err != nil {
		d.logger.Errorw("task cascade delete rolled back", "task_id", taskID, "error", err)
		return nil, errors.NewCascadeFailureError("task", strconv.FormatUint(uint64(taskID), 10), err)
	}

	return report, nil
}

// DeleteTicket removes a ticket and its comments.
func (d *CascadeDeleter) DeleteTicket(ctx context.Context, ticketID uint) (*Report, error) {
	report := &Report{}

	err := d.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return d.deleteTicketTree(txCtx, ticketID, report)
	})
	if err != nil {
		d.logger.Errorw("ticket cascade delete rolled back", "ticket_id", ticketID, "error", err)
		return nil, errors.NewCascadeFailureError("ticket", strconv.FormatUint(uint64(ticketID), 10), err)
	}

	return report, nil
}

func (d *CascadeDeleter) deleteProjectTree(ctx context.Context, projectID uint, report *Report) error {
	taskIDs, err := d.taskRepo.ListIDsByProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("list tasks of project %d: %w", projectID, err)
	}
	for _, taskID := range taskIDs {
		if err := d.deleteTaskTree(ctx, taskID, report); err != nil {
			return err
		}
	}

	ticketIDs, err := d.ticketRepo.ListIDsByProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("list tickets of project %d: %w", projectID, err)
	}
	for _, ticketID := range ticketIDs {
		if err := d.deleteTicketTree(ctx, ticketID, report); err != nil {
			return err
		}
	}

	if err := d.projectRepo.Delete(ctx, projectID); err != nil {
		return fmt.Errorf("delete project %d: %w", projectID, err)
	}
	report.Projects++
	return nil
}

func (d *CascadeDeleter) deleteTaskTree(ctx context.Context, taskID uint, report *Report) error {
	subtaskIDs, err := d.taskRepo.ListSubtaskIDs(ctx, taskID)
	if err != nil {
		return fmt.Errorf("list subtasks of task %d: %w", taskID, err)
	}
	for _, subtaskID := range subtaskIDs {
		removed, err := d.commentRepo.DeleteByParent(ctx, comment.ParentTask, subtaskID)
		if err != nil {
			return fmt.Errorf("delete comments of subtask %d: %w", subtaskID, err)
		}
		report.Comments += removed

		if err := d.taskRepo.Delete(ctx, subtaskID); err != nil {
			return fmt.Errorf("delete subtask %d: %w", subtaskID, err)
		}
		report.Tasks++
	}

	removed, err := d.commentRepo.DeleteByParent(ctx, comment.ParentTask, taskID)
	if err != nil {
		return fmt.Errorf("delete comments of task %d: %w", taskID, err)
	}
	report.Comments += removed

	if err := d.taskRepo.Delete(ctx, taskID); err != nil {
		return fmt.Errorf("delete task %d: %w", taskID, err)
	}
	report.Tasks++
	return nil
}

func (d *CascadeDeleter) deleteTicketTree(ctx context.Context, ticketID uint, report *Report) error {
	removed, err := d.commentRepo.DeleteByParent(ctx, comment.ParentTicket, ticketID)
	if err != nil {
		return fmt.Errorf("delete comments of ticket %d: %w", ticketID, err)
	}
	report.Comments += removed

	if err := d.ticketRepo.Delete(ctx, ticketID); err != nil {
		return fmt.Errorf("delete ticket %d: %w", ticketID, err)
	}
	report.Tickets++
	return nil
}
