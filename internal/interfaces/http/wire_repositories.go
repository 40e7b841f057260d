package http

import (
	"gorm.io/gorm"

	"kontor/internal/infrastructure/repository"
)

// repositories bundles every persistence adapter the container wires.
type repositories struct {
	customer     *repository.CustomerRepository
	project      *repository.ProjectRepository
	task         *repository.TaskRepository
	ticket       *repository.TicketRepository
	comment      *repository.CommentRepository
	staffUser    *repository.StaffUserRepository
	consumerUser *repository.ConsumerUserRepository
	audit        *repository.AuditRepository
	notification *repository.NotificationRepository
}

func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		customer:     repository.NewCustomerRepository(db),
		project:      repository.NewProjectRepository(db),
		task:         repository.NewTaskRepository(db),
		ticket:       repository.NewTicketRepository(db),
		comment:      repository.NewCommentRepository(db),
		staffUser:    repository.NewStaffUserRepository(db),
		consumerUser: repository.NewConsumerUserRepository(db),
		audit:        repository.NewAuditRepository(db),
		notification: repository.NewNotificationRepository(db),
	}
}
