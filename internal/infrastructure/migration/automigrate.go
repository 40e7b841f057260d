package migration

import (
	"fmt"

	"gorm.io/gorm"

	"kontor/internal/infrastructure/persistence/models"
	"kontor/internal/shared/logger"
)

type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}
	s.logger.Infow("automigrate completed", "models_count", len(models))
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// AutoMigrateModels lists every persistence model the schema covers.
// The casbin rule table is created by its own adapter and is not
// listed here.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.CustomerModel{},
		&models.ProjectModel{},
		&models.TaskModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.StaffUserModel{},
		&models.ConsumerUserModel{},
		&models.AuditLogModel{},
		&models.NotificationModel{},
	}
}
