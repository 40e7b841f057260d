package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"kontor/internal/application/deletion"
	"kontor/internal/application/sideeffects"
	"kontor/internal/domain/shared/events"
	"kontor/internal/infrastructure/auth"
	"kontor/internal/infrastructure/config"
	"kontor/internal/infrastructure/email"
	"kontor/internal/infrastructure/permission"
	"kontor/internal/interfaces/http/middleware"
	"kontor/internal/shared/db"
	"kontor/internal/shared/goroutine"
	"kontor/internal/shared/logger"
)

const rbacModelPath = "./configs/rbac_model.conf"

// Container wires infrastructure, repositories, use cases, handlers and
// background workers together, and owns their lifecycle.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware

	jwtService *auth.JWTService
	hasher     *auth.BcryptPasswordHasher
	enforcer   *permission.Enforcer
	mailer     *email.SMTPMailer

	dispatcher *events.InMemoryEventDispatcher
	reminder   *sideeffects.ReminderSweep

	reminderCancel context.CancelFunc
}

// NewContainer builds the full dependency graph. The order matters:
// infrastructure first, then repositories, then the application layer,
// then the side-effect subscribers that hang off the dispatcher.
func NewContainer(database *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     database,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initApplication()
	if err := c.initSideEffects(); err != nil {
		return nil, err
	}
	c.initHTTP()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	c.jwtService = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)
	c.hasher = auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)

	enforcer, err := permission.NewEnforcer(c.db, rbacModelPath, c.log)
	if err != nil {
		return err
	}
	if err := permission.Seed(enforcer, c.log); err != nil {
		return err
	}
	c.enforcer = enforcer

	mailer, err := email.NewSMTPMailer(&c.cfg.Email, c.log)
	if err != nil {
		return err
	}
	c.mailer = mailer

	c.dispatcher = events.NewInMemoryEventDispatcher(256)
	c.dispatcher.SetRetryPolicy(
		time.Duration(c.cfg.Notify.RetryIntervalSeconds)*time.Second,
		c.cfg.Notify.MaxRetries,
	)
	c.dispatcher.OnError(func(event events.DomainEvent, attempts int, err error) {
		c.log.Errorw("side effect dropped after retries",
			"event_type", event.GetEventType(),
			"aggregate_id", event.GetAggregateID(),
			"attempts", attempts,
			"error", err)
	})

	return nil
}

func (c *Container) initApplication() {
	c.repos = newRepositories(c.db)

	txManager := db.NewTransactionManager(c.db)
	cascader := deletion.NewCascadeDeleter(
		c.repos.customer,
		c.repos.project,
		c.repos.task,
		c.repos.ticket,
		c.repos.comment,
		c.repos.consumerUser,
		txManager,
		c.log,
	)

	c.ucs = newUseCases(c.repos, cascader, c.dispatcher, c.hasher, c.jwtService, c.log)
	c.hdlrs = newHandlers(c.ucs, c.log)
}

func (c *Container) initSideEffects() error {
	auditHandler := sideeffects.NewAuditHandler(c.repos.audit, c.log)

	// A typed nil SMTPMailer must not end up inside the Mailer
	// interface, or the handler would see it as non-nil.
	var mailer sideeffects.Mailer
	if c.mailer != nil {
		mailer = c.mailer
	}
	notificationHandler := sideeffects.NewNotificationHandler(
		c.repos.notification,
		c.repos.staffUser,
		c.repos.consumerUser,
		mailer,
		c.log,
	)

	if err := sideeffects.Register(c.dispatcher, auditHandler, notificationHandler); err != nil {
		return err
	}

	c.reminder = sideeffects.NewReminderSweep(
		c.repos.task,
		c.dispatcher,
		c.log,
		time.Duration(c.cfg.Notify.DueSoonWindowHours)*time.Hour,
	)

	return nil
}

func (c *Container) initHTTP() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtService, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Start launches the event dispatcher and the due-date reminder sweep.
func (c *Container) Start() error {
	if err := c.dispatcher.Start(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.reminderCancel = cancel
	goroutine.SafeGo(c.log, "reminder-sweep", func() {
		c.reminder.Start(ctx, time.Hour)
	})

	c.log.Infow("background workers started",
		"due_soon_window_hours", c.cfg.Notify.DueSoonWindowHours)
	return nil
}

// Shutdown stops the background workers. Safe to call once after Start.
func (c *Container) Shutdown() error {
	if c.reminderCancel != nil {
		c.reminderCancel()
	}
	if err := c.dispatcher.Stop(); err != nil {
		return err
	}
	c.log.Infow("background workers stopped")
	return nil
}
