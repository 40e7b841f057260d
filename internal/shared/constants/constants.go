package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Context keys
	ContextKeyUserID     = "user_id"
	ContextKeyUserRole   = "user_role"
	ContextKeyUserKind   = "user_kind"
	ContextKeyCustomerID = "customer_id"
	ContextKeyRequestID  = "request_id"

	// User status
	UserStatusActive   = "ACTIVE"
	UserStatusInactive = "INACTIVE"
	UserStatusPending  = "PENDING"

	// Database table names
	TableCustomers     = "customers"
	TableProjects      = "projects"
	TableTasks         = "tasks"
	TableTickets       = "tickets"
	TableComments      = "comments"
	TableStaffUsers    = "staff_users"
	TableConsumerUsers = "consumer_users"
	TableAuditLogs     = "audit_logs"
	TableNotifications = "notifications"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "not allowed"
	ErrMsgValidationFailed    = "Validation failed"
)
