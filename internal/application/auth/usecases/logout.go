package usecases

import (
	"context"

	"kontor/internal/domain/access"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type LogoutCommand struct {
	Principal access.Principal
	ClientIP  string
}

// LogoutUseCase records the end of a session for the audit trail.
// Tokens are stateless, so there is nothing to revoke server-side.
type LogoutUseCase struct {
	publisher EventPublisher
	logger    logger.Interface
}

func NewLogoutUseCase(publisher EventPublisher, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{publisher: publisher, logger: logger}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if cmd.Principal.ID == 0 {
		return errors.NewValidationError("principal is required")
	}

	entity := access.EntityStaffUser
	if cmd.Principal.IsConsumer() {
		entity = access.EntityConsumerUser
	}
	publishAuthEvent(uc.publisher, uc.logger, "LOGOUT", entity, cmd.Principal.ID, cmd.ClientIP)

	return nil
}
