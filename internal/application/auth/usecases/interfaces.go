package usecases

import (
	"time"

	"kontor/internal/domain/access"
	"kontor/internal/domain/shared/events"
	"kontor/internal/shared/logger"
)

// EventPublisher enqueues side-effect events after a committed
// mutation.
type EventPublisher interface {
	Publish(event events.DomainEvent) error
	PublishAll(events []events.DomainEvent) error
}

// PasswordHasher hides the bcrypt dependency from the use cases.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

// TokenIssuer mints the signed session token handed to clients.
type TokenIssuer interface {
	Issue(principal access.Principal, email, name string) (token string, expiresAt time.Time, err error)
}

func publishAuthEvent(pub EventPublisher, log logger.Interface, action string, entity access.EntityType, userID uint, ip string) {
	event := events.NewEntityMutated(action, string(entity), userID, userID, ip, nil)
	if err := pub.Publish(event); err != nil {
		log.Warnw("failed to publish auth event", "action", action, "user_id", userID, "error", err)
	}
}
