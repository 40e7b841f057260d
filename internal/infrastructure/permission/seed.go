package permission

import (
	"fmt"

	"kontor/internal/domain/access"
	"kontor/internal/shared/logger"
)

// Seed loads the fixed rule table into casbin. The table in code is
// the source of truth; seeding is idempotent and runs on every boot so
// table changes ship with the binary.
func Seed(enforcer *Enforcer, log logger.Interface) error {
	added := 0
	for role, entities := range access.CoarseGrants() {
		for entity, actions := range entities {
			for _, action := range actions {
				ok, err := enforcer.AddPolicy(string(role), string(entity), string(action))
				if err != nil {
					return fmt.Errorf("failed to seed policy for %s/%s/%s: %w", role, entity, action, err)
				}
				if ok {
					added++
				}
			}
		}
	}

	if err := enforcer.SavePolicy(); err != nil {
		return fmt.Errorf("failed to persist seeded policy: %w", err)
	}

	if added > 0 {
		log.Infow("seeded permission policy", "new_rules", added)
	}
	return nil
}
