package usecases

import (
	"context"

	"kontor/internal/domain/access"
	"kontor/internal/domain/audit"
	"kontor/internal/shared/authorization"
	"kontor/internal/shared/logger"
)

type mockAuditRepository struct {
	SaveFunc    func(ctx context.Context, entry *audit.Entry) error
	ListFunc    func(ctx context.Context, filter audit.ListFilter, offset, limit int) ([]*audit.Entry, int64, error)
	ListAllFunc func(ctx context.Context, filter audit.ListFilter) ([]*audit.Entry, error)
}

func (m *mockAuditRepository) Save(ctx context.Context, entry *audit.Entry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, entry)
	}
	return nil
}

func (m *mockAuditRepository) List(ctx context.Context, filter audit.ListFilter, offset, limit int) ([]*audit.Entry, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockAuditRepository) ListAll(ctx context.Context, filter audit.ListFilter) ([]*audit.Entry, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx, filter)
	}
	return nil, nil
}

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}

func adminPrincipal(id uint) access.Principal {
	return access.Principal{ID: id, Role: authorization.RoleAdmin, Kind: authorization.KindStaff}
}

func managerPrincipal(id uint) access.Principal {
	return access.Principal{ID: id, Role: authorization.RoleManager, Kind: authorization.KindStaff}
}
