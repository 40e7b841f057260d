package usecases

import (
	"context"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/customer"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type DeleteCustomerCommand struct {
	Principal  access.Principal
	ActorIP    string
	CustomerID uint
}

type DeleteCustomerResult struct {
	CustomerID     uint  `json:"customer_id"`
	RemovedRecords int64 `json:"removed_records"`
}

type DeleteCustomerUseCase struct {
	customerRepo customer.Repository
	cascader     Cascader
	publisher    EventPublisher
	logger       logger.Interface
}

func NewDeleteCustomerUseCase(
	customerRepo customer.Repository,
	cascader Cascader,
	publisher EventPublisher,
	logger logger.Interface,
) *DeleteCustomerUseCase {
	return &DeleteCustomerUseCase{
		customerRepo: customerRepo,
		cascader:     cascader,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *DeleteCustomerUseCase) Execute(ctx context.Context, cmd DeleteCustomerCommand) (*DeleteCustomerResult, error) {
	uc.logger.Infow("executing delete customer use case", "customer_id", cmd.CustomerID, "actor_id", cmd.Principal.ID)

	if cmd.CustomerID == 0 {
		return nil, errors.NewValidationError("customer ID is required")
	}

	if err := guard.Check(cmd.Principal, access.ActionDelete, access.EntityCustomer, nil); err != nil {
		return nil, err
	}

	existing, err := uc.customerRepo.FindByID(ctx, cmd.CustomerID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("customer not found")
	}

	report, err := uc.cascader.DeleteCustomer(ctx, cmd.CustomerID)
	if err != nil {
		return nil, err
	}

	publishMutation(uc.publisher, uc.logger, "DELETE", cmd.CustomerID, cmd.Principal.ID, cmd.ActorIP, map[string]any{
		"legal_name":     existing.LegalName(),
		"projects":       report.Projects,
		"tasks":          report.Tasks,
		"tickets":        report.Tickets,
		"comments":       report.Comments,
		"consumer_users": report.ConsumerUsers,
	})

	uc.logger.Infow("customer deleted", "customer_id", cmd.CustomerID, "removed_records", report.Total())

	return &DeleteCustomerResult{
		CustomerID:     cmd.CustomerID,
		RemovedRecords: report.Total(),
	}, nil
}
