package usecases

import (
	"context"
	"time"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/customer"
	vo "kontor/internal/domain/customer/valueobjects"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type UpdateCustomerCommand struct {
	Principal  access.Principal
	ActorIP    string
	CustomerID uint
	LegalName  string
	TradeName  string
	VatID      string
	Industry   string
	Size       string
	Status     string
	Addresses  []AddressInput
	Contacts   []ContactInput
}

type UpdateCustomerResult struct {
	CustomerID uint      `json:"customer_id"`
	LegalName  string    `json:"legal_name"`
	Status     string    `json:"status"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type UpdateCustomerUseCase struct {
	customerRepo customer.Repository
	publisher    EventPublisher
	logger       logger.Interface
}

func NewUpdateCustomerUseCase(
	customerRepo customer.Repository,
	publisher EventPublisher,
	logger logger.Interface,
) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{
		customerRepo: customerRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, cmd UpdateCustomerCommand) (*UpdateCustomerResult, error) {
	uc.logger.Infow("executing update customer use case", "customer_id", cmd.CustomerID, "actor_id", cmd.Principal.ID)

	if cmd.CustomerID == 0 {
		return nil, errors.NewValidationError("customer ID is required")
	}

	if err := guard.Check(cmd.Principal, access.ActionUpdate, access.EntityCustomer, nil); err != nil {
		return nil, err
	}

	existing, err := uc.customerRepo.FindByID(ctx, cmd.CustomerID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("customer not found")
	}

	changes := map[string]any{}

	if err := existing.UpdateDetails(cmd.LegalName, cmd.TradeName, cmd.VatID, cmd.Industry, cmd.Size); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if len(cmd.LegalName) > 0 {
		changes["legal_name"] = cmd.LegalName
	}

	if len(cmd.Status) > 0 {
		newStatus, err := vo.NewCustomerStatus(cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		oldStatus := existing.Status()
		if err := existing.ChangeStatus(newStatus); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if oldStatus != newStatus {
			changes["status"] = map[string]string{"from": oldStatus.String(), "to": newStatus.String()}
		}
	}

	if cmd.Addresses != nil {
		existing.ReplaceAddresses(mapAddresses(cmd.Addresses))
		changes["addresses"] = len(cmd.Addresses)
	}
	if cmd.Contacts != nil {
		existing.ReplaceContacts(mapContacts(cmd.Contacts))
		changes["contacts"] = len(cmd.Contacts)
	}

	if err := uc.customerRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update customer", "customer_id", cmd.CustomerID, "error", err)
		return nil, err
	}

	publishMutation(uc.publisher, uc.logger, "UPDATE", existing.ID(), cmd.Principal.ID, cmd.ActorIP, changes)

	return &UpdateCustomerResult{
		CustomerID: existing.ID(),
		LegalName:  existing.LegalName(),
		Status:     existing.Status().String(),
		UpdatedAt:  existing.UpdatedAt(),
	}, nil
}
