package usecases

import (
	"context"
	"time"

	"kontor/internal/application/guard"
	"kontor/internal/domain/access"
	"kontor/internal/domain/customer"
	"kontor/internal/shared/errors"
	"kontor/internal/shared/logger"
)

type AddressInput struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Label      string `json:"label"`
}

type ContactInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type CreateCustomerCommand struct {
	Principal access.Principal
	ActorIP   string
	LegalName string
	TradeName string
	VatID     string
	Industry  string
	Size      string
	Addresses []AddressInput
	Contacts  []ContactInput
}

type CreateCustomerResult struct {
	CustomerID uint      `json:"customer_id"`
	LegalName  string    `json:"legal_name"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateCustomerUseCase struct {
	customerRepo customer.Repository
	publisher    EventPublisher
	logger       logger.Interface
}

func NewCreateCustomerUseCase(
	customerRepo customer.Repository,
	publisher EventPublisher,
	logger logger.Interface,
) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{
		customerRepo: customerRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *CreateCustomerUseCase) Execute(ctx context.Context, cmd CreateCustomerCommand) (*CreateCustomerResult, error) {
	uc.logger.Infow("executing create customer use case", "legal_name", cmd.LegalName, "actor_id", cmd.Principal.ID)

	if err := guard.Check(cmd.Principal, access.ActionCreate, access.EntityCustomer, nil); err != nil {
		uc.logger.Warnw("create customer denied", "actor_id", cmd.Principal.ID, "role", cmd.Principal.Role)
		return nil, err
	}

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create customer command", "error", err)
		return nil, err
	}

	if len(cmd.VatID) > 0 {
		exists, err := uc.customerRepo.ExistsByVatID(ctx, cmd.VatID)
		if err != nil {
			uc.logger.Errorw("failed to check VAT ID uniqueness", "error", err)
			return nil, err
		}
		if exists {
			return nil, errors.NewConflictError("a customer with this VAT ID already exists")
		}
	}

	newCustomer, err := customer.NewCustomer(cmd.LegalName, cmd.TradeName, cmd.VatID, cmd.Industry, cmd.Size)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if len(cmd.Addresses) > 0 {
		newCustomer.ReplaceAddresses(mapAddresses(cmd.Addresses))
	}
	if len(cmd.Contacts) > 0 {
		newCustomer.ReplaceContacts(mapContacts(cmd.Contacts))
	}

	if err := uc.customerRepo.Save(ctx, newCustomer); err != nil {
		uc.logger.Errorw("failed to save customer", "error", err)
		return nil, err
	}

	publishMutation(uc.publisher, uc.logger, "CREATE", newCustomer.ID(), cmd.Principal.ID, cmd.ActorIP, map[string]any{
		"legal_name": newCustomer.LegalName(),
		"status":     newCustomer.Status().String(),
	})

	uc.logger.Infow("customer created", "customer_id", newCustomer.ID())

	return &CreateCustomerResult{
		CustomerID: newCustomer.ID(),
		LegalName:  newCustomer.LegalName(),
		Status:     newCustomer.Status().String(),
		CreatedAt:  newCustomer.CreatedAt(),
	}, nil
}

func (uc *CreateCustomerUseCase) validateCommand(cmd CreateCustomerCommand) error {
	if len(cmd.LegalName) == 0 {
		return errors.NewValidationError("legal name is required")
	}
	if len(cmd.LegalName) > 200 {
		return errors.NewValidationError("legal name exceeds maximum length of 200 characters")
	}
	return nil
}

func mapAddresses(inputs []AddressInput) []customer.Address {
	out := make([]customer.Address, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, customer.Address{
			Street:     in.Street,
			City:       in.City,
			PostalCode: in.PostalCode,
			Country:    in.Country,
			Label:      in.Label,
		})
	}
	return out
}

func mapContacts(inputs []ContactInput) []customer.Contact {
	out := make([]customer.Contact, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, customer.Contact{
			Name:  in.Name,
			Email: in.Email,
			Phone: in.Phone,
			Role:  in.Role,
		})
	}
	return out
}
