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

type GetCustomerQuery struct {
	Principal  access.Principal
	CustomerID uint
}

type CustomerDetails struct {
	CustomerID uint           `json:"customer_id"`
	LegalName  string         `json:"legal_name"`
	TradeName  string         `json:"trade_name"`
	VatID      string         `json:"vat_id"`
	Industry   string         `json:"industry"`
	Size       string         `json:"size"`
	Status     string         `json:"status"`
	Addresses  []AddressInput `json:"addresses"`
	Contacts   []ContactInput `json:"contacts"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

type GetCustomerUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewGetCustomerUseCase(customerRepo customer.Repository, logger logger.Interface) *GetCustomerUseCase {
	return &GetCustomerUseCase{customerRepo: customerRepo, logger: logger}
}

func (uc *GetCustomerUseCase) Execute(ctx context.Context, query GetCustomerQuery) (*CustomerDetails, error) {
	if query.CustomerID == 0 {
		return nil, errors.NewValidationError("customer ID is required")
	}

	if err := guard.CheckRead(query.Principal, access.EntityCustomer, nil); err != nil {
		return nil, err
	}

	found, err := uc.customerRepo.FindByID(ctx, query.CustomerID)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errors.NewNotFoundError("customer not found")
	}

	return mapCustomerDetails(found), nil
}

func mapCustomerDetails(c *customer.Customer) *CustomerDetails {
	addresses := make([]AddressInput, 0, len(c.Addresses()))
	for _, a := range c.Addresses() {
		addresses = append(addresses, AddressInput{
			Street:     a.Street,
			City:       a.City,
			PostalCode: a.PostalCode,
			Country:    a.Country,
			Label:      a.Label,
		})
	}

	contacts := make([]ContactInput, 0, len(c.Contacts()))
	for _, ct := range c.Contacts() {
		contacts = append(contacts, ContactInput{
			Name:  ct.Name,
			Email: ct.Email,
			Phone: ct.Phone,
			Role:  ct.Role,
		})
	}

	return &CustomerDetails{
		CustomerID: c.ID(),
		LegalName:  c.LegalName(),
		TradeName:  c.TradeName(),
		VatID:      c.VatID(),
		Industry:   c.Industry(),
		Size:       c.Size(),
		Status:     c.Status().String(),
		Addresses:  addresses,
		Contacts:   contacts,
		CreatedAt:  c.CreatedAt(),
		UpdatedAt:  c.UpdatedAt(),
	}
}
