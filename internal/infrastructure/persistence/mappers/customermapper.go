package mappers

import (
	"fmt"

	"kontor/internal/domain/customer"
	vo "kontor/internal/domain/customer/valueobjects"
	"kontor/internal/infrastructure/persistence/models"
)

type CustomerMapper struct{}

func NewCustomerMapper() *CustomerMapper {
	return &CustomerMapper{}
}

func (m *CustomerMapper) ToModel(c *customer.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:        c.ID(),
		LegalName: c.LegalName(),
		TradeName: c.TradeName(),
		VatID:     c.VatID(),
		Industry:  c.Industry(),
		Size:      c.Size(),
		Status:    c.Status().String(),
		Addresses: toJSON(c.Addresses()),
		Contacts:  toJSON(c.Contacts()),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func (m *CustomerMapper) ToDomain(model *models.CustomerModel) (*customer.Customer, error) {
	status, err := vo.NewCustomerStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid customer status (id=%d): %w", model.ID, err)
	}

	var addresses []customer.Address
	if err := fromJSON(model.Addresses, &addresses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal customer addresses (id=%d): %w", model.ID, err)
	}

	var contacts []customer.Contact
	if err := fromJSON(model.Contacts, &contacts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal customer contacts (id=%d): %w", model.ID, err)
	}

	return customer.ReconstructCustomer(
		model.ID,
		model.LegalName,
		model.TradeName,
		model.VatID,
		model.Industry,
		model.Size,
		status,
		addresses,
		contacts,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
