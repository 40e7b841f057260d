package customer

import (
	"fmt"
	"time"

	vo "kontor/internal/domain/customer/valueobjects"
	"kontor/internal/shared/biztime"
)

// Address is an embedded value object. Addresses are not independently
// referenceable and live and die with their customer.
type Address struct {
	Street     string
	City       string
	PostalCode string
	Country    string
	Label      string
}

// Contact is an embedded value object for a named contact person.
type Contact struct {
	Name  string
	Email string
	Phone string
	Role  string
}

type Customer struct {
	id        uint
	legalName string
	tradeName string
	vatID     string
	industry  string
	size      string
	status    vo.CustomerStatus
	addresses []Address
	contacts  []Contact
	createdAt time.Time
	updatedAt time.Time
}

func NewCustomer(legalName, tradeName, vatID, industry, size string) (*Customer, error) {
	if len(legalName) == 0 {
		return nil, fmt.Errorf("legal name is required")
	}
	if len(legalName) > 200 {
		return nil, fmt.Errorf("legal name exceeds maximum length of 200 characters")
	}

	now := biztime.NowUTC()

	return &Customer{
		legalName: legalName,
		tradeName: tradeName,
		vatID:     vatID,
		industry:  industry,
		size:      size,
		status:    vo.StatusActive,
		addresses: []Address{},
		contacts:  []Contact{},
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructCustomer(
	id uint,
	legalName, tradeName, vatID, industry, size string,
	status vo.CustomerStatus,
	addresses []Address,
	contacts []Contact,
	createdAt, updatedAt time.Time,
) (*Customer, error) {
	if id == 0 {
		return nil, fmt.Errorf("customer ID cannot be zero")
	}
	if len(legalName) == 0 {
		return nil, fmt.Errorf("legal name is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	if addresses == nil {
		addresses = []Address{}
	}
	if contacts == nil {
		contacts = []Contact{}
	}

	return &Customer{
		id:        id,
		legalName: legalName,
		tradeName: tradeName,
		vatID:     vatID,
		industry:  industry,
		size:      size,
		status:    status,
		addresses: addresses,
		contacts:  contacts,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Customer) ID() uint {
	return c.id
}

func (c *Customer) LegalName() string {
	return c.legalName
}

func (c *Customer) TradeName() string {
	return c.tradeName
}

func (c *Customer) VatID() string {
	return c.vatID
}

func (c *Customer) Industry() string {
	return c.industry
}

func (c *Customer) Size() string {
	return c.size
}

func (c *Customer) Status() vo.CustomerStatus {
	return c.status
}

func (c *Customer) Addresses() []Address {
	addressesCopy := make([]Address, len(c.addresses))
	copy(addressesCopy, c.addresses)
	return addressesCopy
}

func (c *Customer) Contacts() []Contact {
	contactsCopy := make([]Contact, len(c.contacts))
	copy(contactsCopy, c.contacts)
	return contactsCopy
}

func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Customer) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Customer) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("customer ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("customer ID cannot be zero")
	}
	c.id = id
	return nil
}

// UpdateDetails merges the mutable profile fields. Empty strings leave
// the current value untouched.
func (c *Customer) UpdateDetails(legalName, tradeName, vatID, industry, size string) error {
	if len(legalName) > 0 {
		if len(legalName) > 200 {
			return fmt.Errorf("legal name exceeds maximum length of 200 characters")
		}
		c.legalName = legalName
	}
	if len(tradeName) > 0 {
		c.tradeName = tradeName
	}
	if len(vatID) > 0 {
		c.vatID = vatID
	}
	if len(industry) > 0 {
		c.industry = industry
	}
	if len(size) > 0 {
		c.size = size
	}

	c.updatedAt = biztime.NowUTC()
	return nil
}

func (c *Customer) ChangeStatus(newStatus vo.CustomerStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if c.status == newStatus {
		return nil
	}

	c.status = newStatus
	c.updatedAt = biztime.NowUTC()
	return nil
}

func (c *Customer) ReplaceAddresses(addresses []Address) {
	if addresses == nil {
		addresses = []Address{}
	}
	c.addresses = addresses
	c.updatedAt = biztime.NowUTC()
}

func (c *Customer) ReplaceContacts(contacts []Contact) {
	if contacts == nil {
		contacts = []Contact{}
	}
	c.contacts = contacts
	c.updatedAt = biztime.NowUTC()
}
