package valueobjects

import "fmt"

type CustomerStatus string

const (
	StatusActive    CustomerStatus = "ACTIVE"
	StatusInactive  CustomerStatus = "INACTIVE"
	StatusProspect  CustomerStatus = "PROSPECT"
	StatusSuspended CustomerStatus = "SUSPENDED"
)

var validCustomerStatuses = map[CustomerStatus]bool{
	StatusActive:    true,
	StatusInactive:  true,
	StatusProspect:  true,
	StatusSuspended: true,
}

func (cs CustomerStatus) String() string {
	return string(cs)
}

func (cs CustomerStatus) IsValid() bool {
	return validCustomerStatuses[cs]
}

func (cs CustomerStatus) IsActive() bool {
	return cs == StatusActive
}

func NewCustomerStatus(s string) (CustomerStatus, error) {
	cs := CustomerStatus(s)
	if !cs.IsValid() {
		return "", fmt.Errorf("invalid customer status: %s", s)
	}
	return cs, nil
}
