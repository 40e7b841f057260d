package user

import (
	"fmt"
	"strings"
	"time"

	vo "kontor/internal/domain/user/valueobjects"
	"kontor/internal/shared/biztime"
)

// ConsumerUser is a customer-facing account. It always belongs to
// exactly one customer and always carries the KUNDE role.
type ConsumerUser struct {
	id             uint
	email          string
	name           string
	hashedPassword string
	customerID     uint
	status         vo.UserStatus
	lastLoginAt    *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewConsumerUser(email, name, hashedPassword string, customerID uint) (*ConsumerUser, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(hashedPassword) == 0 {
		return nil, fmt.Errorf("hashed password is required")
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}

	now := biztime.NowUTC()

	return &ConsumerUser{
		email:          strings.ToLower(email),
		name:           name,
		hashedPassword: hashedPassword,
		customerID:     customerID,
		status:         vo.StatusPending,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructConsumerUser(
	id uint,
	email, name, hashedPassword string,
	customerID uint,
	status vo.UserStatus,
	lastLoginAt *time.Time,
	createdAt, updatedAt time.Time,
) (*ConsumerUser, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &ConsumerUser{
		id:             id,
		email:          email,
		name:           name,
		hashedPassword: hashedPassword,
		customerID:     customerID,
		status:         status,
		lastLoginAt:    lastLoginAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (u *ConsumerUser) ID() uint {
	return u.id
}

func (u *ConsumerUser) Email() string {
	return u.email
}

func (u *ConsumerUser) Name() string {
	return u.name
}

func (u *ConsumerUser) HashedPassword() string {
	return u.hashedPassword
}

func (u *ConsumerUser) CustomerID() uint {
	return u.customerID
}

func (u *ConsumerUser) Status() vo.UserStatus {
	return u.status
}

func (u *ConsumerUser) LastLoginAt() *time.Time {
	return u.lastLoginAt
}

func (u *ConsumerUser) CreatedAt() time.Time {
	return u.createdAt
}

func (u *ConsumerUser) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *ConsumerUser) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *ConsumerUser) UpdateDetails(name string) error {
	if len(name) > 0 {
		u.name = name
	}

	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *ConsumerUser) ChangeStatus(newStatus vo.UserStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	u.status = newStatus
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *ConsumerUser) ChangePassword(hashedPassword string) error {
	if len(hashedPassword) == 0 {
		return fmt.Errorf("hashed password is required")
	}

	u.hashedPassword = hashedPassword
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *ConsumerUser) RecordLogin() {
	now := biztime.NowUTC()
	u.lastLoginAt = &now
}

func (u *ConsumerUser) CanLogin() bool {
	return u.status.IsActive()
}
