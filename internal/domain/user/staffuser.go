package user

import (
	"fmt"
	"strings"
	"time"

	"kontor/internal/domain/department"
	vo "kontor/internal/domain/user/valueobjects"
	"kontor/internal/shared/authorization"
	"kontor/internal/shared/biztime"
)

type StaffUser struct {
	id             uint
	email          string
	name           string
	hashedPassword string
	role           authorization.Role
	status         vo.UserStatus
	departments    []department.Department
	lastLoginAt    *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewStaffUser(email, name, hashedPassword string, role authorization.Role, departments []department.Department) (*StaffUser, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(hashedPassword) == 0 {
		return nil, fmt.Errorf("hashed password is required")
	}
	if !role.IsStaff() {
		return nil, fmt.Errorf("invalid staff role: %s", role)
	}
	for _, d := range departments {
		if !d.IsValid() {
			return nil, fmt.Errorf("invalid department: %s", d)
		}
	}

	if departments == nil {
		departments = []department.Department{}
	}

	now := biztime.NowUTC()

	return &StaffUser{
		email:          strings.ToLower(email),
		name:           name,
		hashedPassword: hashedPassword,
		role:           role,
		status:         vo.StatusPending,
		departments:    departments,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructStaffUser(
	id uint,
	email, name, hashedPassword string,
	role authorization.Role,
	status vo.UserStatus,
	departments []department.Department,
	lastLoginAt *time.Time,
	createdAt, updatedAt time.Time,
) (*StaffUser, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsStaff() {
		return nil, fmt.Errorf("invalid staff role: %s", role)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	if departments == nil {
		departments = []department.Department{}
	}

	return &StaffUser{
		id:             id,
		email:          email,
		name:           name,
		hashedPassword: hashedPassword,
		role:           role,
		status:         status,
		departments:    departments,
		lastLoginAt:    lastLoginAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (u *StaffUser) ID() uint {
	return u.id
}

func (u *StaffUser) Email() string {
	return u.email
}

func (u *StaffUser) Name() string {
	return u.name
}

func (u *StaffUser) HashedPassword() string {
	return u.hashedPassword
}

func (u *StaffUser) Role() authorization.Role {
	return u.role
}

func (u *StaffUser) Status() vo.UserStatus {
	return u.status
}

func (u *StaffUser) Departments() []department.Department {
	departmentsCopy := make([]department.Department, len(u.departments))
	copy(departmentsCopy, u.departments)
	return departmentsCopy
}

func (u *StaffUser) LastLoginAt() *time.Time {
	return u.lastLoginAt
}

func (u *StaffUser) CreatedAt() time.Time {
	return u.createdAt
}

func (u *StaffUser) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *StaffUser) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *StaffUser) UpdateDetails(name string, departments []department.Department) error {
	if len(name) > 0 {
		u.name = name
	}
	if departments != nil {
		for _, d := range departments {
			if !d.IsValid() {
				return fmt.Errorf("invalid department: %s", d)
			}
		}
		u.departments = departments
	}

	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *StaffUser) ChangeRole(newRole authorization.Role) error {
	if !newRole.IsStaff() {
		return fmt.Errorf("invalid staff role: %s", newRole)
	}

	u.role = newRole
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *StaffUser) ChangeStatus(newStatus vo.UserStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	u.status = newStatus
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *StaffUser) ChangePassword(hashedPassword string) error {
	if len(hashedPassword) == 0 {
		return fmt.Errorf("hashed password is required")
	}

	u.hashedPassword = hashedPassword
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *StaffUser) RecordLogin() {
	now := biztime.NowUTC()
	u.lastLoginAt = &now
}

func (u *StaffUser) CanLogin() bool {
	return u.status.IsActive()
}

func validateEmail(email string) error {
	if len(email) == 0 {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email format")
	}
	return nil
}
