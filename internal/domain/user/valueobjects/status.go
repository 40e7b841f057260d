package valueobjects

import "fmt"

type UserStatus string

const (
	StatusActive   UserStatus = "ACTIVE"
	StatusInactive UserStatus = "INACTIVE"
	StatusPending  UserStatus = "PENDING"
)

var validUserStatuses = map[UserStatus]bool{
	StatusActive:   true,
	StatusInactive: true,
	StatusPending:  true,
}

func (us UserStatus) String() string {
	return string(us)
}

func (us UserStatus) IsValid() bool {
	return validUserStatuses[us]
}

func (us UserStatus) IsActive() bool {
	return us == StatusActive
}

func NewUserStatus(s string) (UserStatus, error) {
	us := UserStatus(s)
	if !us.IsValid() {
		return "", fmt.Errorf("invalid user status: %s", s)
	}
	return us, nil
}
