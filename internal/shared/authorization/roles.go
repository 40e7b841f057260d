package authorization

// Role is the portal-wide role of a principal. ADMIN, MANAGER and
// MITARBEITER are staff roles; KUNDE is the customer-facing role.
type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleManager     Role = "MANAGER"
	RoleMitarbeiter Role = "MITARBEITER"
	RoleKunde       Role = "KUNDE"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleMitarbeiter, RoleKunde:
		return true
	}
	return false
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaff reports whether the role belongs to the staff hierarchy.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleMitarbeiter
}

// CanManage reports whether the role may manage entities on behalf of
// other users (full CRUD on business entities).
func (r Role) CanManage() bool {
	return r == RoleAdmin || r == RoleManager
}

func ParseRole(s string) (Role, bool) {
	role := Role(s)
	return role, role.IsValid()
}

// Kind distinguishes internal staff principals from customer-facing
// consumer principals.
type Kind string

const (
	KindStaff    Kind = "STAFF"
	KindConsumer Kind = "CONSUMER"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	return k == KindStaff || k == KindConsumer
}
