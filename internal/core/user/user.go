package user

// Role is the privilege tier carried on every user record. The ordinal values
// are part of the wire contract and must not be reordered.
type Role int8

const (
	RoleSuperAdmin Role = 0
	RoleAdmin      Role = 1
	RoleManager    Role = 2
	RoleEmployee   Role = 3
)

func (r Role) String() string {
	switch r {
	case RoleSuperAdmin:
		return "super-admin"
	case RoleAdmin:
		return "admin"
	case RoleManager:
		return "manager"
	case RoleEmployee:
		return "employee"
	default:
		return "unknown"
	}
}

func (r Role) Valid() bool {
	return r >= RoleSuperAdmin && r <= RoleEmployee
}

// CanManageEntities reports whether the role may create or update shared
// records (projects, departments, designations, workstreams). Only admin and
// manager pass; super-admin is a bootstrap account and does not.
func (r Role) CanManageEntities() bool {
	return r == RoleAdmin || r == RoleManager
}

// CanViewAllUsers reports whether the role may list other users' records.
func (r Role) CanViewAllUsers() bool {
	return r == RoleAdmin || r == RoleManager
}

// Status is the active flag on a user record.
type Status int8

const (
	StatusInactive Status = 0
	StatusActive   Status = 1
)

func (s Status) IsActive() bool {
	return s == StatusActive
}

// Actor identifies the authenticated caller for service-layer checks.
type Actor struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
