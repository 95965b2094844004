package user

import "time"

type Role string

const (
	RoleSuperAdmin      Role = "SUPER_ADMIN"
	RoleOfficeAdmin     Role = "OFFICE_ADMIN"
	RoleProjectManager  Role = "PROJECT_MANAGER"
	RoleFieldSupervisor Role = "FIELD_SUPERVISOR"
	RoleFieldWorker     Role = "FIELD_WORKER"
	RoleClientReadOnly  Role = "CLIENT_READ_ONLY"
)

// ValidRoles lists every assignable role.
var ValidRoles = []Role{
	RoleSuperAdmin,
	RoleOfficeAdmin,
	RoleProjectManager,
	RoleFieldSupervisor,
	RoleFieldWorker,
	RoleClientReadOnly,
}

func IsValidRole(role Role) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
	IsActive     bool
	CreatedBy    *string
	UpdatedBy    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time

	// Joined fields
	EmployeeID *string
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// RefreshToken is a persisted, revocable refresh token.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}
