package models

type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleManager UserRole = "manager"
	UserRoleUser    UserRole = "user"
)

var roleHumanName = map[UserRole]string{
	UserRoleAdmin:   "Administrator",
	UserRoleManager: "Manager",
	UserRoleUser:    "User",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// IsManager reports whether the role may act on team requests at all.
// Scope over a concrete team is still checked per operation.
func (r UserRole) IsManager() bool {
	return r == UserRoleAdmin || r == UserRoleManager
}

const SystemUser = "system"
