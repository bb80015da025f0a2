package models

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// IsValidRole reports whether role is one of the recognised roles.
func IsValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
