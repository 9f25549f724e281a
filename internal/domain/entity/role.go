package entity

// Role represents the authorization role assigned to a user account.
type Role string

const (
	// RoleUser is the default role for storefront customers.
	RoleUser Role = "user"
	// RoleAdmin grants management rights over products, orders and users.
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}
