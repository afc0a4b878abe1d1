package domain

// Actor identifies the authenticated caller of a service operation.
// Services use it to scope reads and writes: admins operate on the whole
// directory, owners only on records tied to their own business.
type Actor struct {
	ID   string
	Role string
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
