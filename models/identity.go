package models

// Identity is the authenticated-staff value carried in the request context
// by the session middleware. Handlers receive it explicitly instead of
// reading ambient session state.
type Identity struct {
	UserID   int64  `json:"-"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsStaff reports whether the identity's role grants access to staff routes.
func (id Identity) IsStaff() bool {
	return id.Role == RoleOwner || id.Role == RoleEmployee
}
