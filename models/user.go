package models

// Staff roles. RoleOwner is assigned to the account created through the
// one-time owner setup; every other provisioned account is RoleEmployee.
const (
	RoleOwner    = "owner"
	RoleEmployee = "employee"
)

// User represents a staff account used for authentication and invoice
// attribution. Accounts are created once and never deleted; invoices keep a
// weak reference to the creating user by ID only.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Username is the unique login identifier, looked up case-sensitively.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never exposed outside the persistence and auth layers.
	PasswordHash string `json:"-"`

	// Role is either RoleOwner or RoleEmployee.
	Role string `json:"role"`

	// CreatedAt is the account creation timestamp in RFC 3339 form.
	CreatedAt string `json:"created_at"`
}

// IsStaff reports whether the user's role grants access to staff routes.
func (u User) IsStaff() bool {
	return u.Role == RoleOwner || u.Role == RoleEmployee
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
