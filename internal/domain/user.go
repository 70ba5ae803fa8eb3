package domain

// UserRole is the role of an application user
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleClient UserRole = "client"
)

// User is an application account. PasswordHash is never exposed outside storage.
type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"password,omitempty"`
	Role         UserRole `json:"role"`
}

// IsAdmin returns true for administrators
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Public returns a copy without the password hash
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

// UserInput is the data needed to create a user
type UserInput struct {
	Name     string
	Email    string
	Password string
	Role     UserRole
}

// UserPatch holds optional user fields for partial updates
type UserPatch struct {
	Name     *string
	Email    *string
	Password *string
	Role     *UserRole
}
