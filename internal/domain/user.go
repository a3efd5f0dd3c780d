package domain

type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRolePatron UserRole = "patron"
)

type User struct {
	ID           int32    `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	CreatedAt    string   `json:"created_at"`
}

// UserUpdate carries a partial user update. Nil fields are left untouched.
type UserUpdate struct {
	Username *string   `json:"username,omitempty"`
	Email    *string   `json:"email,omitempty"`
	Password *string   `json:"password,omitempty"`
	Role     *UserRole `json:"role,omitempty"`
}

// Identity is the authenticated caller as carried by the bearer token.
type Identity struct {
	ID       int32    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Role     UserRole `json:"role"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == UserRoleAdmin
}
