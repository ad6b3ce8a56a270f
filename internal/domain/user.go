package domain

// Role is the access level of an authenticated user
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User represents the authenticated account held by the front end
type User struct {
	ID     string  `json:"id" validate:"required"`
	Name   string  `json:"name" validate:"required"`
	Email  string  `json:"email" validate:"required,email"`
	Avatar *string `json:"avatar,omitempty"`
	Role   Role    `json:"role" validate:"required,oneof=admin user"`
}

// Clone returns a deep copy of u, or nil when u is nil
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Avatar != nil {
		avatar := *u.Avatar
		c.Avatar = &avatar
	}
	return &c
}
