package domain

import "time"

// Role is the value carried in the tipo_de_usuario claim and stored on every user.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleClerk Role = "BALCONISTA"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleClerk
}

// User models an account able to authenticate against the API.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"nome"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"tipo_de_usuario"`
	CreatedAt    time.Time `json:"created_at"`
}
