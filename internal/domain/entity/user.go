package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User representa un miembro del personal con acceso a la API.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin, staff
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
