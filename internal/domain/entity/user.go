package entity

import "time"

// Roles de usuario de la aplicación.
const (
	RoleAdmin     = "admin"
	RoleWarehouse = "bodeguero"
	RoleSales     = "vendedor"
)

// User usuario del back-office (autenticación JWT).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	CreatedAt    time.Time
}
