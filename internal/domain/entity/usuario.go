package entity

import "time"

// Roles de usuario.
const (
	RolAdmin  = "admin"
	RolMozo   = "mozo"
	RolCocina = "cocina"
)

// Usuario del sistema. Contrasena guarda el hash bcrypt, nunca el texto plano.
type Usuario struct {
	ID            string
	Nombre        string
	Email         string
	Contrasena    string
	Rol           string
	Activo        bool
	FechaCreacion time.Time
}
