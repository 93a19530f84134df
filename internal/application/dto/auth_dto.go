package dto

import "time"

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegistroRequest alta de usuario.
type RegistroRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

// UsuarioResponse usuario sin el hash de contraseña.
type UsuarioResponse struct {
	ID            string    `json:"id"`
	Nombre        string    `json:"nombre"`
	Email         string    `json:"email"`
	Rol           string    `json:"rol"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// LoginResponse token más datos del usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
