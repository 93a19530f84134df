package repository

import "github.com/gardengates/comanda-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para usuarios.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByEmail(email string) (*entity.Usuario, error)
}
