package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gardengates/comanda-api/internal/domain"
	"github.com/gardengates/comanda-api/internal/domain/entity"
	"github.com/gardengates/comanda-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación de UsuarioRepository sobre PostgreSQL
// (usable con pool o tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un usuario. El email es único.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	query := `
		INSERT INTO usuarios (id, nombre, email, contrasena, rol, activo, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Nombre, u.Email, u.Contrasena, u.Rol, u.Activo, u.FechaCreacion)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailRegistrado
		}
		return fmt.Errorf("create usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. nil si no existe.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	query := `SELECT id, nombre, email, contrasena, rol, activo, fecha_creacion FROM usuarios WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get usuario")
}

// FindByEmail busca un usuario por email. nil si no existe.
func (r *UsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	query := `SELECT id, nombre, email, contrasena, rol, activo, fecha_creacion FROM usuarios WHERE email = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email), "find usuario by email")
}

func (r *UsuarioRepo) scanOne(row pgx.Row, op string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(&u.ID, &u.Nombre, &u.Email, &u.Contrasena, &u.Rol, &u.Activo, &u.FechaCreacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}
