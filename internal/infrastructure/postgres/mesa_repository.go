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

var _ repository.MesaRepository = (*MesaRepo)(nil)

// MesaRepo implementación de MesaRepository sobre PostgreSQL (usable con pool o tx).
type MesaRepo struct {
	q Querier
}

// NewMesaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMesaRepository(q Querier) *MesaRepo {
	return &MesaRepo{q: q}
}

// Create persiste una mesa. El número de mesa es único.
func (r *MesaRepo) Create(m *entity.Mesa) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO mesas (id, numero, capacidad, estado, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Numero, m.Capacidad, m.Estado, m.FechaCreacion)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEntradaInvalida
		}
		return fmt.Errorf("create mesa: %w", err)
	}
	return nil
}

// Update actualiza la mesa.
func (r *MesaRepo) Update(m *entity.Mesa) error {
	query := `UPDATE mesas SET numero = $2, capacidad = $3, estado = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, m.ID, m.Numero, m.Capacidad, m.Estado)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEntradaInvalida
		}
		return fmt.Errorf("update mesa: %w", err)
	}
	return nil
}

// Delete elimina la mesa. Devuelve false si no existe.
func (r *MesaRepo) Delete(id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM mesas WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete mesa: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetByID obtiene una mesa por ID. nil si no existe.
func (r *MesaRepo) GetByID(id string) (*entity.Mesa, error) {
	query := `SELECT id, numero, capacidad, estado, fecha_creacion FROM mesas WHERE id = $1`
	var m entity.Mesa
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Numero, &m.Capacidad, &m.Estado, &m.FechaCreacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mesa: %w", err)
	}
	return &m, nil
}

// List lista todas las mesas ordenadas por número.
func (r *MesaRepo) List() ([]*entity.Mesa, error) {
	query := `SELECT id, numero, capacidad, estado, fecha_creacion FROM mesas ORDER BY numero`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list mesas: %w", err)
	}
	defer rows.Close()

	var out []*entity.Mesa
	for rows.Next() {
		var m entity.Mesa
		if err := rows.Scan(&m.ID, &m.Numero, &m.Capacidad, &m.Estado, &m.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan mesa: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}
