package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gardengates/comanda-api/internal/domain/entity"
	"github.com/gardengates/comanda-api/internal/domain/repository"
)

var _ repository.IngredienteRepository = (*IngredienteRepo)(nil)

// IngredienteRepo implementación de IngredienteRepository sobre PostgreSQL
// (usable con pool o tx).
type IngredienteRepo struct {
	q Querier
}

// NewIngredienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIngredienteRepository(q Querier) *IngredienteRepo {
	return &IngredienteRepo{q: q}
}

const ingredienteCols = `id, nombre, unidad, stock_actual, stock_minimo, costo_por_unidad, activo, fecha_creacion`

// Create persiste un ingrediente.
func (r *IngredienteRepo) Create(ing *entity.Ingrediente) error {
	if ing.ID == "" {
		ing.ID = uuid.New().String()
	}
	query := `
		INSERT INTO ingredientes (id, nombre, unidad, stock_actual, stock_minimo, costo_por_unidad, activo, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		ing.ID, ing.Nombre, ing.Unidad, ing.StockActual, ing.StockMinimo,
		ing.CostoPorUnidad, ing.Activo, ing.FechaCreacion,
	)
	if err != nil {
		return fmt.Errorf("create ingrediente: %w", err)
	}
	return nil
}

// Update actualiza los datos del ingrediente.
func (r *IngredienteRepo) Update(ing *entity.Ingrediente) error {
	query := `
		UPDATE ingredientes
		SET nombre = $2, unidad = $3, stock_actual = $4, stock_minimo = $5, costo_por_unidad = $6, activo = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ing.ID, ing.Nombre, ing.Unidad, ing.StockActual, ing.StockMinimo,
		ing.CostoPorUnidad, ing.Activo,
	)
	if err != nil {
		return fmt.Errorf("update ingrediente: %w", err)
	}
	return nil
}

// Desactivar hace soft delete (activo = false). Devuelve false si no existe.
func (r *IngredienteRepo) Desactivar(id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE ingredientes SET activo = false WHERE id = $1 AND activo = true`, id)
	if err != nil {
		return false, fmt.Errorf("desactivar ingrediente: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetByID obtiene un ingrediente activo por ID. nil si no existe.
func (r *IngredienteRepo) GetByID(id string) (*entity.Ingrediente, error) {
	query := `SELECT ` + ingredienteCols + ` FROM ingredientes WHERE id = $1 AND activo = true`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get ingrediente")
}

// List lista los ingredientes activos ordenados por nombre.
func (r *IngredienteRepo) List() ([]*entity.Ingrediente, error) {
	query := `SELECT ` + ingredienteCols + ` FROM ingredientes WHERE activo = true ORDER BY nombre`
	return r.scanMany(query)
}

// ListBajoStock lista ingredientes activos en o bajo su stock mínimo.
func (r *IngredienteRepo) ListBajoStock() ([]*entity.Ingrediente, error) {
	query := `SELECT ` + ingredienteCols + `
		FROM ingredientes
		WHERE activo = true AND stock_actual <= stock_minimo
		ORDER BY nombre`
	return r.scanMany(query)
}

// GetForUpdate obtiene el ingrediente y bloquea la fila (SELECT FOR UPDATE).
func (r *IngredienteRepo) GetForUpdate(id string) (*entity.Ingrediente, error) {
	query := `SELECT ` + ingredienteCols + ` FROM ingredientes WHERE id = $1 AND activo = true FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get ingrediente for update")
}

// UpdateStock fija el stock del ingrediente. Llamar solo con la fila bloqueada.
func (r *IngredienteRepo) UpdateStock(id string, stock decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE ingredientes SET stock_actual = $2 WHERE id = $1`, id, stock)
	if err != nil {
		return fmt.Errorf("update stock ingrediente: %w", err)
	}
	return nil
}

func (r *IngredienteRepo) scanOne(row pgx.Row, op string) (*entity.Ingrediente, error) {
	var ing entity.Ingrediente
	err := row.Scan(
		&ing.ID, &ing.Nombre, &ing.Unidad, &ing.StockActual, &ing.StockMinimo,
		&ing.CostoPorUnidad, &ing.Activo, &ing.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &ing, nil
}

func (r *IngredienteRepo) scanMany(query string, args ...any) ([]*entity.Ingrediente, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ingredientes: %w", err)
	}
	defer rows.Close()

	var out []*entity.Ingrediente
	for rows.Next() {
		var ing entity.Ingrediente
		if err := rows.Scan(
			&ing.ID, &ing.Nombre, &ing.Unidad, &ing.StockActual, &ing.StockMinimo,
			&ing.CostoPorUnidad, &ing.Activo, &ing.FechaCreacion,
		); err != nil {
			return nil, fmt.Errorf("scan ingrediente: %w", err)
		}
		out = append(out, &ing)
	}
	return out, rows.Err()
}
