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

var _ repository.ProductoPreparadoRepository = (*ProductoPreparadoRepo)(nil)

// ProductoPreparadoRepo implementación de ProductoPreparadoRepository sobre
// PostgreSQL (usable con pool o tx).
type ProductoPreparadoRepo struct {
	q Querier
}

// NewProductoPreparadoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoPreparadoRepository(q Querier) *ProductoPreparadoRepo {
	return &ProductoPreparadoRepo{q: q}
}

const productoPreparadoCols = `id, nombre, descripcion, unidad, stock_actual, stock_minimo, costo_por_unidad, fecha_creacion`

// Create persiste un producto preparado.
func (r *ProductoPreparadoRepo) Create(p *entity.ProductoPreparado) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := `
		INSERT INTO productos_preparados (id, nombre, descripcion, unidad, stock_actual, stock_minimo, costo_por_unidad, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.Unidad, p.StockActual, p.StockMinimo,
		p.CostoPorUnidad, p.FechaCreacion,
	)
	if err != nil {
		return fmt.Errorf("create producto preparado: %w", err)
	}
	return nil
}

// Update actualiza los datos del producto preparado.
func (r *ProductoPreparadoRepo) Update(p *entity.ProductoPreparado) error {
	query := `
		UPDATE productos_preparados
		SET nombre = $2, descripcion = $3, unidad = $4, stock_actual = $5, stock_minimo = $6, costo_por_unidad = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.Unidad, p.StockActual, p.StockMinimo, p.CostoPorUnidad,
	)
	if err != nil {
		return fmt.Errorf("update producto preparado: %w", err)
	}
	return nil
}

// Delete elimina el producto preparado. Devuelve false si no existe.
func (r *ProductoPreparadoRepo) Delete(id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM productos_preparados WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete producto preparado: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetByID obtiene un producto preparado por ID. nil si no existe.
func (r *ProductoPreparadoRepo) GetByID(id string) (*entity.ProductoPreparado, error) {
	query := `SELECT ` + productoPreparadoCols + ` FROM productos_preparados WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get producto preparado")
}

// List lista todos los productos preparados ordenados por nombre.
func (r *ProductoPreparadoRepo) List() ([]*entity.ProductoPreparado, error) {
	query := `SELECT ` + productoPreparadoCols + ` FROM productos_preparados ORDER BY nombre`
	return r.scanMany(query)
}

// ListBajoStock lista productos preparados en o bajo su stock mínimo.
func (r *ProductoPreparadoRepo) ListBajoStock() ([]*entity.ProductoPreparado, error) {
	query := `SELECT ` + productoPreparadoCols + `
		FROM productos_preparados
		WHERE stock_actual <= stock_minimo
		ORDER BY nombre`
	return r.scanMany(query)
}

// GetForUpdate obtiene el producto preparado y bloquea la fila (SELECT FOR UPDATE).
func (r *ProductoPreparadoRepo) GetForUpdate(id string) (*entity.ProductoPreparado, error) {
	query := `SELECT ` + productoPreparadoCols + ` FROM productos_preparados WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get producto preparado for update")
}

// UpdateStock fija el stock del producto preparado. Llamar solo con la fila bloqueada.
func (r *ProductoPreparadoRepo) UpdateStock(id string, stock decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos_preparados SET stock_actual = $2 WHERE id = $1`, id, stock)
	if err != nil {
		return fmt.Errorf("update stock producto preparado: %w", err)
	}
	return nil
}

func (r *ProductoPreparadoRepo) scanOne(row pgx.Row, op string) (*entity.ProductoPreparado, error) {
	var p entity.ProductoPreparado
	err := row.Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.Unidad, &p.StockActual, &p.StockMinimo,
		&p.CostoPorUnidad, &p.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func (r *ProductoPreparadoRepo) scanMany(query string, args ...any) ([]*entity.ProductoPreparado, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos preparados: %w", err)
	}
	defer rows.Close()

	var out []*entity.ProductoPreparado
	for rows.Next() {
		var p entity.ProductoPreparado
		if err := rows.Scan(
			&p.ID, &p.Nombre, &p.Descripcion, &p.Unidad, &p.StockActual, &p.StockMinimo,
			&p.CostoPorUnidad, &p.FechaCreacion,
		); err != nil {
			return nil, fmt.Errorf("scan producto preparado: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
