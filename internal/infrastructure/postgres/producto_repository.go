package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gardengates/comanda-api/internal/domain/entity"
	"github.com/gardengates/comanda-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación de ProductoRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoCols = `id, nombre, descripcion, precio, categoria, tipo_inventario, producto_preparado_id, fecha_creacion`

// Create persiste un producto de la carta.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := `
		INSERT INTO productos (id, nombre, descripcion, precio, categoria, tipo_inventario, producto_preparado_id, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.Precio, p.Categoria,
		p.TipoInventario, p.ProductoPreparadoID, p.FechaCreacion,
	)
	if err != nil {
		return fmt.Errorf("create producto: %w", err)
	}
	return nil
}

// Update actualiza el producto.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $2, descripcion = $3, precio = $4, categoria = $5, tipo_inventario = $6, producto_preparado_id = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.Precio, p.Categoria,
		p.TipoInventario, p.ProductoPreparadoID,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// Delete elimina el producto. Devuelve false si no existe.
func (r *ProductoRepo) Delete(id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete producto: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetByID obtiene un producto por ID. nil si no existe.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos WHERE id = $1`
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Categoria,
		&p.TipoInventario, &p.ProductoPreparadoID, &p.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// List lista todos los productos ordenados por categoría y nombre.
func (r *ProductoRepo) List() ([]*entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos ORDER BY categoria, nombre`
	return r.scanMany(query)
}

// ListByCategoria filtra productos por categoría.
func (r *ProductoRepo) ListByCategoria(categoria string) ([]*entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos WHERE categoria = $1 ORDER BY nombre`
	return r.scanMany(query, categoria)
}

// Buscar busca por nombre o descripción (ILIKE).
func (r *ProductoRepo) Buscar(termino string) ([]*entity.Producto, error) {
	query := `SELECT ` + productoCols + `
		FROM productos
		WHERE nombre ILIKE '%' || $1 || '%' OR descripcion ILIKE '%' || $1 || '%'
		ORDER BY nombre`
	return r.scanMany(query, termino)
}

func (r *ProductoRepo) scanMany(query string, args ...any) ([]*entity.Producto, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var out []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(
			&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Categoria,
			&p.TipoInventario, &p.ProductoPreparadoID, &p.FechaCreacion,
		); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
