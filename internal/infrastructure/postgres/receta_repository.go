package postgres

import (
	"context"
	"fmt"

	"github.com/gardengates/comanda-api/internal/domain/entity"
	"github.com/gardengates/comanda-api/internal/domain/repository"
)

var _ repository.RecetaRepository = (*RecetaRepo)(nil)

// RecetaRepo implementación de RecetaRepository sobre PostgreSQL
// (usable con pool o tx).
type RecetaRepo struct {
	q Querier
}

// NewRecetaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecetaRepository(q Querier) *RecetaRepo {
	return &RecetaRepo{q: q}
}

// ObtenerPorProducto devuelve las líneas de receta del ítem con nombre y
// unidad del ingrediente resueltos. Slice vacío si no tiene receta.
func (r *RecetaRepo) ObtenerPorProducto(productoID string) ([]*entity.RecetaLinea, error) {
	query := `
		SELECT r.producto_id, r.ingrediente_id, r.cantidad, i.nombre, i.unidad
		FROM recetas r
		JOIN ingredientes i ON i.id = r.ingrediente_id
		WHERE r.producto_id = $1
		ORDER BY i.nombre`
	rows, err := r.q.Query(context.Background(), query, productoID)
	if err != nil {
		return nil, fmt.Errorf("obtener receta: %w", err)
	}
	defer rows.Close()

	var out []*entity.RecetaLinea
	for rows.Next() {
		var l entity.RecetaLinea
		if err := rows.Scan(&l.ProductoID, &l.IngredienteID, &l.Cantidad,
			&l.IngredienteNombre, &l.IngredienteUnidad); err != nil {
			return nil, fmt.Errorf("scan receta: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

// AgregarLinea inserta una línea de receta.
func (r *RecetaRepo) AgregarLinea(linea *entity.RecetaLinea) error {
	query := `
		INSERT INTO recetas (producto_id, ingrediente_id, cantidad)
		VALUES ($1, $2, $3)
		ON CONFLICT (producto_id, ingrediente_id)
		DO UPDATE SET cantidad = EXCLUDED.cantidad`
	_, err := r.q.Exec(context.Background(), query,
		linea.ProductoID, linea.IngredienteID, linea.Cantidad)
	if err != nil {
		return fmt.Errorf("agregar linea receta: %w", err)
	}
	return nil
}

// EliminarPorProducto borra todas las líneas del ítem. Devuelve filas eliminadas.
func (r *RecetaRepo) EliminarPorProducto(productoID string) (int64, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM recetas WHERE producto_id = $1`, productoID)
	if err != nil {
		return 0, fmt.Errorf("eliminar receta: %w", err)
	}
	return tag.RowsAffected(), nil
}
