package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gardengates/comanda-api/internal/domain/entity"
	"github.com/gardengates/comanda-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo inserta y lee: el libro nunca se edita.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create persiste un movimiento.
func (r *MovimientoRepo) Create(mov *entity.Movimiento) error {
	if mov.ID == "" {
		mov.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimientos_inventario (id, clase, item_id, tipo, cantidad, motivo, usuario_id, pedido_id, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.Clase, mov.ItemID, mov.Tipo, mov.Cantidad, mov.Motivo,
		mov.UsuarioID, mov.PedidoID, mov.FechaCreacion,
	)
	if err != nil {
		return fmt.Errorf("create movimiento: %w", err)
	}
	return nil
}

// List devuelve movimientos del más reciente al más antiguo, con el nombre del
// ítem resuelto según su clase de inventario, acotados opcionalmente por fechas.
func (r *MovimientoRepo) List(desde, hasta *time.Time) ([]*entity.Movimiento, error) {
	query := `
		SELECT m.id, m.clase, m.item_id, m.tipo, m.cantidad, m.motivo, m.usuario_id, m.pedido_id, m.fecha_creacion,
		       COALESCE(
		           CASE m.clase
		               WHEN 'ingrediente' THEN i.nombre
		               WHEN 'producto_preparado' THEN pp.nombre
		           END, '') AS item_nombre
		FROM movimientos_inventario m
		LEFT JOIN ingredientes i ON m.clase = 'ingrediente' AND i.id = m.item_id
		LEFT JOIN productos_preparados pp ON m.clase = 'producto_preparado' AND pp.id = m.item_id`
	args := []any{}
	pos := 1
	if desde != nil {
		query += fmt.Sprintf(" WHERE m.fecha_creacion >= $%d", pos)
		args = append(args, *desde)
		pos++
	}
	if hasta != nil {
		if pos == 1 {
			query += fmt.Sprintf(" WHERE m.fecha_creacion <= $%d", pos)
		} else {
			query += fmt.Sprintf(" AND m.fecha_creacion <= $%d", pos)
		}
		args = append(args, *hasta)
	}
	query += " ORDER BY m.fecha_creacion DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()

	var out []*entity.Movimiento
	for rows.Next() {
		var m entity.Movimiento
		if err := rows.Scan(&m.ID, &m.Clase, &m.ItemID, &m.Tipo, &m.Cantidad,
			&m.Motivo, &m.UsuarioID, &m.PedidoID, &m.FechaCreacion, &m.ItemNombre); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}
