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

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementación de PedidoRepository sobre PostgreSQL
// (usable con pool o tx).
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

// Lecturas de pedidos siempre con mesa y mozo resueltos.
const pedidoSelect = `
	SELECT p.id, p.mesa_id, p.usuario_id, p.estado, p.total, p.fecha_creacion, p.fecha_actualizacion,
	       COALESCE(m.numero, 0), COALESCE(u.nombre, '')
	FROM pedidos p
	LEFT JOIN mesas m ON m.id = p.mesa_id
	LEFT JOIN usuarios u ON u.id = p.usuario_id`

// Create persiste el pedido (sin detalles).
func (r *PedidoRepo) Create(p *entity.Pedido) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := `
		INSERT INTO pedidos (id, mesa_id, usuario_id, estado, total, fecha_creacion, fecha_actualizacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.MesaID, p.UsuarioID, p.Estado, p.Total, p.FechaCreacion, p.FechaActualizacion,
	)
	if err != nil {
		return fmt.Errorf("create pedido: %w", err)
	}
	return nil
}

// UpdateEstado cambia el estado del pedido y devuelve la fila actualizada.
// nil si el pedido no existe.
func (r *PedidoRepo) UpdateEstado(id, estado string) (*entity.Pedido, error) {
	query := `
		UPDATE pedidos SET estado = $2, fecha_actualizacion = now()
		WHERE id = $1
		RETURNING id, mesa_id, usuario_id, estado, total, fecha_creacion, fecha_actualizacion`
	var p entity.Pedido
	err := r.q.QueryRow(context.Background(), query, id, estado).Scan(
		&p.ID, &p.MesaID, &p.UsuarioID, &p.Estado, &p.Total, &p.FechaCreacion, &p.FechaActualizacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update estado pedido: %w", err)
	}
	return &p, nil
}

// UpdateTotal fija el total derivado de los detalles.
func (r *PedidoRepo) UpdateTotal(id string, total decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE pedidos SET total = $2, fecha_actualizacion = now() WHERE id = $1`, id, total)
	if err != nil {
		return fmt.Errorf("update total pedido: %w", err)
	}
	return nil
}

// Delete elimina el pedido. Devuelve false si no existe.
func (r *PedidoRepo) Delete(id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM pedidos WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete pedido: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetByID obtiene un pedido por ID. nil si no existe.
func (r *PedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	query := pedidoSelect + ` WHERE p.id = $1`
	var p entity.Pedido
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.MesaID, &p.UsuarioID, &p.Estado, &p.Total,
		&p.FechaCreacion, &p.FechaActualizacion, &p.MesaNumero, &p.MozoNombre,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &p, nil
}

// List lista todos los pedidos, los más recientes primero.
func (r *PedidoRepo) List() ([]*entity.Pedido, error) {
	return r.scanMany(pedidoSelect + ` ORDER BY p.fecha_creacion DESC`)
}

// ListByMesa lista los pedidos activos de una mesa (excluye entregados).
func (r *PedidoRepo) ListByMesa(mesaID string) ([]*entity.Pedido, error) {
	query := pedidoSelect + ` WHERE p.mesa_id = $1 AND p.estado <> 'entregado' ORDER BY p.fecha_creacion DESC`
	return r.scanMany(query, mesaID)
}

// ListByEstado filtra pedidos por estado.
func (r *PedidoRepo) ListByEstado(estado string) ([]*entity.Pedido, error) {
	query := pedidoSelect + ` WHERE p.estado = $1 ORDER BY p.fecha_creacion DESC`
	return r.scanMany(query, estado)
}

// CreateDetalle persiste una línea del pedido.
func (r *PedidoRepo) CreateDetalle(d *entity.DetallePedido) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	query := `
		INSERT INTO detalles_pedido (id, pedido_id, producto_id, cantidad, notas, precio, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.PedidoID, d.ProductoID, d.Cantidad, d.Notas, d.Precio, d.Estado,
	)
	if err != nil {
		return fmt.Errorf("create detalle pedido: %w", err)
	}
	return nil
}

// GetDetalles devuelve las líneas del pedido con el nombre del producto resuelto.
func (r *PedidoRepo) GetDetalles(pedidoID string) ([]*entity.DetallePedido, error) {
	query := `
		SELECT d.id, d.pedido_id, d.producto_id, d.cantidad, d.notas, d.precio, d.estado,
		       COALESCE(pr.nombre, '')
		FROM detalles_pedido d
		LEFT JOIN productos pr ON pr.id = d.producto_id
		WHERE d.pedido_id = $1
		ORDER BY d.id`
	rows, err := r.q.Query(context.Background(), query, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("get detalles pedido: %w", err)
	}
	defer rows.Close()

	var out []*entity.DetallePedido
	for rows.Next() {
		var d entity.DetallePedido
		if err := rows.Scan(&d.ID, &d.PedidoID, &d.ProductoID, &d.Cantidad,
			&d.Notas, &d.Precio, &d.Estado, &d.ProductoNombre); err != nil {
			return nil, fmt.Errorf("scan detalle pedido: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

// UpdateEstadoDetalles propaga un estado a todas las líneas del pedido.
func (r *PedidoRepo) UpdateEstadoDetalles(pedidoID, estado string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE detalles_pedido SET estado = $2 WHERE pedido_id = $1`, pedidoID, estado)
	if err != nil {
		return fmt.Errorf("update estado detalles: %w", err)
	}
	return nil
}

// DeleteDetalles borra todas las líneas del pedido.
func (r *PedidoRepo) DeleteDetalles(pedidoID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM detalles_pedido WHERE pedido_id = $1`, pedidoID)
	if err != nil {
		return fmt.Errorf("delete detalles pedido: %w", err)
	}
	return nil
}

func (r *PedidoRepo) scanMany(query string, args ...any) ([]*entity.Pedido, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()

	var out []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		if err := rows.Scan(
			&p.ID, &p.MesaID, &p.UsuarioID, &p.Estado, &p.Total,
			&p.FechaCreacion, &p.FechaActualizacion, &p.MesaNumero, &p.MozoNombre,
		); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
