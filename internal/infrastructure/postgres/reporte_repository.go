package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/gardengates/comanda-api/internal/domain/repository"
)

var _ repository.ReporteRepository = (*ReporteRepo)(nil)

// ReporteRepo consultas de lectura para reportes sobre PostgreSQL.
// Todas excluyen pedidos cancelados.
type ReporteRepo struct {
	q Querier
}

// NewReporteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReporteRepository(q Querier) *ReporteRepo {
	return &ReporteRepo{q: q}
}

// VentasDiarias agrega pedidos y ventas del día indicado.
func (r *ReporteRepo) VentasDiarias(ctx context.Context, fecha time.Time) ([]repository.VentaDiariaResult, error) {
	query := `
		SELECT date_trunc('day', fecha_creacion) AS dia,
		       COUNT(*) AS total_pedidos,
		       COALESCE(SUM(total), 0) AS total_ventas
		FROM pedidos
		WHERE estado <> 'cancelado'
		  AND fecha_creacion >= $1 AND fecha_creacion < $1 + interval '1 day'
		GROUP BY dia
		ORDER BY dia`
	dia := time.Date(fecha.Year(), fecha.Month(), fecha.Day(), 0, 0, 0, 0, fecha.Location())
	rows, err := r.q.Query(ctx, query, dia)
	if err != nil {
		return nil, fmt.Errorf("ventas diarias: %w", err)
	}
	defer rows.Close()

	var out []repository.VentaDiariaResult
	for rows.Next() {
		var v repository.VentaDiariaResult
		if err := rows.Scan(&v.Fecha, &v.TotalPedidos, &v.TotalVentas); err != nil {
			return nil, fmt.Errorf("scan venta diaria: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// ProductosPopulares ranking de productos por veces pedido.
func (r *ReporteRepo) ProductosPopulares(ctx context.Context, limit int) ([]repository.ProductoPopularResult, error) {
	query := `
		SELECT d.producto_id,
		       COALESCE(pr.nombre, '') AS producto_nombre,
		       COUNT(*) AS veces_pedido,
		       COALESCE(SUM(d.cantidad), 0) AS total_unidades,
		       COALESCE(SUM(d.cantidad * d.precio), 0) AS total_ingresos
		FROM detalles_pedido d
		JOIN pedidos p ON p.id = d.pedido_id AND p.estado <> 'cancelado'
		LEFT JOIN productos pr ON pr.id = d.producto_id
		GROUP BY d.producto_id, pr.nombre
		ORDER BY veces_pedido DESC, total_unidades DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("productos populares: %w", err)
	}
	defer rows.Close()

	var out []repository.ProductoPopularResult
	for rows.Next() {
		var p repository.ProductoPopularResult
		if err := rows.Scan(&p.ProductoID, &p.ProductoNombre, &p.VecesPedido,
			&p.TotalUnidades, &p.TotalIngresos); err != nil {
			return nil, fmt.Errorf("scan producto popular: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// VentasPorMozo agregado histórico de ventas por mozo.
func (r *ReporteRepo) VentasPorMozo(ctx context.Context) ([]repository.VentaPorMozoResult, error) {
	query := `
		SELECT COALESCE(u.nombre, '') AS mozo_nombre,
		       COUNT(*) AS total_pedidos,
		       COALESCE(SUM(p.total), 0) AS total_ventas
		FROM pedidos p
		LEFT JOIN usuarios u ON u.id = p.usuario_id
		WHERE p.estado <> 'cancelado'
		GROUP BY u.nombre
		ORDER BY total_ventas DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ventas por mozo: %w", err)
	}
	defer rows.Close()

	var out []repository.VentaPorMozoResult
	for rows.Next() {
		var v repository.VentaPorMozoResult
		if err := rows.Scan(&v.MozoNombre, &v.TotalPedidos, &v.TotalVentas); err != nil {
			return nil, fmt.Errorf("scan venta por mozo: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
