package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// VentaDiariaResult resultado crudo de la consulta de ventas de un día.
type VentaDiariaResult struct {
	Fecha        time.Time
	TotalPedidos int
	TotalVentas  decimal.Decimal
}

// ProductoPopularResult resultado crudo de la consulta de productos más pedidos.
type ProductoPopularResult struct {
	ProductoID     string
	ProductoNombre string
	VecesPedido    int
	TotalUnidades  decimal.Decimal
	TotalIngresos  decimal.Decimal
}

// VentaPorMozoResult resultado crudo de la consulta de ventas por mozo.
type VentaPorMozoResult struct {
	MozoNombre   string
	TotalPedidos int
	TotalVentas  decimal.Decimal
}

// ReporteRepository define las consultas de lectura para reportes.
// Las implementaciones son read-only; los pedidos cancelados se excluyen
// de ventas e ingresos.
type ReporteRepository interface {
	VentasDiarias(ctx context.Context, fecha time.Time) ([]VentaDiariaResult, error)
	ProductosPopulares(ctx context.Context, limit int) ([]ProductoPopularResult, error)
	VentasPorMozo(ctx context.Context) ([]VentaPorMozoResult, error)
}
