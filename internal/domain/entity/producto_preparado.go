package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductoPreparado es un bien intermedio o terminado con stock propio,
// repuesto mediante preparaciones (receta de ingredientes) y consumido en ventas.
// Clase de inventario distinta de Ingrediente: nunca se unifican en una tabla.
type ProductoPreparado struct {
	ID             string
	Nombre         string
	Descripcion    string
	Unidad         string
	StockActual    decimal.Decimal
	StockMinimo    decimal.Decimal
	CostoPorUnidad decimal.Decimal
	FechaCreacion  time.Time
}

// BajoMinimo indica si el stock está en o por debajo del mínimo configurado.
func (p *ProductoPreparado) BajoMinimo() bool {
	return p.StockActual.LessThanOrEqual(p.StockMinimo)
}
