package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingrediente representa una materia prima con stock propio.
// StockActual solo se muta vía el motor de inventario (fila bloqueada) o edición administrativa.
type Ingrediente struct {
	ID             string
	Nombre         string
	Unidad         string // kg, l, unidad, etc.
	StockActual    decimal.Decimal
	StockMinimo    decimal.Decimal
	CostoPorUnidad decimal.Decimal
	Activo         bool
	FechaCreacion  time.Time
}

// BajoMinimo indica si el stock está en o por debajo del mínimo configurado.
func (i *Ingrediente) BajoMinimo() bool {
	return i.StockActual.LessThanOrEqual(i.StockMinimo)
}
