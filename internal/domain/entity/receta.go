package entity

import "github.com/shopspring/decimal"

// RecetaLinea es una línea de receta: cuánto ingrediente requiere una unidad
// del ítem producible (producto preparado o producto de venta clase general).
// Contrato: Cantidad está expresada POR UNIDAD de salida; el motor de
// inventario multiplica por la cantidad preparada o vendida.
type RecetaLinea struct {
	ProductoID    string // ítem producible
	IngredienteID string
	Cantidad      decimal.Decimal // > 0, por unidad de salida

	// Solo en lecturas con join; no se persiste en recetas.
	IngredienteNombre string
	IngredienteUnidad string
}

// Valida verifica la invariante de la línea.
func (l *RecetaLinea) Valida() bool {
	return l.ProductoID != "" && l.IngredienteID != "" && l.Cantidad.GreaterThan(decimal.Zero)
}
