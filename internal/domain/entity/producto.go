package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipo de inventario de un producto de venta: define cómo se descuenta stock al venderlo.
const (
	// TipoInventarioGeneral descuenta ingredientes según la receta del producto.
	TipoInventarioGeneral = "general"
	// TipoInventarioPreparado descuenta stock del producto preparado vinculado.
	TipoInventarioPreparado = "preparado"
)

// Producto es un ítem vendible de la carta.
type Producto struct {
	ID                  string
	Nombre              string
	Descripcion         string
	Precio              decimal.Decimal
	Categoria           string
	TipoInventario      string  // general | preparado
	ProductoPreparadoID *string // requerido cuando TipoInventario = preparado
	FechaCreacion       time.Time
}

// ObjetivoInventario resuelve una sola vez la clase de inventario del producto
// en una variante etiquetada, en lugar de ramificar sobre el string en cada sitio.
// ok es false cuando el producto es de tipo preparado pero no tiene vínculo.
func (p *Producto) ObjetivoInventario() (item ItemInventario, ok bool) {
	switch p.TipoInventario {
	case TipoInventarioPreparado:
		if p.ProductoPreparadoID == nil || *p.ProductoPreparadoID == "" {
			return ItemInventario{}, false
		}
		return ItemInventario{Clase: ClaseProductoPreparado, ID: *p.ProductoPreparadoID}, true
	default:
		// general: el stock se resuelve vía la receta del propio producto
		return ItemInventario{Clase: ClaseIngrediente, ID: p.ID}, true
	}
}
