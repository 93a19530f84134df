package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Clases de inventario sobre las que se registran movimientos.
const (
	ClaseIngrediente       = "ingrediente"
	ClaseProductoPreparado = "producto_preparado"
)

// Tipos de movimiento.
const (
	MovimientoEntrada = "entrada"
	MovimientoSalida  = "salida"
)

// Motivos estándar escritos por el motor de inventario.
const (
	MotivoPreparacion  = "Preparación automática de producto"
	MotivoVenta        = "Venta"
	MotivoVentaDirecta = "Venta directa"
)

// ItemInventario identifica un ítem junto con su clase de inventario (variante etiquetada).
type ItemInventario struct {
	Clase string // ingrediente | producto_preparado
	ID    string
}

// Movimiento es una entrada del libro de movimientos de inventario.
// Solo inserción: nunca se actualiza ni elimina; es la única fuente
// del histórico de inventario.
type Movimiento struct {
	ID            string
	Clase         string          // ingrediente | producto_preparado
	ItemID        string
	Tipo          string          // entrada | salida
	Cantidad      decimal.Decimal // siempre positiva; el signo lo da Tipo
	Motivo        string
	UsuarioID     string
	PedidoID      *string // venta asociada a un pedido, si aplica
	FechaCreacion time.Time

	// Solo en lecturas con join.
	ItemNombre string
}
