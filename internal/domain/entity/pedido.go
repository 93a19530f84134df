package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del pedido.
const (
	EstadoPendiente  = "pendiente"
	EstadoConfirmado = "confirmado"
	EstadoPreparando = "preparando"
	EstadoListo      = "listo"
	EstadoEntregado  = "entregado"
	EstadoCancelado  = "cancelado"
)

// transiciones válidas del estado de un pedido.
// cancelado solo es alcanzable antes de que cocina empiece (pendiente o confirmado).
var transiciones = map[string][]string{
	EstadoPendiente:  {EstadoConfirmado, EstadoCancelado},
	EstadoConfirmado: {EstadoPreparando, EstadoCancelado},
	EstadoPreparando: {EstadoListo},
	EstadoListo:      {EstadoEntregado},
}

// TransicionValida indica si un pedido puede pasar de estado actual a nuevo.
func TransicionValida(actual, nuevo string) bool {
	for _, e := range transiciones[actual] {
		if e == nuevo {
			return true
		}
	}
	return false
}

// EstadoConocido indica si el string es un estado del pedido.
func EstadoConocido(estado string) bool {
	switch estado {
	case EstadoPendiente, EstadoConfirmado, EstadoPreparando, EstadoListo, EstadoEntregado, EstadoCancelado:
		return true
	}
	return false
}

// Pedido es una comanda de mesa. El inventario se compromete al crearlo;
// Total es derivado de sus detalles y se recalcula cuando estos cambian.
type Pedido struct {
	ID                 string
	MesaID             string
	UsuarioID          string
	Estado             string
	Total              decimal.Decimal
	FechaCreacion      time.Time
	FechaActualizacion time.Time

	// Solo en lecturas con join.
	MesaNumero int
	MozoNombre string
}

// DetallePedido es una línea del pedido con el precio al momento de ordenar.
type DetallePedido struct {
	ID         string
	PedidoID   string
	ProductoID string
	Cantidad   decimal.Decimal
	Notas      string
	Precio     decimal.Decimal // precio unitario al momento del pedido
	Estado     string

	// Solo en lecturas con join.
	ProductoNombre string
}

// Subtotal de la línea (precio × cantidad).
func (d *DetallePedido) Subtotal() decimal.Decimal {
	return d.Precio.Mul(d.Cantidad)
}
