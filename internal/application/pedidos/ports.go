package pedidos

import (
	"context"

	"github.com/gardengates/comanda-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que abarca el pedido
// y el inventario: las altas del pedido y los descuentos de stock de todas sus
// líneas se confirman o se revierten juntos.
type TxRunner interface {
	RunPedido(ctx context.Context, fn func(
		ingRepo repository.IngredienteRepository,
		prepRepo repository.ProductoPreparadoRepository,
		recetaRepo repository.RecetaRepository,
		movRepo repository.MovimientoRepository,
		pedidoRepo repository.PedidoRepository,
	) error) error
}

// Publisher notifica eventos del ciclo de vida de pedidos a los clientes
// conectados. Las publicaciones ocurren solo después de confirmar la
// transacción; un evento nunca anuncia un estado que no se persistió.
type Publisher interface {
	Publish(evento string, datos any)
}
