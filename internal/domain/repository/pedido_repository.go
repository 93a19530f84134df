package repository

import (
	"github.com/shopspring/decimal"

	"github.com/gardengates/comanda-api/internal/domain/entity"
)

// PedidoRepository define el puerto de persistencia para pedidos y sus detalles.
type PedidoRepository interface {
	Create(p *entity.Pedido) error
	UpdateEstado(id, estado string) (*entity.Pedido, error)
	UpdateTotal(id string, total decimal.Decimal) error
	// Delete elimina el pedido (los detalles se eliminan antes). Devuelve false si no existe.
	Delete(id string) (bool, error)
	GetByID(id string) (*entity.Pedido, error)
	List() ([]*entity.Pedido, error)
	// ListByMesa excluye pedidos ya entregados.
	ListByMesa(mesaID string) ([]*entity.Pedido, error)
	ListByEstado(estado string) ([]*entity.Pedido, error)

	CreateDetalle(d *entity.DetallePedido) error
	GetDetalles(pedidoID string) ([]*entity.DetallePedido, error)
	UpdateEstadoDetalles(pedidoID, estado string) error
	DeleteDetalles(pedidoID string) error
}
