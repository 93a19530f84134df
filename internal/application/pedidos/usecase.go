package pedidos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/gardengates/comanda-api/internal/application/dto"
	"github.com/gardengates/comanda-api/internal/application/inventario"
	"github.com/gardengates/comanda-api/internal/domain"
	"github.com/gardengates/comanda-api/internal/domain/entity"
	"github.com/gardengates/comanda-api/internal/domain/repository"
)

// Eventos publicados a los clientes en tiempo real.
const (
	EventoPedidoCreado      = "pedidoCreado"
	EventoPedidoActualizado = "pedidoActualizado"
	EventoPedidoEliminado   = "pedidoEliminado"
)

// PedidoUseCase orquesta el ciclo de vida de los pedidos. La creación
// compromete inventario: cada línea descuenta stock vía el motor dentro de la
// misma transacción que inserta el pedido.
type PedidoUseCase struct {
	txRunner     TxRunner
	engine       *inventario.Engine
	pedidoRepo   repository.PedidoRepository
	productoRepo repository.ProductoRepository
	mesaRepo     repository.MesaRepository
	publisher    Publisher
}

func NewPedidoUseCase(
	txRunner TxRunner,
	engine *inventario.Engine,
	pedidoRepo repository.PedidoRepository,
	productoRepo repository.ProductoRepository,
	mesaRepo repository.MesaRepository,
	publisher Publisher,
) *PedidoUseCase {
	return &PedidoUseCase{
		txRunner:     txRunner,
		engine:       engine,
		pedidoRepo:   pedidoRepo,
		productoRepo: productoRepo,
		mesaRepo:     mesaRepo,
		publisher:    publisher,
	}
}

// CrearPedido registra el pedido con sus líneas y descuenta el inventario de
// todas ellas en una sola transacción. Si alguna línea no tiene stock
// suficiente, nada se persiste y el error agrega todos los faltantes.
// El evento pedidoCreado se publica solo tras confirmar.
func (uc *PedidoUseCase) CrearPedido(ctx context.Context, req *dto.CrearPedidoRequest, usuarioID string) (*dto.PedidoResponse, error) {
	if req.MesaID == "" || len(req.Detalles) == 0 {
		return nil, domain.ErrEntradaInvalida
	}
	for _, d := range req.Detalles {
		if d.ProductoID == "" || !d.Cantidad.GreaterThan(decimal.Zero) {
			return nil, domain.ErrEntradaInvalida
		}
	}

	mesa, err := uc.mesaRepo.GetByID(req.MesaID)
	if err != nil {
		return nil, err
	}
	if mesa == nil {
		return nil, domain.ErrNoEncontrado
	}

	// Los productos se resuelven fuera de la transacción; el precio vigente
	// queda congelado en cada detalle.
	productos := make([]*entity.Producto, len(req.Detalles))
	for i, d := range req.Detalles {
		p, err := uc.productoRepo.GetByID(d.ProductoID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.ErrNoEncontrado
		}
		productos[i] = p
	}

	now := time.Now()
	pedido := &entity.Pedido{
		ID:                 uuid.NewString(),
		MesaID:             req.MesaID,
		UsuarioID:          usuarioID,
		Estado:             entity.EstadoPendiente,
		Total:              decimal.Zero,
		FechaCreacion:      now,
		FechaActualizacion: now,
	}

	detalles := make([]*entity.DetallePedido, 0, len(req.Detalles))
	err = uc.txRunner.RunPedido(ctx, func(
		ingRepo repository.IngredienteRepository,
		prepRepo repository.ProductoPreparadoRepository,
		recetaRepo repository.RecetaRepository,
		movRepo repository.MovimientoRepository,
		pedidoRepo repository.PedidoRepository,
	) error {
		if err := pedidoRepo.Create(pedido); err != nil {
			return err
		}

		total := decimal.Zero
		for i, d := range req.Detalles {
			detalle := &entity.DetallePedido{
				ID:         uuid.NewString(),
				PedidoID:   pedido.ID,
				ProductoID: d.ProductoID,
				Cantidad:   d.Cantidad,
				Notas:      d.Notas,
				Precio:     productos[i].Precio,
				Estado:     entity.EstadoPendiente,
			}
			if err := pedidoRepo.CreateDetalle(detalle); err != nil {
				return err
			}
			if err := uc.engine.VenderEnTx(ingRepo, prepRepo, recetaRepo, movRepo, productos[i], d.Cantidad, usuarioID, &pedido.ID, now); err != nil {
				return err
			}
			detalle.ProductoNombre = productos[i].Nombre
			detalles = append(detalles, detalle)
			total = total.Add(detalle.Subtotal())
		}

		if err := pedidoRepo.UpdateTotal(pedido.ID, total); err != nil {
			return err
		}
		pedido.Total = total
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := pedidoResponse(pedido, detalles)
	log.Info().Str("pedido_id", pedido.ID).Str("mesa_id", pedido.MesaID).
		Str("total", pedido.Total.String()).Msg("pedido creado")
	uc.publisher.Publish(EventoPedidoCreado, resp)
	return resp, nil
}

// ActualizarEstado mueve el pedido por su máquina de estados. Las transiciones
// fuera del grafo (incluido cancelar un pedido ya en cocina) se rechazan.
// Los detalles acompañan el estado del pedido.
func (uc *PedidoUseCase) ActualizarEstado(ctx context.Context, pedidoID, nuevoEstado string) (*dto.PedidoResponse, error) {
	if !entity.EstadoConocido(nuevoEstado) {
		return nil, domain.ErrEntradaInvalida
	}

	pedido, err := uc.pedidoRepo.GetByID(pedidoID)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNoEncontrado
	}
	if !entity.TransicionValida(pedido.Estado, nuevoEstado) {
		return nil, domain.ErrTransicionEstado
	}

	actualizado, err := uc.pedidoRepo.UpdateEstado(pedidoID, nuevoEstado)
	if err != nil {
		return nil, err
	}
	if err := uc.pedidoRepo.UpdateEstadoDetalles(pedidoID, nuevoEstado); err != nil {
		return nil, err
	}

	detalles, err := uc.pedidoRepo.GetDetalles(pedidoID)
	if err != nil {
		return nil, err
	}

	resp := pedidoResponse(actualizado, detalles)
	log.Info().Str("pedido_id", pedidoID).Str("estado", nuevoEstado).Msg("pedido actualizado")
	uc.publisher.Publish(EventoPedidoActualizado, resp)
	return resp, nil
}

// EliminarPedido borra el pedido y sus detalles. No repone inventario: los
// movimientos ya registrados quedan como historial de lo consumido.
func (uc *PedidoUseCase) EliminarPedido(ctx context.Context, pedidoID string) error {
	pedido, err := uc.pedidoRepo.GetByID(pedidoID)
	if err != nil {
		return err
	}
	if pedido == nil {
		return domain.ErrNoEncontrado
	}

	err = uc.txRunner.RunPedido(ctx, func(
		_ repository.IngredienteRepository,
		_ repository.ProductoPreparadoRepository,
		_ repository.RecetaRepository,
		_ repository.MovimientoRepository,
		pedidoRepo repository.PedidoRepository,
	) error {
		if err := pedidoRepo.DeleteDetalles(pedidoID); err != nil {
			return err
		}
		ok, err := pedidoRepo.Delete(pedidoID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNoEncontrado
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Str("pedido_id", pedidoID).Msg("pedido eliminado")
	uc.publisher.Publish(EventoPedidoEliminado, map[string]string{"id": pedidoID})
	return nil
}

// ObtenerConDetalles devuelve el pedido con sus líneas.
func (uc *PedidoUseCase) ObtenerConDetalles(ctx context.Context, pedidoID string) (*dto.PedidoResponse, error) {
	pedido, err := uc.pedidoRepo.GetByID(pedidoID)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNoEncontrado
	}
	detalles, err := uc.pedidoRepo.GetDetalles(pedidoID)
	if err != nil {
		return nil, err
	}
	return pedidoResponse(pedido, detalles), nil
}

// Listar devuelve todos los pedidos, sin detalles.
func (uc *PedidoUseCase) Listar(ctx context.Context) ([]*dto.PedidoResponse, error) {
	pedidos, err := uc.pedidoRepo.List()
	if err != nil {
		return nil, err
	}
	return pedidosResponse(pedidos), nil
}

// ListarPorMesa devuelve los pedidos activos de una mesa (excluye entregados).
func (uc *PedidoUseCase) ListarPorMesa(ctx context.Context, mesaID string) ([]*dto.PedidoResponse, error) {
	pedidos, err := uc.pedidoRepo.ListByMesa(mesaID)
	if err != nil {
		return nil, err
	}
	return pedidosResponse(pedidos), nil
}

// ListarPorEstado filtra pedidos por estado.
func (uc *PedidoUseCase) ListarPorEstado(ctx context.Context, estado string) ([]*dto.PedidoResponse, error) {
	if !entity.EstadoConocido(estado) {
		return nil, domain.ErrEntradaInvalida
	}
	pedidos, err := uc.pedidoRepo.ListByEstado(estado)
	if err != nil {
		return nil, err
	}
	return pedidosResponse(pedidos), nil
}

func pedidoResponse(p *entity.Pedido, detalles []*entity.DetallePedido) *dto.PedidoResponse {
	resp := &dto.PedidoResponse{
		ID:                 p.ID,
		MesaID:             p.MesaID,
		MesaNumero:         p.MesaNumero,
		UsuarioID:          p.UsuarioID,
		MozoNombre:         p.MozoNombre,
		Estado:             p.Estado,
		Total:              p.Total,
		FechaCreacion:      p.FechaCreacion,
		FechaActualizacion: p.FechaActualizacion,
	}
	for _, d := range detalles {
		resp.Detalles = append(resp.Detalles, dto.DetalleResponse{
			ID:             d.ID,
			ProductoID:     d.ProductoID,
			ProductoNombre: d.ProductoNombre,
			Cantidad:       d.Cantidad,
			Notas:          d.Notas,
			Precio:         d.Precio,
			Estado:         d.Estado,
		})
	}
	return resp
}

func pedidosResponse(pedidos []*entity.Pedido) []*dto.PedidoResponse {
	out := make([]*dto.PedidoResponse, 0, len(pedidos))
	for _, p := range pedidos {
		out = append(out, pedidoResponse(p, nil))
	}
	return out
}
