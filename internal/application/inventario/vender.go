package inventario

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gardengates/comanda-api/internal/domain"
	"github.com/gardengates/comanda-api/internal/domain/entity"
	"github.com/gardengates/comanda-api/internal/domain/repository"
)

// Vender descuenta inventario por la venta de un producto de la carta, en su
// propia transacción. La clase de inventario del producto decide el efecto:
// preparado descuenta el stock del producto preparado vinculado; general
// descuenta los ingredientes de la receta del producto (requerido = cantidad
// de línea × cantidad vendida, dos pasadas).
func (uc *Engine) Vender(ctx context.Context, productoID string, cantidad decimal.Decimal, usuarioID string) error {
	if productoID == "" || !cantidad.GreaterThan(decimal.Zero) {
		return domain.ErrEntradaInvalida
	}

	producto, err := uc.productoRepo.GetByID(productoID)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNoEncontrado
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		ingRepo repository.IngredienteRepository,
		prepRepo repository.ProductoPreparadoRepository,
		recetaRepo repository.RecetaRepository,
		movRepo repository.MovimientoRepository,
	) error {
		return uc.VenderEnTx(ingRepo, prepRepo, recetaRepo, movRepo, producto, cantidad, usuarioID, nil, now)
	})
}

// VenderEnTx ejecuta la venta usando los repositorios proporcionados (misma
// transacción del caller). Lo usa el flujo de pedidos para envolver N líneas
// de venta junto con los inserts del pedido en una sola unidad atómica;
// pedidoID, si no es nil, queda referenciado en cada movimiento.
func (uc *Engine) VenderEnTx(
	ingRepo repository.IngredienteRepository,
	prepRepo repository.ProductoPreparadoRepository,
	recetaRepo repository.RecetaRepository,
	movRepo repository.MovimientoRepository,
	producto *entity.Producto,
	cantidad decimal.Decimal,
	usuarioID string,
	pedidoID *string,
	now time.Time,
) error {
	if !cantidad.GreaterThan(decimal.Zero) {
		return domain.ErrEntradaInvalida
	}

	// La clase de inventario se resuelve una sola vez en una variante etiquetada.
	objetivo, ok := producto.ObjetivoInventario()
	if !ok {
		return domain.ErrSinProductoPreparado
	}

	switch objetivo.Clase {
	case entity.ClaseProductoPreparado:
		return venderPreparadoEnTx(prepRepo, movRepo, objetivo.ID, cantidad, usuarioID, pedidoID, now)
	default:
		return uc.venderPorReceta(ingRepo, recetaRepo, movRepo, producto.ID, cantidad, usuarioID, pedidoID, now)
	}
}

// VenderPreparado vende stock de un producto preparado directamente por su ID,
// sin pasar por un producto de la carta.
func (uc *Engine) VenderPreparado(ctx context.Context, productoPreparadoID string, cantidad decimal.Decimal, usuarioID string) error {
	if productoPreparadoID == "" || !cantidad.GreaterThan(decimal.Zero) {
		return domain.ErrEntradaInvalida
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		_ repository.IngredienteRepository,
		prepRepo repository.ProductoPreparadoRepository,
		_ repository.RecetaRepository,
		movRepo repository.MovimientoRepository,
	) error {
		return venderPreparadoEnTx(prepRepo, movRepo, productoPreparadoID, cantidad, usuarioID, nil, now)
	})
}

// venderPreparadoEnTx bloquea la fila del producto preparado, verifica
// suficiencia, descuenta y registra el movimiento de salida.
func venderPreparadoEnTx(
	prepRepo repository.ProductoPreparadoRepository,
	movRepo repository.MovimientoRepository,
	productoPreparadoID string,
	cantidad decimal.Decimal,
	usuarioID string,
	pedidoID *string,
	now time.Time,
) error {
	prep, err := prepRepo.GetForUpdate(productoPreparadoID)
	if err != nil {
		return err
	}
	if prep == nil {
		return domain.ErrNoEncontrado
	}
	if prep.StockActual.LessThan(cantidad) {
		return domain.NuevoSinStock(prep.Nombre, prep.Unidad, prep.StockActual, cantidad)
	}
	if err := prepRepo.UpdateStock(prep.ID, prep.StockActual.Sub(cantidad)); err != nil {
		return err
	}
	return movRepo.Create(&entity.Movimiento{
		Clase:         entity.ClaseProductoPreparado,
		ItemID:        prep.ID,
		Tipo:          entity.MovimientoSalida,
		Cantidad:      cantidad,
		Motivo:        entity.MotivoVenta,
		UsuarioID:     usuarioID,
		PedidoID:      pedidoID,
		FechaCreacion: now,
	})
}

// venderPorReceta descuenta los ingredientes de la receta del producto:
// verificar-todo (con filas bloqueadas) y después aplicar-todo, para que una
// insuficiencia tardía no deje líneas anteriores parcialmente descontadas.
func (uc *Engine) venderPorReceta(
	ingRepo repository.IngredienteRepository,
	recetaRepo repository.RecetaRepository,
	movRepo repository.MovimientoRepository,
	productoID string,
	cantidad decimal.Decimal,
	usuarioID string,
	pedidoID *string,
	now time.Time,
) error {
	lineas, err := recetaRepo.ObtenerPorProducto(productoID)
	if err != nil {
		return err
	}
	if len(lineas) == 0 {
		return domain.ErrSinReceta
	}

	requeridas, sinStock, err := verificarLineas(ingRepo, lineas, cantidad)
	if err != nil {
		return err
	}
	if sinStock != nil {
		return sinStock
	}
	return aplicarSalidas(ingRepo, movRepo, requeridas, entity.MotivoVenta, usuarioID, pedidoID, now)
}
