package inventario

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gardengates/comanda-api/internal/domain"
	"github.com/gardengates/comanda-api/internal/domain/entity"
	"github.com/gardengates/comanda-api/internal/domain/repository"
)

// Engine es el motor de transacciones de inventario: preparación (ingredientes
// → producto preparado), venta (stock → ingreso) y venta directa. Cada
// operación es una unidad atómica: bloquea con SELECT FOR UPDATE toda fila de
// stock que vaya a mutar, verifica suficiencia en dos pasadas
// (verificar-todo / aplicar-todo) y registra un movimiento por cada cambio.
//
// Política de cantidades: las líneas de receta están expresadas por unidad de
// salida, de modo que lo requerido es siempre cantidad_linea × cantidad
// preparada o vendida, uniforme en Preparar y Vender.
type Engine struct {
	txRunner     TxRunner
	productoRepo repository.ProductoRepository
}

// NewEngine construye el motor.
func NewEngine(txRunner TxRunner, productoRepo repository.ProductoRepository) *Engine {
	return &Engine{txRunner: txRunner, productoRepo: productoRepo}
}

// lineaRequerida par fila-bloqueada / cantidad a descontar, resultado de la
// primera pasada de verificación.
type lineaRequerida struct {
	ingrediente *entity.Ingrediente
	requerido   decimal.Decimal
}

// Preparar convierte stock de ingredientes en stock del producto preparado
// según su receta. Devuelve el producto preparado con el stock actualizado.
// Falla con ErrSinReceta si el producto no tiene líneas de receta y con
// SinStockError (agregado) si algún ingrediente no alcanza; en ese caso no se
// aplica ningún efecto.
func (uc *Engine) Preparar(ctx context.Context, productoPreparadoID string, cantidad decimal.Decimal, usuarioID string) (*entity.ProductoPreparado, error) {
	if productoPreparadoID == "" || !cantidad.GreaterThan(decimal.Zero) {
		return nil, domain.ErrEntradaInvalida
	}

	now := time.Now()
	var resultado *entity.ProductoPreparado

	err := uc.txRunner.Run(ctx, func(
		ingRepo repository.IngredienteRepository,
		prepRepo repository.ProductoPreparadoRepository,
		recetaRepo repository.RecetaRepository,
		movRepo repository.MovimientoRepository,
	) error {
		// Bloquea primero el producto preparado: serializa preparaciones y
		// ventas concurrentes del mismo producto.
		prep, err := prepRepo.GetForUpdate(productoPreparadoID)
		if err != nil {
			return err
		}
		if prep == nil {
			return domain.ErrNoEncontrado
		}

		lineas, err := recetaRepo.ObtenerPorProducto(productoPreparadoID)
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

		if err := aplicarSalidas(ingRepo, movRepo, requeridas, entity.MotivoPreparacion, usuarioID, nil, now); err != nil {
			return err
		}

		// Entrada del producto preparado por la cantidad del lote.
		prep.StockActual = prep.StockActual.Add(cantidad)
		if err := prepRepo.UpdateStock(prep.ID, prep.StockActual); err != nil {
			return err
		}
		if err := movRepo.Create(&entity.Movimiento{
			Clase:         entity.ClaseProductoPreparado,
			ItemID:        prep.ID,
			Tipo:          entity.MovimientoEntrada,
			Cantidad:      cantidad,
			Motivo:        entity.MotivoPreparacion,
			UsuarioID:     usuarioID,
			FechaCreacion: now,
		}); err != nil {
			return err
		}

		resultado = prep
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resultado, nil
}

// demandaIngrediente cantidad total a descontar de un ingrediente dentro de
// una operación, con las líneas repetidas del mismo ingrediente ya sumadas.
type demandaIngrediente struct {
	ingredienteID string
	requerido     decimal.Decimal
}

// agregarDemanda suma cantidad sobre la demanda existente del ingrediente o
// añade una nueva, preservando el orden de primera aparición. Agrupar antes
// de verificar evita que dos líneas del mismo ingrediente se comprueben cada
// una contra el stock sin mutar y se pisen la escritura.
func agregarDemanda(demandas []demandaIngrediente, ingredienteID string, cantidad decimal.Decimal) []demandaIngrediente {
	for i := range demandas {
		if demandas[i].ingredienteID == ingredienteID {
			demandas[i].requerido = demandas[i].requerido.Add(cantidad)
			return demandas
		}
	}
	return append(demandas, demandaIngrediente{ingredienteID: ingredienteID, requerido: cantidad})
}

// verificarLineas es la primera pasada sobre una receta: agrupa las líneas
// por ingrediente, bloquea cada fila y calcula lo requerido (cantidad de
// línea × cantidad de salida). Si uno o más ingredientes no alcanzan,
// devuelve el error agregado con todos los faltantes; ninguna fila se ha
// mutado todavía.
func verificarLineas(
	ingRepo repository.IngredienteRepository,
	lineas []*entity.RecetaLinea,
	cantidad decimal.Decimal,
) ([]lineaRequerida, *domain.SinStockError, error) {
	demandas := make([]demandaIngrediente, 0, len(lineas))
	for _, linea := range lineas {
		demandas = agregarDemanda(demandas, linea.IngredienteID, linea.Cantidad.Mul(cantidad))
	}
	return verificarDemandas(ingRepo, demandas)
}

// verificarDemandas bloquea cada ingrediente demandado (una sola vez por
// ingrediente) y comprueba suficiencia contra el total agrupado.
func verificarDemandas(
	ingRepo repository.IngredienteRepository,
	demandas []demandaIngrediente,
) ([]lineaRequerida, *domain.SinStockError, error) {
	requeridas := make([]lineaRequerida, 0, len(demandas))
	var faltantes []domain.FaltanteStock

	for _, d := range demandas {
		ing, err := ingRepo.GetForUpdate(d.ingredienteID)
		if err != nil {
			return nil, nil, err
		}
		if ing == nil {
			return nil, nil, domain.ErrNoEncontrado
		}
		if ing.StockActual.LessThan(d.requerido) {
			faltantes = append(faltantes, domain.FaltanteStock{
				Item:       ing.Nombre,
				Unidad:     ing.Unidad,
				Disponible: ing.StockActual,
				Requerido:  d.requerido,
			})
			continue
		}
		requeridas = append(requeridas, lineaRequerida{ingrediente: ing, requerido: d.requerido})
	}

	if len(faltantes) > 0 {
		return nil, &domain.SinStockError{Faltantes: faltantes}, nil
	}
	return requeridas, nil, nil
}

// aplicarSalidas es la segunda pasada: descuenta cada ingrediente ya
// bloqueado y registra su movimiento de salida.
func aplicarSalidas(
	ingRepo repository.IngredienteRepository,
	movRepo repository.MovimientoRepository,
	requeridas []lineaRequerida,
	motivo, usuarioID string,
	pedidoID *string,
	now time.Time,
) error {
	for _, lr := range requeridas {
		nuevo := lr.ingrediente.StockActual.Sub(lr.requerido)
		if err := ingRepo.UpdateStock(lr.ingrediente.ID, nuevo); err != nil {
			return err
		}
		if err := movRepo.Create(&entity.Movimiento{
			Clase:         entity.ClaseIngrediente,
			ItemID:        lr.ingrediente.ID,
			Tipo:          entity.MovimientoSalida,
			Cantidad:      lr.requerido,
			Motivo:        motivo,
			UsuarioID:     usuarioID,
			PedidoID:      pedidoID,
			FechaCreacion: now,
		}); err != nil {
			return err
		}
	}
	return nil
}
