package inventario

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gardengates/comanda-api/internal/domain"
	"github.com/gardengates/comanda-api/internal/domain/entity"
	"github.com/gardengates/comanda-api/internal/domain/repository"
)

// RegistrarMovimiento aplica una entrada o salida administrativa sobre un ítem
// de cualquiera de las dos clases de inventario (compras, mermas, ajustes) y
// registra el movimiento correspondiente en la misma transacción.
func (uc *Engine) RegistrarMovimiento(ctx context.Context, item entity.ItemInventario, tipo string, cantidad decimal.Decimal, motivo, usuarioID string) error {
	if item.ID == "" || !cantidad.GreaterThan(decimal.Zero) {
		return domain.ErrEntradaInvalida
	}
	if tipo != entity.MovimientoEntrada && tipo != entity.MovimientoSalida {
		return domain.ErrEntradaInvalida
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		ingRepo repository.IngredienteRepository,
		prepRepo repository.ProductoPreparadoRepository,
		_ repository.RecetaRepository,
		movRepo repository.MovimientoRepository,
	) error {
		var nombre, unidad string
		var stock decimal.Decimal

		switch item.Clase {
		case entity.ClaseIngrediente:
			ing, err := ingRepo.GetForUpdate(item.ID)
			if err != nil {
				return err
			}
			if ing == nil {
				return domain.ErrNoEncontrado
			}
			nombre, unidad, stock = ing.Nombre, ing.Unidad, ing.StockActual
		case entity.ClaseProductoPreparado:
			prep, err := prepRepo.GetForUpdate(item.ID)
			if err != nil {
				return err
			}
			if prep == nil {
				return domain.ErrNoEncontrado
			}
			nombre, unidad, stock = prep.Nombre, prep.Unidad, prep.StockActual
		default:
			return domain.ErrEntradaInvalida
		}

		nuevo := stock.Add(cantidad)
		if tipo == entity.MovimientoSalida {
			nuevo = stock.Sub(cantidad)
			if nuevo.IsNegative() {
				return domain.NuevoSinStock(nombre, unidad, stock, cantidad)
			}
		}

		var err error
		if item.Clase == entity.ClaseIngrediente {
			err = ingRepo.UpdateStock(item.ID, nuevo)
		} else {
			err = prepRepo.UpdateStock(item.ID, nuevo)
		}
		if err != nil {
			return err
		}

		return movRepo.Create(&entity.Movimiento{
			Clase:         item.Clase,
			ItemID:        item.ID,
			Tipo:          tipo,
			Cantidad:      cantidad,
			Motivo:        motivo,
			UsuarioID:     usuarioID,
			FechaCreacion: now,
		})
	})
}
