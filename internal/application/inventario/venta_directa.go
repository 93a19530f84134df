package inventario

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gardengates/comanda-api/internal/domain"
	"github.com/gardengates/comanda-api/internal/domain/entity"
	"github.com/gardengates/comanda-api/internal/domain/repository"
)

// LineaVentaDirecta un ingrediente a debitar en una venta directa.
type LineaVentaDirecta struct {
	IngredienteID string
	Cantidad      decimal.Decimal
}

// VentaDirecta vende un plato ad-hoc debitando los ingredientes indicados,
// sin pasar por recetas. Verificar-todo / aplicar-todo: si uno o más
// ingredientes no alcanzan, el error agrega todos los faltantes y no se
// aplica ningún descuento.
func (uc *Engine) VentaDirecta(ctx context.Context, lineas []LineaVentaDirecta, usuarioID string) error {
	if len(lineas) == 0 {
		return domain.ErrEntradaInvalida
	}
	for _, l := range lineas {
		if l.IngredienteID == "" || !l.Cantidad.GreaterThan(decimal.Zero) {
			return domain.ErrEntradaInvalida
		}
	}

	// Líneas repetidas del mismo ingrediente se suman antes de verificar:
	// la suficiencia se comprueba contra el total y cada fila se escribe
	// una sola vez, con un único movimiento por ingrediente.
	demandas := make([]demandaIngrediente, 0, len(lineas))
	for _, l := range lineas {
		demandas = agregarDemanda(demandas, l.IngredienteID, l.Cantidad)
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		ingRepo repository.IngredienteRepository,
		_ repository.ProductoPreparadoRepository,
		_ repository.RecetaRepository,
		movRepo repository.MovimientoRepository,
	) error {
		requeridas, sinStock, err := verificarDemandas(ingRepo, demandas)
		if err != nil {
			return err
		}
		if sinStock != nil {
			return sinStock
		}
		return aplicarSalidas(ingRepo, movRepo, requeridas, entity.MotivoVentaDirecta, usuarioID, nil, now)
	})
}
