package inventario

import (
	"context"

	"github.com/gardengates/comanda-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// inventario: o se aplican todos los efectos de la llamada, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ingRepo repository.IngredienteRepository,
		prepRepo repository.ProductoPreparadoRepository,
		recetaRepo repository.RecetaRepository,
		movRepo repository.MovimientoRepository,
	) error) error
}
