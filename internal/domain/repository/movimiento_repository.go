package repository

import (
	"time"

	"github.com/gardengates/comanda-api/internal/domain/entity"
)

// MovimientoRepository define el puerto del libro de movimientos de inventario.
// Append-only: no hay Update ni Delete.
type MovimientoRepository interface {
	Create(mov *entity.Movimiento) error
	// List devuelve movimientos con el nombre del ítem resuelto según su clase,
	// opcionalmente filtrados por rango de fechas, del más reciente al más antiguo.
	List(desde, hasta *time.Time) ([]*entity.Movimiento, error)
}
