package repository

import (
	"github.com/shopspring/decimal"

	"github.com/gardengates/comanda-api/internal/domain/entity"
)

// IngredienteRepository define el puerto de persistencia para ingredientes.
// GetForUpdate + UpdateStock se usan siempre juntos dentro de una transacción:
// toda mutación de stock pasa por una fila bloqueada (SELECT FOR UPDATE).
type IngredienteRepository interface {
	Create(ing *entity.Ingrediente) error
	Update(ing *entity.Ingrediente) error
	// Desactivar hace soft delete (activo = false). Devuelve false si no existe.
	Desactivar(id string) (bool, error)
	GetByID(id string) (*entity.Ingrediente, error)
	List() ([]*entity.Ingrediente, error)
	ListBajoStock() ([]*entity.Ingrediente, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE). nil si no existe.
	GetForUpdate(id string) (*entity.Ingrediente, error)
	UpdateStock(id string, stock decimal.Decimal) error
}
