package repository

import (
	"github.com/shopspring/decimal"

	"github.com/gardengates/comanda-api/internal/domain/entity"
)

// ProductoPreparadoRepository define el puerto de persistencia para productos preparados.
// Misma disciplina de mutación que IngredienteRepository: stock solo vía fila bloqueada.
type ProductoPreparadoRepository interface {
	Create(p *entity.ProductoPreparado) error
	Update(p *entity.ProductoPreparado) error
	// Delete elimina el producto preparado. Devuelve false si no existe.
	Delete(id string) (bool, error)
	GetByID(id string) (*entity.ProductoPreparado, error)
	List() ([]*entity.ProductoPreparado, error)
	ListBajoStock() ([]*entity.ProductoPreparado, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE). nil si no existe.
	GetForUpdate(id string) (*entity.ProductoPreparado, error)
	UpdateStock(id string, stock decimal.Decimal) error
}
