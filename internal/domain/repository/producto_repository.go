package repository

import "github.com/gardengates/comanda-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para productos de venta.
type ProductoRepository interface {
	Create(p *entity.Producto) error
	Update(p *entity.Producto) error
	// Delete elimina el producto. Devuelve false si no existe.
	Delete(id string) (bool, error)
	GetByID(id string) (*entity.Producto, error)
	List() ([]*entity.Producto, error)
	ListByCategoria(categoria string) ([]*entity.Producto, error)
	Buscar(termino string) ([]*entity.Producto, error)
}
