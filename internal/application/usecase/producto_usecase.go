package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gardengates/comanda-api/internal/application/dto"
	"github.com/gardengates/comanda-api/internal/domain"
	"github.com/gardengates/comanda-api/internal/domain/entity"
	"github.com/gardengates/comanda-api/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para productos de la carta.
type ProductoUseCase struct {
	repo     repository.ProductoRepository
	prepRepo repository.ProductoPreparadoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, prepRepo repository.ProductoPreparadoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, prepRepo: prepRepo}
}

// Create crea un producto de la carta. Un producto de clase preparado debe
// referenciar un producto preparado existente.
func (uc *ProductoUseCase) Create(in dto.ProductoRequest) (*dto.ProductoResponse, error) {
	if err := uc.validar(&in); err != nil {
		return nil, err
	}
	p := &entity.Producto{
		ID:                  uuid.New().String(),
		Nombre:              in.Nombre,
		Descripcion:         in.Descripcion,
		Precio:              in.Precio,
		Categoria:           in.Categoria,
		TipoInventario:      in.TipoInventario,
		ProductoPreparadoID: in.ProductoPreparadoID,
		FechaCreacion:       time.Now(),
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNoEncontrado
	}
	return toProductoResponse(p), nil
}

// Update actualiza el producto.
func (uc *ProductoUseCase) Update(id string, in dto.ProductoRequest) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNoEncontrado
	}
	if err := uc.validar(&in); err != nil {
		return nil, err
	}
	p.Nombre = in.Nombre
	p.Descripcion = in.Descripcion
	p.Precio = in.Precio
	p.Categoria = in.Categoria
	p.TipoInventario = in.TipoInventario
	p.ProductoPreparadoID = in.ProductoPreparadoID
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// Delete elimina el producto de la carta.
func (uc *ProductoUseCase) Delete(id string) error {
	ok, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNoEncontrado
	}
	return nil
}

// List lista todos los productos de la carta.
func (uc *ProductoUseCase) List() ([]*dto.ProductoResponse, error) {
	return uc.listar(uc.repo.List)
}

// ListByCategoria filtra productos por categoría.
func (uc *ProductoUseCase) ListByCategoria(categoria string) ([]*dto.ProductoResponse, error) {
	return uc.listar(func() ([]*entity.Producto, error) {
		return uc.repo.ListByCategoria(categoria)
	})
}

// Buscar busca productos por nombre o descripción.
func (uc *ProductoUseCase) Buscar(termino string) ([]*dto.ProductoResponse, error) {
	return uc.listar(func() ([]*entity.Producto, error) {
		return uc.repo.Buscar(termino)
	})
}

func (uc *ProductoUseCase) listar(consulta func() ([]*entity.Producto, error)) ([]*dto.ProductoResponse, error) {
	prods, err := consulta()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(prods))
	for _, p := range prods {
		out = append(out, toProductoResponse(p))
	}
	return out, nil
}

func (uc *ProductoUseCase) validar(in *dto.ProductoRequest) error {
	if in.Nombre == "" || in.Precio.LessThan(decimal.Zero) {
		return domain.ErrEntradaInvalida
	}
	if in.TipoInventario == "" {
		in.TipoInventario = entity.TipoInventarioGeneral
	}
	switch in.TipoInventario {
	case entity.TipoInventarioGeneral:
		return nil
	case entity.TipoInventarioPreparado:
		if in.ProductoPreparadoID == nil || *in.ProductoPreparadoID == "" {
			return domain.ErrSinProductoPreparado
		}
		prep, err := uc.prepRepo.GetByID(*in.ProductoPreparadoID)
		if err != nil {
			return err
		}
		if prep == nil {
			return domain.ErrNoEncontrado
		}
		return nil
	default:
		return domain.ErrEntradaInvalida
	}
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:                  p.ID,
		Nombre:              p.Nombre,
		Descripcion:         p.Descripcion,
		Precio:              p.Precio,
		Categoria:           p.Categoria,
		TipoInventario:      p.TipoInventario,
		ProductoPreparadoID: p.ProductoPreparadoID,
	}
}
