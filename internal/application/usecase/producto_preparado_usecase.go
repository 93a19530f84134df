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

// ProductoPreparadoUseCase casos de uso CRUD para productos preparados.
// El stock se repone vía preparaciones del motor; aquí solo ediciones administrativas.
type ProductoPreparadoUseCase struct {
	repo       repository.ProductoPreparadoRepository
	recetaRepo repository.RecetaRepository
}

// NewProductoPreparadoUseCase construye el caso de uso.
func NewProductoPreparadoUseCase(repo repository.ProductoPreparadoRepository, recetaRepo repository.RecetaRepository) *ProductoPreparadoUseCase {
	return &ProductoPreparadoUseCase{repo: repo, recetaRepo: recetaRepo}
}

// Create crea un producto preparado.
func (uc *ProductoPreparadoUseCase) Create(in dto.ProductoPreparadoRequest) (*dto.ProductoPreparadoResponse, error) {
	if in.Nombre == "" || in.Unidad == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if in.StockActual.LessThan(decimal.Zero) || in.StockMinimo.LessThan(decimal.Zero) {
		return nil, domain.ErrEntradaInvalida
	}
	p := &entity.ProductoPreparado{
		ID:             uuid.New().String(),
		Nombre:         in.Nombre,
		Descripcion:    in.Descripcion,
		Unidad:         in.Unidad,
		StockActual:    in.StockActual,
		StockMinimo:    in.StockMinimo,
		CostoPorUnidad: in.CostoPorUnidad,
		FechaCreacion:  time.Now(),
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProductoPreparadoResponse(p), nil
}

// GetByID obtiene un producto preparado por ID.
func (uc *ProductoPreparadoUseCase) GetByID(id string) (*dto.ProductoPreparadoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNoEncontrado
	}
	return toProductoPreparadoResponse(p), nil
}

// Update actualiza los datos del producto preparado.
func (uc *ProductoPreparadoUseCase) Update(id string, in dto.ProductoPreparadoRequest) (*dto.ProductoPreparadoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNoEncontrado
	}
	if in.StockActual.LessThan(decimal.Zero) || in.StockMinimo.LessThan(decimal.Zero) {
		return nil, domain.ErrEntradaInvalida
	}
	if in.Nombre != "" {
		p.Nombre = in.Nombre
	}
	if in.Unidad != "" {
		p.Unidad = in.Unidad
	}
	p.Descripcion = in.Descripcion
	p.StockActual = in.StockActual
	p.StockMinimo = in.StockMinimo
	p.CostoPorUnidad = in.CostoPorUnidad
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProductoPreparadoResponse(p), nil
}

// Delete elimina el producto preparado y su receta.
func (uc *ProductoPreparadoUseCase) Delete(id string) error {
	ok, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNoEncontrado
	}
	// La receta huérfana no debe sobrevivir a su producto.
	_, err = uc.recetaRepo.EliminarPorProducto(id)
	return err
}

// List lista todos los productos preparados.
func (uc *ProductoPreparadoUseCase) List() ([]*dto.ProductoPreparadoResponse, error) {
	preps, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoPreparadoResponse, 0, len(preps))
	for _, p := range preps {
		out = append(out, toProductoPreparadoResponse(p))
	}
	return out, nil
}

// ListBajoStock lista productos preparados en o bajo su stock mínimo.
func (uc *ProductoPreparadoUseCase) ListBajoStock() ([]*dto.ProductoPreparadoResponse, error) {
	preps, err := uc.repo.ListBajoStock()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoPreparadoResponse, 0, len(preps))
	for _, p := range preps {
		out = append(out, toProductoPreparadoResponse(p))
	}
	return out, nil
}

func toProductoPreparadoResponse(p *entity.ProductoPreparado) *dto.ProductoPreparadoResponse {
	return &dto.ProductoPreparadoResponse{
		ID:             p.ID,
		Nombre:         p.Nombre,
		Descripcion:    p.Descripcion,
		Unidad:         p.Unidad,
		StockActual:    p.StockActual,
		StockMinimo:    p.StockMinimo,
		CostoPorUnidad: p.CostoPorUnidad,
		BajoMinimo:     p.BajoMinimo(),
	}
}
