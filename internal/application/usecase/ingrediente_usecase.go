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

// IngredienteUseCase casos de uso CRUD para ingredientes. El stock se edita
// aquí solo administrativamente; el consumo pasa por el motor de inventario.
type IngredienteUseCase struct {
	repo repository.IngredienteRepository
}

// NewIngredienteUseCase construye el caso de uso.
func NewIngredienteUseCase(repo repository.IngredienteRepository) *IngredienteUseCase {
	return &IngredienteUseCase{repo: repo}
}

// Create crea un ingrediente activo.
func (uc *IngredienteUseCase) Create(in dto.IngredienteRequest) (*dto.IngredienteResponse, error) {
	if in.Nombre == "" || in.Unidad == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if in.StockActual.LessThan(decimal.Zero) || in.StockMinimo.LessThan(decimal.Zero) {
		return nil, domain.ErrEntradaInvalida
	}
	ing := &entity.Ingrediente{
		ID:             uuid.New().String(),
		Nombre:         in.Nombre,
		Unidad:         in.Unidad,
		StockActual:    in.StockActual,
		StockMinimo:    in.StockMinimo,
		CostoPorUnidad: in.CostoPorUnidad,
		Activo:         true,
		FechaCreacion:  time.Now(),
	}
	if err := uc.repo.Create(ing); err != nil {
		return nil, err
	}
	return toIngredienteResponse(ing), nil
}

// GetByID obtiene un ingrediente activo por ID.
func (uc *IngredienteUseCase) GetByID(id string) (*dto.IngredienteResponse, error) {
	ing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNoEncontrado
	}
	return toIngredienteResponse(ing), nil
}

// Update actualiza los datos del ingrediente, incluido un ajuste
// administrativo de stock.
func (uc *IngredienteUseCase) Update(id string, in dto.IngredienteRequest) (*dto.IngredienteResponse, error) {
	ing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNoEncontrado
	}
	if in.StockActual.LessThan(decimal.Zero) || in.StockMinimo.LessThan(decimal.Zero) {
		return nil, domain.ErrEntradaInvalida
	}
	if in.Nombre != "" {
		ing.Nombre = in.Nombre
	}
	if in.Unidad != "" {
		ing.Unidad = in.Unidad
	}
	ing.StockActual = in.StockActual
	ing.StockMinimo = in.StockMinimo
	ing.CostoPorUnidad = in.CostoPorUnidad
	if in.Activo != nil {
		ing.Activo = *in.Activo
	}
	if err := uc.repo.Update(ing); err != nil {
		return nil, err
	}
	return toIngredienteResponse(ing), nil
}

// Desactivar hace soft delete: el ingrediente deja de listarse y de poder
// consumirse, pero sus movimientos históricos permanecen.
func (uc *IngredienteUseCase) Desactivar(id string) error {
	ok, err := uc.repo.Desactivar(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNoEncontrado
	}
	return nil
}

// List lista los ingredientes activos.
func (uc *IngredienteUseCase) List() ([]*dto.IngredienteResponse, error) {
	ings, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.IngredienteResponse, 0, len(ings))
	for _, ing := range ings {
		out = append(out, toIngredienteResponse(ing))
	}
	return out, nil
}

// ListBajoStock lista ingredientes en o bajo su stock mínimo.
func (uc *IngredienteUseCase) ListBajoStock() ([]*dto.IngredienteResponse, error) {
	ings, err := uc.repo.ListBajoStock()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.IngredienteResponse, 0, len(ings))
	for _, ing := range ings {
		out = append(out, toIngredienteResponse(ing))
	}
	return out, nil
}

func toIngredienteResponse(i *entity.Ingrediente) *dto.IngredienteResponse {
	return &dto.IngredienteResponse{
		ID:             i.ID,
		Nombre:         i.Nombre,
		Unidad:         i.Unidad,
		StockActual:    i.StockActual,
		StockMinimo:    i.StockMinimo,
		CostoPorUnidad: i.CostoPorUnidad,
		BajoMinimo:     i.BajoMinimo(),
	}
}
