package usecase

import (
	"time"

	"github.com/gardengates/comanda-api/internal/application/dto"
	"github.com/gardengates/comanda-api/internal/domain"
	"github.com/gardengates/comanda-api/internal/domain/entity"
	"github.com/gardengates/comanda-api/internal/domain/repository"
)

// MovimientoUseCase lecturas del libro de movimientos y alertas de stock.
// Las escrituras del libro viven en el motor de inventario.
type MovimientoUseCase struct {
	movRepo  repository.MovimientoRepository
	ingRepo  repository.IngredienteRepository
	prepRepo repository.ProductoPreparadoRepository
}

// NewMovimientoUseCase construye el caso de uso.
func NewMovimientoUseCase(
	movRepo repository.MovimientoRepository,
	ingRepo repository.IngredienteRepository,
	prepRepo repository.ProductoPreparadoRepository,
) *MovimientoUseCase {
	return &MovimientoUseCase{movRepo: movRepo, ingRepo: ingRepo, prepRepo: prepRepo}
}

// List lista movimientos, opcionalmente acotados por fechas 2006-01-02.
// `hasta` es inclusivo: cubre el día completo.
func (uc *MovimientoUseCase) List(desde, hasta string) ([]*dto.MovimientoResponse, error) {
	var desdePtr, hastaPtr *time.Time
	if desde != "" {
		t, err := time.Parse("2006-01-02", desde)
		if err != nil {
			return nil, domain.ErrEntradaInvalida
		}
		desdePtr = &t
	}
	if hasta != "" {
		t, err := time.Parse("2006-01-02", hasta)
		if err != nil {
			return nil, domain.ErrEntradaInvalida
		}
		fin := t.Add(24*time.Hour - time.Nanosecond)
		hastaPtr = &fin
	}
	movs, err := uc.movRepo.List(desdePtr, hastaPtr)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, toMovimientoResponse(m))
	}
	return out, nil
}

// AlertasStock devuelve los ítems de ambas clases de inventario en o bajo
// su stock mínimo.
func (uc *MovimientoUseCase) AlertasStock() (*dto.AlertasStockResponse, error) {
	ings, err := uc.ingRepo.ListBajoStock()
	if err != nil {
		return nil, err
	}
	preps, err := uc.prepRepo.ListBajoStock()
	if err != nil {
		return nil, err
	}
	resp := &dto.AlertasStockResponse{
		Ingredientes:        make([]dto.IngredienteResponse, 0, len(ings)),
		ProductosPreparados: make([]dto.ProductoPreparadoResponse, 0, len(preps)),
	}
	for _, ing := range ings {
		resp.Ingredientes = append(resp.Ingredientes, *toIngredienteResponse(ing))
	}
	for _, p := range preps {
		resp.ProductosPreparados = append(resp.ProductosPreparados, *toProductoPreparadoResponse(p))
	}
	return resp, nil
}

func toMovimientoResponse(m *entity.Movimiento) *dto.MovimientoResponse {
	return &dto.MovimientoResponse{
		ID:            m.ID,
		Clase:         m.Clase,
		ItemID:        m.ItemID,
		ItemNombre:    m.ItemNombre,
		Tipo:          m.Tipo,
		Cantidad:      m.Cantidad,
		Motivo:        m.Motivo,
		UsuarioID:     m.UsuarioID,
		PedidoID:      m.PedidoID,
		FechaCreacion: m.FechaCreacion,
	}
}
