package usecase

import (
	"context"
	"time"

	"github.com/gardengates/comanda-api/internal/application/dto"
	"github.com/gardengates/comanda-api/internal/domain"
	"github.com/gardengates/comanda-api/internal/domain/repository"
)

const (
	defaultTopProductos = 10
	maxTopProductos     = 100
)

// ReporteUseCase consultas de lectura sobre ventas. Los pedidos cancelados
// nunca cuentan como venta ni como ingreso.
type ReporteUseCase struct {
	reporteRepo repository.ReporteRepository
}

// NewReporteUseCase construye el caso de uso.
func NewReporteUseCase(reporteRepo repository.ReporteRepository) *ReporteUseCase {
	return &ReporteUseCase{reporteRepo: reporteRepo}
}

// VentasDiarias agrega las ventas del día indicado; fecha en formato 2006-01-02,
// vacía significa hoy.
func (uc *ReporteUseCase) VentasDiarias(ctx context.Context, fecha string) ([]dto.VentaDiariaResponse, error) {
	dia := time.Now()
	if fecha != "" {
		parsed, err := time.Parse("2006-01-02", fecha)
		if err != nil {
			return nil, domain.ErrEntradaInvalida
		}
		dia = parsed
	}
	rows, err := uc.reporteRepo.VentasDiarias(ctx, dia)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VentaDiariaResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.VentaDiariaResponse{
			Fecha:        r.Fecha,
			TotalPedidos: r.TotalPedidos,
			TotalVentas:  r.TotalVentas,
		})
	}
	return out, nil
}

// ProductosPopulares ranking de productos por veces pedido.
func (uc *ReporteUseCase) ProductosPopulares(ctx context.Context, limit int) ([]dto.ProductoPopularResponse, error) {
	if limit <= 0 {
		limit = defaultTopProductos
	}
	if limit > maxTopProductos {
		limit = maxTopProductos
	}
	rows, err := uc.reporteRepo.ProductosPopulares(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoPopularResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ProductoPopularResponse{
			ProductoID:     r.ProductoID,
			ProductoNombre: r.ProductoNombre,
			VecesPedido:    r.VecesPedido,
			TotalUnidades:  r.TotalUnidades,
			TotalIngresos:  r.TotalIngresos,
		})
	}
	return out, nil
}

// VentasPorMozo agregado histórico de ventas por mozo.
func (uc *ReporteUseCase) VentasPorMozo(ctx context.Context) ([]dto.VentaPorMozoResponse, error) {
	rows, err := uc.reporteRepo.VentasPorMozo(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VentaPorMozoResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.VentaPorMozoResponse{
			MozoNombre:   r.MozoNombre,
			TotalPedidos: r.TotalPedidos,
			TotalVentas:  r.TotalVentas,
		})
	}
	return out, nil
}
