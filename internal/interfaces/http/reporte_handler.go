package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/gardengates/comanda-api/internal/application/usecase"
)

// ReporteHandler expone las consultas de lectura sobre ventas.
type ReporteHandler struct {
	uc *usecase.ReporteUseCase
}

// NewReporteHandler construye el handler de reportes.
func NewReporteHandler(uc *usecase.ReporteUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// VentasDiarias acepta ?fecha=2006-01-02 (vacía = hoy).
func (h *ReporteHandler) VentasDiarias(c *fiber.Ctx) error {
	out, err := h.uc.VentasDiarias(c.Context(), c.Query("fecha"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ProductosPopulares acepta ?limit=N.
func (h *ReporteHandler) ProductosPopulares(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	out, err := h.uc.ProductosPopulares(c.Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ReporteHandler) VentasPorMozo(c *fiber.Ctx) error {
	out, err := h.uc.VentasPorMozo(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
